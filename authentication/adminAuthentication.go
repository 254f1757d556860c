package authentication

import (
	"net/http"
	"os"
	"time"

	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var adminKey = []byte(secret("ADMIN_JWT_KEY", "adminsecret"))

func secret(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

// GenerateAdminToken signs a token for the admin session, valid for a day.
func GenerateAdminToken(username string) (string, error) {
	claims := models.AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminKey)
}

func verifyAdminToken(tokenString string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return adminKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// AdminAuthMiddleware guards admin routes using the session cookie.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("AdminAuthorization")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"Status":  "Unauthorized",
				"Message": "admin login required",
			})
			c.Abort()
			return
		}
		claims, err := verifyAdminToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"Status":  "Unauthorized",
				"Message": "invalid or expired token",
			})
			c.Abort()
			return
		}
		c.Set("username", claims.Username)
		c.Next()
	}
}
