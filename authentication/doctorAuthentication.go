package authentication

import (
	"net/http"
	"time"

	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var doctorKey = []byte(secret("DOCTOR_JWT_KEY", "doctorsecret"))

// GenerateDoctorToken signs a token carrying the doctor's id and email.
func GenerateDoctorToken(id uint, email string) (string, error) {
	claims := models.DoctorClaims{
		Id:          id,
		DoctorEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(doctorKey)
}

func verifyDoctorToken(tokenString string) (*models.DoctorClaims, error) {
	claims := &models.DoctorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return doctorKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// DoctorAuthMiddleware guards doctor routes and exposes the caller's
// identity to the handlers.
func DoctorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("DoctorAuthorization")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"Status":  "Unauthorized",
				"Message": "doctor login required",
			})
			c.Abort()
			return
		}
		claims, err := verifyDoctorToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"Status":  "Unauthorized",
				"Message": "invalid or expired token",
			})
			c.Abort()
			return
		}
		c.Set("doctor_id", claims.Id)
		c.Set("doctor_email", claims.DoctorEmail)
		c.Next()
	}
}
