package authentication

import (
	"net/http"
	"time"

	"clinic-connect/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var patientKey = []byte(secret("PATIENT_JWT_KEY", "patientsecret"))

// GeneratePatientToken signs a token carrying the patient's id and email.
func GeneratePatientToken(id uint, email string) (string, error) {
	claims := models.PatientClaims{
		PatientID:    id,
		PatientEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(patientKey)
}

func verifyPatientToken(tokenString string) (*models.PatientClaims, error) {
	claims := &models.PatientClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return patientKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// PatientAuthMiddleware guards patient routes and exposes the caller's
// identity to the handlers.
func PatientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("PatientAuthorization")
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"Status":  "Unauthorized",
				"Message": "patient login required",
			})
			c.Abort()
			return
		}
		claims, err := verifyPatientToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"Status":  "Unauthorized",
				"Message": "invalid or expired token",
			})
			c.Abort()
			return
		}
		c.Set("patientID", claims.PatientID)
		c.Set("patient_email", claims.PatientEmail)
		c.Next()
	}
}
