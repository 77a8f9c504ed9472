package authentication

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"virtual-healthcare/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func doctorKey() []byte {
	if key := os.Getenv("DOCTOR_JWT_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("doctorkey")
}

// Generating token for a doctor after verify-login succeeds
func GenerateDoctorToken(doctorID int, username string) (string, error) {
	claims := &models.DoctorClaims{
		DoctorID: doctorID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(doctorKey())
}

// verify Doctor Token
func DoctorAuthentication(tokenString string) (int, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.DoctorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return doctorKey(), nil
	})
	if err != nil {
		return 0, "", err
	}

	if claims, ok := token.Claims.(*models.DoctorClaims); ok && token.Valid {
		return claims.DoctorID, claims.Username, nil
	}
	return 0, "", errors.New("invalid token")
}

// Doctor Auth middleware
func DoctorAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing the authorization header"})
			return
		}

		authHeader := strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer"))

		doctorID, username, err := DoctorAuthentication(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}
		c.Set("doctor_id", doctorID)
		c.Set("username", username)
		c.Next()
	}
}
