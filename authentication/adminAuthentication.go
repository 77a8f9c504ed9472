package authentication

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"virtual-healthcare/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func adminKey() []byte {
	if key := os.Getenv("ADMIN_JWT_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("adminkey")
}

func GenerateAdminToken(email string) (string, error) {
	//setting token expiration time
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &models.AdminClaims{
		Email:          email,
		StandardClaims: jwt.StandardClaims{ExpiresAt: expirationTime.Unix()},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminKey())
}

// verify Admin Token
func AdminAuthentication(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return adminKey(), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*models.AdminClaims); ok && token.Valid {
		return claims.Email, nil
	}
	return "", errors.New("invalid token")
}

// Admin Auth middleware
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "missing the authorization header"})
			return
		}

		authHeader := strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer"))

		email, err := AdminAuthentication(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			return
		}
		c.Set("email", email)
		c.Next()
	}
}
