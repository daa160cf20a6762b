package middleware

import (
	"net/http"
	"strings"

	"tutorhive/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthTutorMiddleware validates the bearer token issued by the identity
// provider and requires the "tutor" role. The tutor id from the subject claim
// is placed in the gin context for handlers.
func JWTAuthTutorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if role != "tutor" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Tutor role required"})
			return
		}

		c.Set("tutorID", subject)
		c.Next()
	}
}
