package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth returns middleware that protects admin endpoints with a shared
// key. Only the bcrypt hash of the key lives in configuration; an empty
// hash disables the admin surface entirely.
func AdminAuth(apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKeyHash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   gin.H{"code": "FORBIDDEN", "message": "admin API is not configured"},
			})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		key := strings.TrimPrefix(authHeader, "Bearer ")
		if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid admin key"},
			})
			return
		}

		c.Next()
	}
}
