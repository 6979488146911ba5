package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders middleware adds security headers for production
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "DENY")

		// Referrer Policy
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// AdminKeyAuth guards operator endpoints with a static API key. Full
// token-based auth lives in the account service, not here.
func AdminKeyAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin API is not configured"})
			c.Abort()
			return
		}

		if c.GetHeader("X-Admin-Key") != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
