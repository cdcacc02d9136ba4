package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets baseline hardening headers for a JSON API.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Authenticated responses carry resumes and candidate data
		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
