package middleware

import (
	"net/http"
	"recruitai-backend/internal/delivery/http/response"
	"recruitai-backend/internal/domain"
	"recruitai-backend/pkg/auth"
	"strings"

	"github.com/gin-gonic/gin"
)

const authCookie = "auth_token"

// AuthMiddleware verifies the session token and puts its claims on the context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 1. Try to get token from Header
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		} else if cookie, err := c.Cookie(authCookie); err == nil {
			// 2. Fall back to the cookie set by browser clients
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUsername), claims.Username)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}

// RequireView admits only roles whose navigation includes view.
func RequireView(view domain.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.Role(c.GetString(string(domain.KeyUserRole)))
		if !domain.CanAccess(role, view) {
			response.Error(c, http.StatusForbidden, "This page is not available for your role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
