package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/auth"
)

// RequireSession rejects requests when no session is stored. The session's
// email is placed in the context for handlers that key per-user storage.
func RequireSession(m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := m.Current()
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
			c.Abort()
			return
		}
		c.Set("session_email", session.Email)
		c.Next()
	}
}

// RequireAdmin additionally checks the session against the configured admin
// identity.
func RequireAdmin(m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := m.Current()
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in first"})
			c.Abort()
			return
		}
		if !m.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Set("session_email", session.Email)
		c.Next()
	}
}

// SessionEmail reads the email RequireSession stored on the context.
func SessionEmail(c *gin.Context) string {
	email, _ := c.Get("session_email")
	s, _ := email.(string)
	return s
}
