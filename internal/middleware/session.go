package middleware

import (
	"net/http"

	"kion-order-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the caller's session from the X-Session-ID
// header.
type SessionMiddleware struct {
	sessions session.Store
}

func NewSessionMiddleware(sessions session.Store) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// SessionRequired rejects requests without a known, unexpired session.
func (m *SessionMiddleware) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Session-ID header required"})
			c.Abort()
			return
		}

		if _, err := m.sessions.Get(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown or expired session"})
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// GetSessionID helper function to extract the session ID from context
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get("session_id"); exists {
		return sessionID.(string)
	}
	return ""
}
