package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/helpers"
	"github.com/harshpatel5/Event-Ticket-System/internal/session"
)

// SessionMiddleware builds the per-request session from the Authorization
// header. Requests without a bearer token proceed anonymously; a token that
// fails claim parsing is rejected outright.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set("session", session.Anonymous)
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid token format.")
			c.Abort()
			return
		}

		sess, err := session.FromToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired token.")
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).Authenticated() {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects sessions without the admin role. The upstream checks
// the role again on every admin call; this just fails fast.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if !sess.Authenticated() {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required.")
			c.Abort()
			return
		}
		if !sess.IsAdmin() {
			helpers.RespondWithError(c, http.StatusForbidden, "Admin access required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) session.Session {
	sess, exists := c.Get("session")
	if !exists {
		return session.Anonymous
	}
	return sess.(session.Session)
}
