package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/backend"
)

// BackendMiddleware makes the upstream client available to handlers through
// the request context.
func BackendMiddleware(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("backend", client)
		c.Next()
	}
}

func GetBackend(c *gin.Context) *backend.Client {
	client, exists := c.Get("backend")
	if !exists {
		return nil
	}
	return client.(*backend.Client)
}
