package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/backend"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithUpstreamError maps an upstream client failure to a response.
// Upstream HTTP statuses pass through with the upstream's own message, so a
// 401 reaches the caller and triggers its local session clear; transport
// failures become a 502.
func RespondWithUpstreamError(c *gin.Context, err error) {
	var statusErr *backend.StatusError
	if errors.As(err, &statusErr) {
		RespondWithError(c, statusErr.StatusCode, statusErr.Message())
		return
	}
	RespondWithError(c, http.StatusBadGateway, "Ticketing service is unreachable.")
}
