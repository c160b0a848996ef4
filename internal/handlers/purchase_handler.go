package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/helpers"
)

// CreatePurchase is a deliberate stub. Checkout never shipped: ticket
// selection on the details page ends here until a payment processor is
// integrated.
func CreatePurchase(c *gin.Context) {
	helpers.RespondWithError(c, http.StatusNotImplemented, "Checkout is not available yet.")
}
