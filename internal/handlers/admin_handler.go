package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/backend"
	"github.com/harshpatel5/Event-Ticket-System/internal/helpers"
	"github.com/harshpatel5/Event-Ticket-System/internal/middleware"
	"github.com/harshpatel5/Event-Ticket-System/internal/session"
)

// EventPayload is the admin form submission: the event fields plus the ticket
// types staged in the form before saving.
type EventPayload struct {
	backend.EventRequest
	Tickets []backend.TicketRequest `json:"tickets"`
}

// AdminEvents lists the events the logged-in organizer is responsible for.
func AdminEvents(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	events, err := client.AdminEvents(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// CreateEvent creates the event, then each staged ticket type, then
// re-fetches the organizer's events. Mutations are never applied
// optimistically; the response always reflects re-fetched upstream state.
//
// Ticket creation is not transactional with event creation. A ticket failure
// after the event exists is reported with the created id so the caller can
// retry ticket setup instead of silently ending up with a ticketless event.
func CreateEvent(c *gin.Context) {
	var payload EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}
	sess := middleware.GetSession(c)

	created, err := client.CreateEvent(c.Request.Context(), sess, payload.EventRequest)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	if err := createStagedTickets(c, client, sess, created.EventID, payload.Tickets); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    helpers.HTTPStatusText(http.StatusBadGateway),
			"message":  err.Error(),
			"event_id": created.EventID,
		})
		return
	}

	events, err := client.AdminEvents(c.Request.Context(), sess)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": created.EventID,
		"events":   events,
	})
}

// UpdateEvent applies the form to an existing event, creates any newly staged
// ticket types, and re-fetches.
func UpdateEvent(c *gin.Context) {
	eventID, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	var payload EventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}
	sess := middleware.GetSession(c)

	if err := client.UpdateEvent(c.Request.Context(), sess, eventID, payload.EventRequest); err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	if err := createStagedTickets(c, client, sess, eventID, payload.Tickets); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    helpers.HTTPStatusText(http.StatusBadGateway),
			"message":  err.Error(),
			"event_id": eventID,
		})
		return
	}

	events, err := client.AdminEvents(c.Request.Context(), sess)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"events":  events,
	})
}

func DeleteEvent(c *gin.Context) {
	eventID, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}
	sess := middleware.GetSession(c)

	if err := client.DeleteEvent(c.Request.Context(), sess, eventID); err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	events, err := client.AdminEvents(c.Request.Context(), sess)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
		"events":  events,
	})
}

// createStagedTickets creates ticket types sequentially, stopping at the
// first failure so the error names how far setup got.
func createStagedTickets(c *gin.Context, client *backend.Client, sess session.Session, eventID int, tickets []backend.TicketRequest) error {
	for i, t := range tickets {
		t.EventID = eventID
		if err := client.CreateTicket(c.Request.Context(), sess, t); err != nil {
			return fmt.Errorf("event saved, but ticket type %d of %d (%q) failed: %w", i+1, len(tickets), t.Type, err)
		}
	}
	return nil
}
