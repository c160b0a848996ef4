package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harshpatel5/Event-Ticket-System/internal/catalog"
	"github.com/harshpatel5/Event-Ticket-System/internal/helpers"
	"github.com/harshpatel5/Event-Ticket-System/internal/middleware"
	"github.com/harshpatel5/Event-Ticket-System/internal/models"
)

const featuredLimit = 6

// ListEvents serves the browse/category page: the full catalog is fetched
// and joined, then narrowed by the query-string filters. A failed load
// produces a single error response, never a partially filtered result.
func ListEvents(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	events, err := catalog.Load(c.Request.Context(), client)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	events = catalog.FilterByCategory(events, c.DefaultQuery("category", catalog.AllCategories))
	events = catalog.FilterByLocation(events, c.Query("location"))
	events = catalog.FilterByDate(events, c.Query("date"), time.Now())
	events = catalog.FilterByQuery(events, c.Query("q"))
	events = catalog.SortEvents(events, c.Query("sort"))

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// FeaturedEvents serves the home page strip: upcoming events soonest first,
// capped at six.
func FeaturedEvents(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	events, err := catalog.Load(c.Request.Context(), client)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	upcoming := make([]models.DenormalizedEvent, 0, len(events))
	for _, e := range events {
		if e.Status == "" || e.Status == "Upcoming" {
			upcoming = append(upcoming, e)
		}
	}
	upcoming = catalog.SortEvents(upcoming, catalog.SortDateAsc)
	if len(upcoming) > featuredLimit {
		upcoming = upcoming[:featuredLimit]
	}

	c.JSON(http.StatusOK, gin.H{"events": upcoming})
}

// GetEvent serves the details page: the event with its embedded category and
// venue, plus purchasable ticket options (in stock, cheapest first).
func GetEvent(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	eventID, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event id.")
		return
	}

	detail, err := client.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	tickets, err := client.EventTickets(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	options := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.QuantityAvailable > 0 {
			options = append(options, t)
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})

	c.JSON(http.StatusOK, gin.H{
		"event":          detail,
		"tickets":        options,
		"min_price":      models.MinTicketPrice(options),
		"formatted_date": models.FormatEventDate(detail.EventDate),
	})
}

// ListCategories returns the category list with per-category event counts
// for the home page tiles.
func ListCategories(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	categories, err := client.ListCategories(c.Request.Context())
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	events, err := client.ListEvents(c.Request.Context())
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"counts":     catalog.CountByCategory(events, categories),
	})
}

// ListVenues feeds the admin form's venue select.
func ListVenues(c *gin.Context) {
	client := middleware.GetBackend(c)
	if client == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Backend client not found.")
		return
	}

	venues, err := client.ListVenues(c.Request.Context())
	if err != nil {
		helpers.RespondWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"venues": venues})
}
