package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/harshpatel5/Event-Ticket-System/internal/models"
	"github.com/harshpatel5/Event-Ticket-System/internal/session"
)

// Catalog collections. These are the four batch endpoints the join engine
// consumes; each returns the full collection in one call.

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.get(ctx, "/events/", session.Anonymous, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/categories/", session.Anonymous, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := c.get(ctx, "/venues/", session.Anonymous, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := c.get(ctx, "/tickets/", session.Anonymous, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// GetEvent returns the detail record with embedded category and venue, either
// of which the upstream may null out.
func (c *Client) GetEvent(ctx context.Context, id int) (*models.EventDetail, error) {
	var detail models.EventDetail
	if err := c.get(ctx, fmt.Sprintf("/events/%d", id), session.Anonymous, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// EventTickets returns the ticket types for one event.
func (c *Client) EventTickets(ctx context.Context, eventID int) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := c.get(ctx, fmt.Sprintf("/event-tickets/%d", eventID), session.Anonymous, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Auth operations, proxied verbatim.

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.send(ctx, http.MethodPost, "/auth/register", session.Anonymous, req, nil)
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var res models.LoginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/login", session.Anonymous, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Me(ctx context.Context, sess session.Session) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", sess, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Admin event CRUD. All calls forward the caller's session; the upstream
// enforces the admin role a second time.

// EventRequest is the admin create/update payload.
type EventRequest struct {
	Name         string `json:"event_name" binding:"required"`
	EventDate    string `json:"event_date" binding:"required"`
	Description  string `json:"description"`
	CategoryID   int    `json:"category_id" binding:"required"`
	VenueID      int    `json:"venue_id" binding:"required"`
	TotalTickets int    `json:"total_tickets" binding:"required"`
}

// TicketRequest is the payload for creating one ticket type of an event.
type TicketRequest struct {
	EventID           int          `json:"event_id"`
	Type              string       `json:"ticket_type" binding:"required"`
	Price             models.Price `json:"price" binding:"required"`
	QuantityAvailable int          `json:"quantity_available" binding:"required"`
}

// CreatedEvent is the upstream's acknowledgement of an event creation.
type CreatedEvent struct {
	EventID int `json:"event_id"`
}

func (c *Client) AdminEvents(ctx context.Context, sess session.Session) ([]models.Event, error) {
	var events []models.Event
	if err := c.get(ctx, "/admin/events", sess, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, sess session.Session, req EventRequest) (*CreatedEvent, error) {
	var created CreatedEvent
	if err := c.send(ctx, http.MethodPost, "/admin/events", sess, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, sess session.Session, id int, req EventRequest) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/admin/events/%d", id), sess, req, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, sess session.Session, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/admin/events/%d", id), sess, nil, nil)
}

func (c *Client) CreateTicket(ctx context.Context, sess session.Session, req TicketRequest) error {
	return c.send(ctx, http.MethodPost, "/tickets", sess, req, nil)
}
