package models

import (
	"time"
)

// Event is the flat record served by the upstream event API. EventDate is
// kept as the raw wire string; use When for a parsed timestamp.
type Event struct {
	ID             int    `json:"event_id"`
	Name           string `json:"event_name"`
	EventDate      string `json:"event_date"`
	Description    string `json:"description"`
	OrganizerName  string `json:"organizer_name,omitempty"`
	OrganizerEmail string `json:"organizer_email,omitempty"`
	CategoryID     int    `json:"category_id"`
	VenueID        int    `json:"venue_id"`
	TotalTickets   int    `json:"total_tickets"`
	TicketsSold    int    `json:"tickets_sold"`
	Status         string `json:"status"`
}

// Layouts the upstream emits for event_date, in the order they are tried.
// The list endpoint stringifies a datetime ("2025-12-15 19:00:00"), the admin
// endpoint uses the same layout explicitly, and seed data carries the
// T-separated form without a zone.
var eventDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseEventDate parses an upstream event_date string. The boolean reports
// whether any known layout matched; callers must fall back to the raw string
// when it is false.
func ParseEventDate(raw string) (time.Time, bool) {
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// When returns the event's parsed date. ok is false for malformed dates.
func (e Event) When() (time.Time, bool) {
	return ParseEventDate(e.EventDate)
}

// FormatEventDate renders an event_date for display ("Dec 15, 2025"). A date
// that fails to parse comes back verbatim rather than as a garbage timestamp.
func FormatEventDate(raw string) string {
	t, ok := ParseEventDate(raw)
	if !ok {
		return raw
	}
	return t.Format("Jan 2, 2006")
}

// DenormalizedEvent is an event with its relations resolved in memory.
// Category and Venue are nil when the referenced id has no match in the
// fetched collections; Tickets is always non-nil, possibly empty.
type DenormalizedEvent struct {
	Event
	Category *Category `json:"category"`
	Venue    *Venue    `json:"venue"`
	Tickets  []Ticket  `json:"tickets"`
}

// MinPrice is the smallest ticket price, or 0 with no tickets. Zero is a
// deliberate sentinel: events without tickets sort first under price-asc.
func (d DenormalizedEvent) MinPrice() float64 {
	return MinTicketPrice(d.Tickets)
}

// EventDetail is the shape of GET /events/{id}: the event plus embedded
// category and venue, both nullable upstream.
type EventDetail struct {
	ID            int       `json:"event_id"`
	Name          string    `json:"event_name"`
	EventDate     string    `json:"event_date"`
	Description   string    `json:"description"`
	OrganizerName string    `json:"organizer_name,omitempty"`
	Status        string    `json:"status"`
	Category      *Category `json:"category"`
	Venue         *Venue    `json:"venue"`
}
