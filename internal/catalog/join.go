// Package catalog assembles the denormalized event view served to the
// storefront: batch-fetched collections are joined in memory, then filtered
// and sorted. All pipeline stages are pure and never fail; missing relations
// are represented as absent rather than raised as errors.
package catalog

import (
	"github.com/harshpatel5/Event-Ticket-System/internal/models"
)

// Denormalize resolves each event's category, venue and ticket references
// against the fetched collections. The join is tolerant: an unmatched
// category or venue id yields a nil embed, an event with no tickets gets an
// empty slice, and every input event appears in the output exactly once.
// Ticket input order is preserved per event so later stable sorts keep ties
// in collection order.
func Denormalize(events []models.Event, categories []models.Category, venues []models.Venue, tickets []models.Ticket) []models.DenormalizedEvent {
	categoryByID := make(map[int]models.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	venueByID := make(map[int]models.Venue, len(venues))
	for _, v := range venues {
		venueByID[v.ID] = v
	}

	ticketsByEvent := make(map[int][]models.Ticket)
	for _, t := range tickets {
		ticketsByEvent[t.EventID] = append(ticketsByEvent[t.EventID], t)
	}

	out := make([]models.DenormalizedEvent, 0, len(events))
	for _, e := range events {
		d := models.DenormalizedEvent{
			Event:   e,
			Tickets: []models.Ticket{},
		}
		if c, ok := categoryByID[e.CategoryID]; ok {
			d.Category = &c
		}
		if v, ok := venueByID[e.VenueID]; ok {
			d.Venue = &v
		}
		if ts, ok := ticketsByEvent[e.ID]; ok {
			d.Tickets = ts
		}
		out = append(out, d)
	}
	return out
}

// CountByCategory tallies events per category name. Categories with no
// events still appear with a zero count; events referencing an unknown
// category are not counted anywhere.
func CountByCategory(events []models.Event, categories []models.Category) map[string]int {
	counts := make(map[string]int, len(categories))
	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		counts[c.Name] = 0
		byID[c.ID] = c.Name
	}
	for _, e := range events {
		if name, ok := byID[e.CategoryID]; ok {
			counts[name]++
		}
	}
	return counts
}
