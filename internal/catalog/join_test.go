package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshpatel5/Event-Ticket-System/internal/models"
)

func TestDenormalizePreservesEveryEvent(t *testing.T) {
	events := []models.Event{
		{ID: 1, Name: "Rock Legends Live", CategoryID: 1, VenueID: 1},
		{ID: 2, Name: "Basketball Championship", CategoryID: 99, VenueID: 99},
		{ID: 3, Name: "Shakespeare Festival"},
	}
	categories := []models.Category{{ID: 1, Name: "Concerts"}}
	venues := []models.Venue{{ID: 1, Name: "Grand Arena", City: "Toronto"}}

	joined := Denormalize(events, categories, venues, nil)

	require.Len(t, joined, len(events))
	for _, d := range joined {
		assert.NotNil(t, d.Tickets, "ticket slice must always be present")
	}
}

func TestDenormalizeToleratesMissingRelations(t *testing.T) {
	events := []models.Event{{ID: 2, Name: "Orphan Event", CategoryID: 42, VenueID: 42}}

	joined := Denormalize(events, nil, nil, nil)

	require.Len(t, joined, 1)
	assert.Nil(t, joined[0].Category)
	assert.Nil(t, joined[0].Venue)
	assert.Empty(t, joined[0].Tickets)
}

func TestDenormalizeGroupsTicketsByEvent(t *testing.T) {
	events := []models.Event{{ID: 1}, {ID: 2}}
	tickets := []models.Ticket{
		{ID: 10, EventID: 1, Type: "General Admission", Price: 75},
		{ID: 11, EventID: 2, Type: "VIP", Price: 150},
		{ID: 12, EventID: 1, Type: "Premium Floor", Price: 250},
	}

	joined := Denormalize(events, nil, nil, tickets)

	require.Len(t, joined, 2)
	require.Len(t, joined[0].Tickets, 2)
	// collection order within an event is preserved
	assert.Equal(t, 10, joined[0].Tickets[0].ID)
	assert.Equal(t, 12, joined[0].Tickets[1].ID)
	require.Len(t, joined[1].Tickets, 1)
}

func TestDenormalizeRoundTrip(t *testing.T) {
	events := []models.Event{{ID: 1, EventDate: "2025-01-01", CategoryID: 1, VenueID: 7}}
	categories := []models.Category{{ID: 1, Name: "Concerts"}}
	tickets := []models.Ticket{{ID: 10, EventID: 1, Price: 50}}

	joined := Denormalize(events, categories, nil, tickets)

	require.Len(t, joined, 1)
	require.NotNil(t, joined[0].Category)
	assert.Equal(t, "Concerts", joined[0].Category.Name)
	assert.Nil(t, joined[0].Venue)
	require.Len(t, joined[0].Tickets, 1)
	assert.Equal(t, float64(50), joined[0].MinPrice())
}

func TestCountByCategory(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Concerts"},
		{ID: 2, Name: "Sports"},
		{ID: 3, Name: "Comedy"},
	}
	events := []models.Event{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 1},
		{ID: 3, CategoryID: 2},
		{ID: 4, CategoryID: 42}, // unknown category, counted nowhere
	}

	counts := CountByCategory(events, categories)

	assert.Equal(t, 2, counts["Concerts"])
	assert.Equal(t, 1, counts["Sports"])
	assert.Equal(t, 0, counts["Comedy"])
	assert.Len(t, counts, 3)
}
