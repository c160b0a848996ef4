package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/harshpatel5/Event-Ticket-System/internal/models"
)

// Source is the slice of the upstream client the loader needs. All four
// collections are batch endpoints; relations are resolved in memory instead
// of per-event round trips.
type Source interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
}

// Load fetches the four collections concurrently and joins them. Any fetch
// failure aborts the whole load; a partial join is never returned.
func Load(ctx context.Context, src Source) ([]models.DenormalizedEvent, error) {
	var (
		events     []models.Event
		categories []models.Category
		venues     []models.Venue
		tickets    []models.Ticket
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		events, err = src.ListEvents(ctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = src.ListCategories(ctx)
		return err
	})
	g.Go(func() (err error) {
		venues, err = src.ListVenues(ctx)
		return err
	})
	g.Go(func() (err error) {
		tickets, err = src.ListTickets(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Denormalize(events, categories, venues, tickets), nil
}
