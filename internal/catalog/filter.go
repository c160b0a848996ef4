package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/harshpatel5/Event-Ticket-System/internal/models"
)

// AllCategories is the sentinel that turns the category filter into the
// identity.
const AllCategories = "All"

// FilterByCategory keeps events whose joined category name equals name
// exactly. The "All" sentinel (or an empty name) keeps everything. Events
// with no joined category never match a concrete name.
func FilterByCategory(events []models.DenormalizedEvent, name string) []models.DenormalizedEvent {
	if name == "" || name == AllCategories {
		return events
	}
	out := make([]models.DenormalizedEvent, 0, len(events))
	for _, e := range events {
		if e.Category != nil && e.Category.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// FilterByLocation keeps events whose joined venue city equals city exactly.
// An empty city keeps everything.
func FilterByLocation(events []models.DenormalizedEvent, city string) []models.DenormalizedEvent {
	if city == "" {
		return events
	}
	out := make([]models.DenormalizedEvent, 0, len(events))
	for _, e := range events {
		if e.Venue != nil && e.Venue.City == city {
			out = append(out, e)
		}
	}
	return out
}

// FilterByQuery keeps events whose name contains q, case-insensitively. An
// empty query keeps everything.
func FilterByQuery(events []models.DenormalizedEvent, q string) []models.DenormalizedEvent {
	if q == "" {
		return events
	}
	q = strings.ToLower(q)
	out := make([]models.DenormalizedEvent, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByDate keeps events inside a window anchored at now. Windows:
//
//	today       same calendar day as now, including hours already passed
//	week        now < date <= now+7d
//	month       now < date <= now+1mo
//	year        now < date <= now+1y
//
// An empty rangeKey keeps everything; so does an unknown key. Events whose
// date fails to parse never fall inside any window.
func FilterByDate(events []models.DenormalizedEvent, rangeKey string, now time.Time) []models.DenormalizedEvent {
	if rangeKey == "" {
		return events
	}

	var include func(t time.Time) bool
	switch rangeKey {
	case "today":
		y, m, d := now.Date()
		include = func(t time.Time) bool {
			ty, tm, td := t.Date()
			return ty == y && tm == m && td == d
		}
	case "week":
		limit := now.AddDate(0, 0, 7)
		include = func(t time.Time) bool { return t.After(now) && !t.After(limit) }
	case "month":
		limit := now.AddDate(0, 1, 0)
		include = func(t time.Time) bool { return t.After(now) && !t.After(limit) }
	case "year":
		limit := now.AddDate(1, 0, 0)
		include = func(t time.Time) bool { return t.After(now) && !t.After(limit) }
	default:
		return events
	}

	out := make([]models.DenormalizedEvent, 0, len(events))
	for _, e := range events {
		t, ok := e.When()
		if ok && include(t) {
			out = append(out, e)
		}
	}
	return out
}

// Sort keys accepted by SortEvents.
const (
	SortDateAsc   = "date-asc"
	SortDateDesc  = "date-desc"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
)

// SortEvents returns a sorted copy of events; the input is never mutated and
// equal keys keep their relative input order. An unknown or empty key returns
// the copy in input order. Date sorts place unparseable dates last under both
// directions.
func SortEvents(events []models.DenormalizedEvent, key string) []models.DenormalizedEvent {
	sorted := make([]models.DenormalizedEvent, len(events))
	copy(sorted, events)

	switch key {
	case SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return dateLess(sorted[i], sorted[j], false)
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return dateLess(sorted[i], sorted[j], true)
		})
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinPrice() < sorted[j].MinPrice()
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinPrice() > sorted[j].MinPrice()
		})
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	}
	return sorted
}

func dateLess(a, b models.DenormalizedEvent, desc bool) bool {
	ta, aok := a.When()
	tb, bok := b.When()
	if aok != bok {
		return aok
	}
	if !aok {
		return false
	}
	if desc {
		return ta.After(tb)
	}
	return ta.Before(tb)
}
