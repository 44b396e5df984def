package fiscal

import (
	"sort"
)

// =============================================================================
// EVENT - A dated fiscal obligation (or credit) on the calendar
// =============================================================================

type Event struct {
	Date        Date
	Amount      Money
	Category    string
	Description string
}

// SortEventsByDate sorts events ascending by date. The sort is stable:
// events on the same day keep their insertion order, which is how the
// calendar builder guarantees a deterministic tie-break.
func SortEventsByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}

// EventsOnOrAfter returns the events whose date is on or after the cutoff,
// preserving order. Past-due events are excluded from schedule replay, not
// retroactively reconciled.
func EventsOnOrAfter(events []Event, cutoff Date) []Event {
	var out []Event
	for _, e := range events {
		if e.Date.AfterOrEqual(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
