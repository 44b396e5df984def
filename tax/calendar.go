/*
calendar.go - Fiscal calendar assembly

PURPOSE:
  Merges VAT deadlines, the acconto installments for both main taxes, and
  the quarterly contribution due-dates into one chronologically sorted event
  list. The sort is stable: events on the same day keep their insertion
  order, which is VAT, then IRES, then IRAP, then INPS.

RULES:
  - Acconto events appear only when their amount is positive and the
    business is not new in the fiscal year
  - Each contribution event carries a quarter of the annual total
*/
package tax

import (
	"fmt"
	"time"

	"github.com/warp/fiscal-engine/fiscal"
)

// contributionDueDates are the fixed quarterly INPS due dates of the year.
func contributionDueDates(year int) []fiscal.Date {
	return []fiscal.Date{
		fiscal.NewDate(year, time.February, 16),
		fiscal.NewDate(year, time.May, 16),
		fiscal.NewDate(year, time.August, 20),
		fiscal.NewDate(year, time.November, 16),
	}
}

// BuildCalendar assembles the sorted fiscal calendar for the year.
func BuildCalendar(n Normalized, vat VATDetails, acconti AccontiDetails, contributions ContributionDetails) []fiscal.Event {
	var events []fiscal.Event

	events = append(events, vat.Deadlines...)

	if !acconti.IsNewBusiness {
		events = appendAcconto(events, CategoryIRES, "Acconto IRES", n.FiscalYear, acconti.IRESFirst, acconti.IRESSecond)
		events = appendAcconto(events, CategoryIRAP, "Acconto IRAP", n.FiscalYear, acconti.IRAPFirst, acconti.IRAPSecond)
	}

	if contributions.Total.IsPositive() {
		quarter := contributions.Total.Div(four)
		for i, due := range contributionDueDates(n.FiscalYear) {
			events = append(events, fiscal.Event{
				Date:        due,
				Amount:      quarter,
				Category:    CategoryINPS,
				Description: fmt.Sprintf("Contributi INPS %d° trimestre", i+1),
			})
		}
	}

	fiscal.SortEventsByDate(events)
	return events
}

func appendAcconto(events []fiscal.Event, category, label string, year int, first, second fiscal.Money) []fiscal.Event {
	if first.IsPositive() {
		events = append(events, fiscal.Event{
			Date:        fiscal.NewDate(year, time.June, 30),
			Amount:      first,
			Category:    category,
			Description: label + " - prima rata",
		})
	}
	if second.IsPositive() {
		events = append(events, fiscal.Event{
			Date:        fiscal.NewDate(year, time.November, 30),
			Amount:      second,
			Category:    category,
			Description: label + " - seconda rata",
		})
	}
	return events
}
