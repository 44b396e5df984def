/*
vat.go - VAT liability and periodic deadlines

PURPOSE:
  Nets output VAT against input VAT, adds any carried-over VAT debt, and
  expands the annual total into periodic payment deadlines according to the
  filing-frequency regime.

DEADLINES:
  Quarterly: four equal installments on 16/05, 20/08, 17/11 of the fiscal
  year and 16/01 of the next.
  Monthly: twelve equal installments, each due the 16th of the following
  month (December falls on 16/01 of the next year), labeled with the month
  covered.
  Unrecognized regime codes produce no deadlines; the quarterly-equivalent
  amount is still computed using the fallback cadence.

SEE ALSO:
  - rates.go: Regime table and estimate rate
  - calendar.go: Merges the deadlines into the fiscal calendar
*/
package tax

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/fiscal-engine/fiscal"
)

// CategoryVAT tags VAT events on the calendar.
const CategoryVAT = "IVA"

var italianMonths = [...]string{
	time.January:   "Gennaio",
	time.February:  "Febbraio",
	time.March:     "Marzo",
	time.April:     "Aprile",
	time.May:       "Maggio",
	time.June:      "Giugno",
	time.July:      "Luglio",
	time.August:    "Agosto",
	time.September: "Settembre",
	time.October:   "Ottobre",
	time.November:  "Novembre",
	time.December:  "Dicembre",
}

// VATDetails is the outcome of the VAT resolver.
type VATDetails struct {
	OutputVAT           fiscal.Money
	InputVAT            fiscal.Money
	NetVAT              fiscal.Money
	CarriedDebt         fiscal.Money
	Total               fiscal.Money
	QuarterlyEquivalent fiscal.Money
	Deadlines           []fiscal.Event
}

// ResolveVAT computes the annual VAT due and its payment deadlines.
func ResolveVAT(n Normalized) VATDetails {
	details := VATDetails{
		OutputVAT: n.OutputVAT,
		InputVAT:  n.InputVAT,
	}

	details.NetVAT = n.OutputVAT.Sub(n.InputVAT).FloorZero()
	details.Total = details.NetVAT
	if n.HasVATDebt {
		details.CarriedDebt = n.VATDebtAmount
		details.Total = details.Total.Add(n.VATDebtAmount)
	}

	regime, recognized := VATRegimeFor(n.VATRegime)
	details.QuarterlyEquivalent = details.Total.Div(decimal.NewFromInt(int64(regime.Installments)))

	if !recognized {
		return details
	}

	switch regime.Code {
	case RegimeQuarterly:
		details.Deadlines = quarterlyVATDeadlines(n.FiscalYear, details.Total)
	case RegimeMonthly:
		details.Deadlines = monthlyVATDeadlines(n.FiscalYear, details.Total)
	}
	return details
}

func quarterlyVATDeadlines(year int, total fiscal.Money) []fiscal.Event {
	installment := total.Div(four)
	dates := []fiscal.Date{
		fiscal.NewDate(year, time.May, 16),
		fiscal.NewDate(year, time.August, 20),
		fiscal.NewDate(year, time.November, 17),
		fiscal.NewDate(year+1, time.January, 16),
	}

	events := make([]fiscal.Event, len(dates))
	for i, d := range dates {
		events[i] = fiscal.Event{
			Date:        d,
			Amount:      installment,
			Category:    CategoryVAT,
			Description: fmt.Sprintf("Liquidazione IVA %d° trimestre", i+1),
		}
	}
	return events
}

func monthlyVATDeadlines(year int, total fiscal.Money) []fiscal.Event {
	installment := total.Div(twelve)

	events := make([]fiscal.Event, 0, 12)
	for m := time.January; m <= time.December; m++ {
		due := fiscal.NewDate(year, m, 16).AddMonths(1)
		events = append(events, fiscal.Event{
			Date:        due,
			Amount:      installment,
			Category:    CategoryVAT,
			Description: "Liquidazione IVA " + italianMonths[m],
		})
	}
	return events
}
