/*
schedule.go - Payment schedule replay

PURPOSE:
  Replays fiscal obligations and synthetic monthly deposits forward from a
  processing date, maintaining a running cash balance and flagging shortfalls.
  This is the central state machine of the engine: everything upstream only
  produces amounts and dates; this is where they meet the company's cash.

REPLAY RULES:
  Deposit (income) entry:
    newBalance      = previousBalance + amount
    requiredPayment = amount (committed savings, not a shortfall)

  Obligation entry:
    tentative = previousBalance - amount
    if tentative < 0:
      requiredPayment = |tentative|   (the shortfall)
      newBalance      = 0             (clamped, not carried as debt)
    else:
      requiredPayment = 0
      newBalance      = tentative

  Deficit is |newBalance| when negative. Given the clamp above it is
  structurally always zero; callers rely on the field being present with
  exactly this behavior, so it is preserved as-is.

ROUNDING:
  Each entry's monetary fields are rounded to two decimals independently and
  the rounded new balance is carried into the next entry, so row-to-row
  continuity holds on the rounded values.

SEE ALSO:
  - event.go: Event type and date ordering
  - money.go: Rounding semantics
*/
package fiscal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SCHEDULE ENTRY - One row of the replayed ledger
// =============================================================================

type ScheduleEntry struct {
	Date            Date
	Category        string
	Description     string
	Amount          Money
	IsIncome        bool
	PreviousBalance Money
	NewBalance      Money
	RequiredPayment Money
	Deficit         Money
}

// =============================================================================
// SCHEDULE BUILDER
// =============================================================================

// ScheduleBuilder replays calendar obligations and monthly deposits from
// Today forward, starting from OpeningBalance.
type ScheduleBuilder struct {
	Today          Date
	OpeningBalance Money
}

type scheduleEvent struct {
	Event
	income bool
}

// Build merges the deposits and obligations falling on or after Today, sorts
// them ascending by date (stable: deposits precede obligations on equal
// dates, insertion order otherwise), and replays them into ledger entries.
func (sb ScheduleBuilder) Build(deposits, obligations []Event) []ScheduleEntry {
	var merged []scheduleEvent
	for _, e := range EventsOnOrAfter(deposits, sb.Today) {
		merged = append(merged, scheduleEvent{Event: e, income: true})
	}
	for _, e := range EventsOnOrAfter(obligations, sb.Today) {
		merged = append(merged, scheduleEvent{Event: e, income: false})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	balance := sb.OpeningBalance.Round2()
	entries := make([]ScheduleEntry, 0, len(merged))

	for _, ev := range merged {
		entry := ScheduleEntry{
			Date:            ev.Date,
			Category:        ev.Category,
			Description:     ev.Description,
			Amount:          ev.Amount.Round2(),
			IsIncome:        ev.income,
			PreviousBalance: balance,
		}

		if ev.income {
			entry.NewBalance = balance.Add(entry.Amount).Round2()
			entry.RequiredPayment = entry.Amount
		} else {
			tentative := balance.Sub(entry.Amount)
			if tentative.IsNegative() {
				entry.RequiredPayment = tentative.Abs().Round2()
				entry.NewBalance = Zero
			} else {
				entry.RequiredPayment = Zero
				entry.NewBalance = tentative.Round2()
			}
		}

		if entry.NewBalance.IsNegative() {
			entry.Deficit = entry.NewBalance.Abs().Round2()
		} else {
			entry.Deficit = Zero
		}

		balance = entry.NewBalance
		entries = append(entries, entry)
	}

	return entries
}

// MonthlyDeposits generates one deposit event per calendar month of the year
// whose first day is on or after the cutoff date.
func MonthlyDeposits(year int, cutoff Date, amount Money, category, description string) []Event {
	var events []Event
	for m := time.January; m <= time.December; m++ {
		first := NewDate(year, m, 1)
		if first.AfterOrEqual(cutoff) {
			events = append(events, Event{
				Date:        first,
				Amount:      amount,
				Category:    category,
				Description: description,
			})
		}
	}
	return events
}

// =============================================================================
// INSTALLMENT PLANNER - Standalone savings-gap helper
// =============================================================================

// InstallmentPlan is the result of planning equal monthly set-asides toward a
// deadline.
type InstallmentPlan struct {
	AlreadyCovered bool
	MonthlyAmount  Money
	Gap            Money
}

// PlanInstallments returns the equal monthly amount (rounded up to the next
// cent) needed to close the gap between the current balance and the total due
// across the given number of months. A non-positive months value yields a
// meaningless but non-crashing result; validating it is the caller's job.
func PlanInstallments(totalDue, currentBalance Money, months int) InstallmentPlan {
	gap := totalDue.Sub(currentBalance)
	if !gap.IsPositive() {
		return InstallmentPlan{AlreadyCovered: true, MonthlyAmount: Zero, Gap: Zero}
	}
	divisor := decimal.NewFromInt(int64(months))
	if divisor.IsZero() {
		divisor = decimal.NewFromInt(1)
	}
	return InstallmentPlan{
		MonthlyAmount: gap.Div(divisor).CeilCents(),
		Gap:           gap.Round2(),
	}
}
