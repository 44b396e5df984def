package fiscal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/fiscal-engine/fiscal"
)

// =============================================================================
// SCHEDULE REPLAY
// =============================================================================

func TestScheduleBuilder_ReplayRules(t *testing.T) {
	// GIVEN: An opening balance, one deposit, and two obligations of which
	//        the second overshoots the balance
	// WHEN: Building the schedule
	// THEN: Income credits, obligations debit, shortfalls clamp to zero

	today := fiscal.NewDate(2025, time.March, 1)
	deposits := []fiscal.Event{
		{Date: fiscal.NewDate(2025, time.April, 1), Amount: fiscal.NewMoney(500), Category: "SAVE"},
	}
	obligations := []fiscal.Event{
		{Date: fiscal.NewDate(2025, time.April, 10), Amount: fiscal.NewMoney(800), Category: "TAX"},
		{Date: fiscal.NewDate(2025, time.May, 10), Amount: fiscal.NewMoney(1000), Category: "TAX"},
	}

	builder := fiscal.ScheduleBuilder{Today: today, OpeningBalance: fiscal.NewMoney(400)}
	entries := builder.Build(deposits, obligations)
	require.Len(t, entries, 3)

	// Deposit: balance 400 -> 900, required payment equals the deposit.
	assert.True(t, entries[0].IsIncome)
	assert.InDelta(t, 900, entries[0].NewBalance.Float64(), 0.001)
	assert.InDelta(t, 500, entries[0].RequiredPayment.Float64(), 0.001)

	// Covered obligation: 900 - 800 = 100, no required payment.
	assert.False(t, entries[1].IsIncome)
	assert.InDelta(t, 100, entries[1].NewBalance.Float64(), 0.001)
	assert.True(t, entries[1].RequiredPayment.IsZero())

	// Shortfall: 100 - 1000 clamps to zero with the gap reported.
	assert.True(t, entries[2].NewBalance.IsZero())
	assert.InDelta(t, 900, entries[2].RequiredPayment.Float64(), 0.001)
	assert.True(t, entries[2].Deficit.IsZero(), "deficit stays zero under the clamp")
}

func TestScheduleBuilder_PastEventsExcluded(t *testing.T) {
	// GIVEN: Events before and after the processing date
	// WHEN: Building the schedule
	// THEN: Only events on or after today are replayed

	today := fiscal.NewDate(2025, time.June, 15)
	obligations := []fiscal.Event{
		{Date: fiscal.NewDate(2025, time.May, 16), Amount: fiscal.NewMoney(100)},
		{Date: fiscal.NewDate(2025, time.June, 15), Amount: fiscal.NewMoney(200)},
		{Date: fiscal.NewDate(2025, time.June, 30), Amount: fiscal.NewMoney(300)},
	}

	builder := fiscal.ScheduleBuilder{Today: today, OpeningBalance: fiscal.NewMoney(1000)}
	entries := builder.Build(nil, obligations)

	require.Len(t, entries, 2)
	assert.InDelta(t, 200, entries[0].Amount.Float64(), 0.001, "same-day event is included")
	assert.InDelta(t, 300, entries[1].Amount.Float64(), 0.001)
}

func TestScheduleBuilder_DepositsPrecedeObligationsOnSameDay(t *testing.T) {
	// GIVEN: A deposit and an obligation on the same date
	// WHEN: Building the schedule
	// THEN: The deposit is replayed first (stable merge order)

	day := fiscal.NewDate(2025, time.July, 1)
	deposits := []fiscal.Event{{Date: day, Amount: fiscal.NewMoney(100)}}
	obligations := []fiscal.Event{{Date: day, Amount: fiscal.NewMoney(150)}}

	builder := fiscal.ScheduleBuilder{Today: day, OpeningBalance: fiscal.NewMoney(50)}
	entries := builder.Build(deposits, obligations)

	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsIncome)
	assert.InDelta(t, 150, entries[0].NewBalance.Float64(), 0.001)
	assert.True(t, entries[1].NewBalance.IsZero())
	assert.True(t, entries[1].RequiredPayment.IsZero())
}

func TestMonthlyDeposits_OnlyRemainingMonths(t *testing.T) {
	// GIVEN: A processing date of June 15
	// WHEN: Generating monthly deposits for the year
	// THEN: Only July through December qualify (June 1 is already past)

	cutoff := fiscal.NewDate(2025, time.June, 15)
	events := fiscal.MonthlyDeposits(2025, cutoff, fiscal.NewMoney(100), "SAVE", "set-aside")

	require.Len(t, events, 6)
	assert.Equal(t, time.July, events[0].Date.Month())
	assert.Equal(t, time.December, events[5].Date.Month())
}

func TestMonthlyDeposits_FirstOfMonthOnCutoffIncluded(t *testing.T) {
	cutoff := fiscal.NewDate(2025, time.June, 1)
	events := fiscal.MonthlyDeposits(2025, cutoff, fiscal.NewMoney(100), "SAVE", "set-aside")

	require.Len(t, events, 7)
	assert.Equal(t, time.June, events[0].Date.Month())
}

// =============================================================================
// INSTALLMENT PLANNER
// =============================================================================

func TestPlanInstallments(t *testing.T) {
	t.Run("already covered", func(t *testing.T) {
		plan := fiscal.PlanInstallments(fiscal.NewMoney(1000), fiscal.NewMoney(1200), 6)
		assert.True(t, plan.AlreadyCovered)
		assert.True(t, plan.MonthlyAmount.IsZero())
	})

	t.Run("gap split and rounded up to the cent", func(t *testing.T) {
		plan := fiscal.PlanInstallments(fiscal.NewMoney(1000), fiscal.NewMoney(0), 3)
		assert.False(t, plan.AlreadyCovered)
		assert.InDelta(t, 333.34, plan.MonthlyAmount.Float64(), 0.001)
	})

	t.Run("zero months does not crash", func(t *testing.T) {
		plan := fiscal.PlanInstallments(fiscal.NewMoney(1000), fiscal.NewMoney(0), 0)
		assert.False(t, plan.AlreadyCovered)
		assert.InDelta(t, 1000, plan.MonthlyAmount.Float64(), 0.001)
	})
}
