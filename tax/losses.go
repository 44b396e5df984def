/*
losses.go - Prior-year tax loss carry-forward

PURPOSE:
  Applies carried losses against current taxable income. Losses from the
  first three fiscal years of activity are applied first, without limit.
  Ordinary prior losses follow, capped at 80% of the remaining income.

RULES:
  - Taxable income <= 0: nothing is consumed, balances unchanged
  - First-three-year losses: applied up to the full remaining income and not
    carried further in this model
  - Ordinary losses: applied up to 80% of the income remaining after the
    first-three-year losses; the unused balance carries forward

SEE ALSO:
  - engine.go: Applies TotalUsed against the IRES base
*/
package tax

import (
	"github.com/warp/fiscal-engine/fiscal"
)

// LossDetails is the outcome of the loss carry-forward resolver.
type LossDetails struct {
	UsedFirst3Years   fiscal.Money
	UsedOrdinary      fiscal.Money
	TotalUsed         fiscal.Money
	RemainingOrdinary fiscal.Money
}

// ApplyLossCarryForward consumes carried losses against the given taxable
// income under the tiered usage limits.
func ApplyLossCarryForward(taxableIncome, first3Years, ordinary fiscal.Money) LossDetails {
	first3 := first3Years.FloorZero()
	ord := ordinary.FloorZero()

	if !taxableIncome.IsPositive() {
		return LossDetails{RemainingOrdinary: ord}
	}

	usedFirst3 := first3.Min(taxableIncome)
	remaining := taxableIncome.Sub(usedFirst3)

	// Ordinary losses are limited to 80% of the remaining income.
	cap := remaining.Mul(ordinaryLossCap)
	usedOrdinary := ord.Min(cap)

	return LossDetails{
		UsedFirst3Years:   usedFirst3,
		UsedOrdinary:      usedOrdinary,
		TotalUsed:         usedFirst3.Add(usedOrdinary),
		RemainingOrdinary: ord.Sub(usedOrdinary),
	}
}
