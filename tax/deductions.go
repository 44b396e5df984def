/*
deductions.go - New-hire super-deduction

PURPOSE:
  Computes the bonus deduction for incremental personnel cost from new
  permanent hires. The cost is already deductible at 100%; the regime grants
  an extra 20% on top (a 120%-of-cost total allowance).

RULES:
  - Zero new-hire cost: zero deduction
  - Eligible base = min(new-hire cost, total personnel cost increase); the
    attributable cost can never exceed the overall increase
*/
package tax

import (
	"github.com/warp/fiscal-engine/fiscal"
)

// SuperDeductionDetails is the outcome of the super-deduction resolver.
type SuperDeductionDetails struct {
	EligibleBase fiscal.Money
	Deduction    fiscal.Money
}

// ResolveSuperDeduction computes the 20% bonus deduction on the eligible
// new-hire cost base.
func ResolveSuperDeduction(newHireCost, totalIncrease fiscal.Money) SuperDeductionDetails {
	cost := newHireCost.FloorZero()
	if cost.IsZero() {
		return SuperDeductionDetails{}
	}

	base := cost.Min(totalIncrease.FloorZero())
	return SuperDeductionDetails{
		EligibleBase: base,
		Deduction:    base.Mul(superDeductionRate),
	}
}
