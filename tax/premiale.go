/*
premiale.go - Preferential IRES rate eligibility

PURPOSE:
  Evaluates the five cumulative conditions under which the reduced IRES rate
  applies for fiscal year 2025. Any other fiscal year is immediately
  ineligible. Each condition's individual outcome is reported so callers can
  show which one blocked eligibility.

CONDITIONS (all must hold):
  1. Prior-year profit positive, with 80% of it earmarked to reserve
  2. Planned investment >= max(30% of the required reserve,
     24% of the profit two years prior, EUR 20,000)
  3. A positive three-year average headcount exists and the current-year
     estimate is at least that average
  4. New permanent hires >= max(1, ceil(1% of prior-year headcount))
  5. No use of short-time-work wage support (CIG) in the relevant years
*/
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/fiscal-engine/fiscal"
)

// PremialeConditions reports each eligibility test individually.
type PremialeConditions struct {
	ReserveAllocated     bool
	InvestmentSufficient bool
	WorkforceMaintained  bool
	NewHiresSufficient   bool
	NoWageSupportUsed    bool
}

// PremialeDetails is the outcome of the preferential-rate resolver.
type PremialeDetails struct {
	Eligible           bool
	Conditions         PremialeConditions
	ReserveRequired    fiscal.Money
	InvestmentRequired fiscal.Money
	InvestmentPlanned  fiscal.Money
	MinimumHires       int
}

// EvaluatePremiale runs the five-condition cumulative test. The reduced rate
// exists only for fiscal year 2025.
func EvaluatePremiale(n Normalized) PremialeDetails {
	if n.FiscalYear != 2025 {
		return PremialeDetails{}
	}

	details := PremialeDetails{
		ReserveRequired:   n.Utile2024.FloorZero().Mul(premialeReserveShare),
		InvestmentPlanned: n.PlannedInvestment,
	}

	// 1. Prior profit positive and reserve earmarked.
	details.Conditions.ReserveAllocated = n.Utile2024.IsPositive()

	// 2. Planned investment against the greatest of the three thresholds.
	fromReserve := details.ReserveRequired.Mul(premialeInvestReserveMin)
	fromProfit := n.Utile2023.FloorZero().Mul(premialeInvestProfitMin)
	floor := fiscal.NewMoneyFromDecimal(premialeInvestFloor)
	details.InvestmentRequired = fromReserve.Max(fromProfit).Max(floor)
	details.Conditions.InvestmentSufficient = n.PlannedInvestment.GreaterThanOrEqual(details.InvestmentRequired)

	// 3. Workforce maintained against the three-year average.
	currentHeadcount := n.PriorHeadcount.Add(decimal.NewFromInt(int64(n.NewHires)))
	details.Conditions.WorkforceMaintained = n.AvgHeadcount.IsPositive() &&
		currentHeadcount.GreaterThanOrEqual(n.AvgHeadcount)

	// 4. New hires against max(1, ceil(1% of prior headcount)).
	minHires := n.PriorHeadcount.Mul(premialeHireQuota).Ceil().IntPart()
	if minHires < 1 {
		minHires = 1
	}
	details.MinimumHires = int(minHires)
	details.Conditions.NewHiresSufficient = int64(n.NewHires) >= minHires

	// 5. No CIG usage.
	details.Conditions.NoWageSupportUsed = !n.HasUsedCIG

	c := details.Conditions
	details.Eligible = c.ReserveAllocated && c.InvestmentSufficient &&
		c.WorkforceMaintained && c.NewHiresSufficient && c.NoWageSupportUsed
	return details
}

// Rate returns the IRES rate the eligibility outcome selects.
func (d PremialeDetails) Rate() decimal.Decimal {
	if d.Eligible {
		return iresPremialeRate
	}
	return iresStandardRate
}
