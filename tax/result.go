/*
result.go - Calculation output record

PURPOSE:
  One nested structure summarizing every resolver's result plus the derived
  calendar and payment schedule. The record exists only for the duration of
  one calculation; nothing here is persisted by the engine itself.

OPTIONAL SUBSTRUCTURES:
  Interest and Premiale details are attached only when meaningful (passive
  interest present; fiscal year 2025). They are fixed shapes with optional
  presence, not open-ended maps.
*/
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/fiscal-engine/fiscal"
)

// Result is the full output of one calculation.
type Result struct {
	FiscalYear    int
	StartYear     int
	IsNewBusiness bool

	// IRES pipeline
	GrossProfit              fiscal.Money
	TaxableIncome            fiscal.Money
	TaxableIncomeAfterLosses fiscal.Money
	IRESRate                 decimal.Decimal
	IRES                     fiscal.Money

	// Resolver outcomes
	Interest       *InterestDetails
	Losses         LossDetails
	SuperDeduction SuperDeductionDetails
	Premiale       *PremialeDetails
	IRAP           IRAPDetails
	VAT            VATDetails
	Contributions  ContributionDetails
	Acconti        AccontiDetails

	// Totals and planning
	TotalDue        fiscal.Money
	MonthlySetAside fiscal.Money

	// Derived collections
	Calendar        []fiscal.Event
	PaymentSchedule []fiscal.ScheduleEntry
}
