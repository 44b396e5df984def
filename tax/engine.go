/*
engine.go - Calculation orchestrator

PURPOSE:
  Sequences the resolvers in dependency order and assembles the result
  record. The ordering matters because each step narrows the tax base used
  by the next:

    grossProfit              = revenue - costs
    taxableIncome            = max(0, grossProfit
                                      - non-deductible interest
                                      - super-deduction)
    taxableIncomeAfterLosses = max(0, taxableIncome - losses used)
    IRES                     = taxableIncomeAfterLosses x rate

  The rate is the premiale reduced rate when the five-condition test passes,
  the standard rate otherwise. IRAP, VAT, contributions, and acconti are
  computed from the same normalized snapshot; the calendar merges their
  deadlines and the schedule replays it against the cash balance.

CONCURRENCY:
  Calculate is a pure function of its input plus the processing date. No
  process-wide state exists; concurrent calls are independent.

SEE ALSO:
  - input.go: Normalization (the only defaulting step)
  - calendar.go, fiscal/schedule.go: The derived collections
*/
package tax

import (
	"github.com/warp/fiscal-engine/fiscal"
)

// CategoryDeposit tags the synthetic monthly set-aside entries on the
// payment schedule.
const CategoryDeposit = "ACCANTONAMENTO"

// Engine computes the annual fiscal obligations for one input snapshot.
// The zero value uses the current date as the processing date; tests pin
// Today for determinism.
type Engine struct {
	Today fiscal.Date
}

// Calculate runs the full pipeline and assembles the result record.
func (e Engine) Calculate(in Input) *Result {
	n := in.Normalize()

	today := e.Today
	if today.IsZero() {
		today = fiscal.Today()
	}

	result := &Result{
		FiscalYear:    n.FiscalYear,
		StartYear:     n.StartYear,
		IsNewBusiness: n.IsNewBusiness,
	}

	// 1. Interest deductibility narrows the IRES base first.
	interest := ResolveInterest(n.ActiveInterest, n.PassiveInterest, n.FiscalROL)
	if n.PassiveInterest.IsPositive() {
		result.Interest = &interest
	}

	// 2. New-hire super-deduction.
	result.SuperDeduction = ResolveSuperDeduction(n.NewHireCost, n.PersonnelCostIncrease)

	result.GrossProfit = n.Revenue.Sub(n.Costs)
	result.TaxableIncome = result.GrossProfit.
		Sub(interest.NonDeductible).
		Sub(result.SuperDeduction.Deduction).
		FloorZero()

	// 3. Loss carry-forward against the narrowed base.
	result.Losses = ApplyLossCarryForward(result.TaxableIncome, n.LossesFirst3Years, n.OrdinaryLosses)
	result.TaxableIncomeAfterLosses = result.TaxableIncome.Sub(result.Losses.TotalUsed).FloorZero()

	// 4. Rate selection via the premiale test.
	premiale := EvaluatePremiale(n)
	if n.FiscalYear == 2025 {
		result.Premiale = &premiale
	}
	result.IRESRate = premiale.Rate()
	result.IRES = result.TaxableIncomeAfterLosses.Mul(result.IRESRate)

	// 5. The independent resolvers.
	result.IRAP = ResolveIRAP(n)
	result.VAT = ResolveVAT(n)
	result.Contributions = ResolveContributions(n)
	result.Acconti = ResolveAcconti(n, result.IRES, result.IRAP.Tax, result.IRAP.Rate)

	// 6. Calendar and payment schedule.
	result.Calendar = BuildCalendar(n, result.VAT, result.Acconti, result.Contributions)

	result.TotalDue = result.IRES.
		Add(result.IRAP.Tax).
		Add(result.VAT.Total).
		Add(result.Contributions.Total)
	result.MonthlySetAside = result.TotalDue.Div(twelve)

	deposits := fiscal.MonthlyDeposits(n.FiscalYear, today, result.MonthlySetAside,
		CategoryDeposit, "Accantonamento mensile consigliato")
	builder := fiscal.ScheduleBuilder{Today: today, OpeningBalance: n.CurrentBalance}
	result.PaymentSchedule = builder.Build(deposits, result.Calendar)

	return result
}
