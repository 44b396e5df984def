/*
irap.go - Regional production tax

PURPOSE:
  Computes the IRAP base and tax. Employee costs are added back into the base
  (base = revenue - (costs - employee costs)) because personnel cost is not
  deductible under this tax; that is the regime's rule, not an arithmetic
  slip. Deductions are an estimate of employee social contributions plus a
  flat regional bonus for Calabria. The taxable base is floored at zero and
  taxed at the region's rate.

SEE ALSO:
  - rates.go: Region table and deduction shares
*/
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/fiscal-engine/fiscal"
)

// IRAPDetails is the outcome of the production-tax resolver.
type IRAPDetails struct {
	Rate        decimal.Decimal
	GrossBase   fiscal.Money
	Deductions  fiscal.Money
	TaxableBase fiscal.Money
	Tax         fiscal.Money
}

// ResolveIRAP computes the regional production tax from the normalized input.
func ResolveIRAP(n Normalized) IRAPDetails {
	details := IRAPDetails{Rate: IRAPRateFor(n.Region)}

	// Employee costs are not deductible: add them back.
	details.GrossBase = n.Revenue.Sub(n.Costs.Sub(n.EmployeeCosts))

	// Estimated employee social contributions are deductible.
	deductions := n.EmployeeCosts.FloorZero().Mul(irapContributiShare)
	if n.Region == "CALABRIA" {
		deductions = deductions.Add(fiscal.NewMoneyFromDecimal(calabriaIRAPDeduction))
	}
	details.Deductions = deductions

	details.TaxableBase = details.GrossBase.Sub(deductions).FloorZero()
	details.Tax = details.TaxableBase.Mul(details.Rate)
	return details
}
