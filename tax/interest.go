/*
interest.go - Passive-interest deductibility under the ROL cap

PURPOSE:
  Splits passive interest into a deductible and a non-deductible portion.
  Passive interest is first offset one-to-one by active interest income; the
  remainder is deductible only up to 30% of the fiscal gross operating margin
  (ROL). Whatever exceeds the cap is non-deductible and narrows the IRES base.

INVARIANT:
  Deductible + NonDeductible == PassiveInterest, to the cent.

SEE ALSO:
  - engine.go: Subtracts the non-deductible portion from the tax base
  - input.go: ROL estimate when not supplied (15% of revenue)
*/
package tax

import (
	"github.com/warp/fiscal-engine/fiscal"
)

// InterestDetails is the outcome of the ROL/interest resolver.
type InterestDetails struct {
	ActiveInterest  fiscal.Money
	PassiveInterest fiscal.Money
	FiscalROL       fiscal.Money
	ROLCap          fiscal.Money
	Deductible      fiscal.Money
	NonDeductible   fiscal.Money
}

// ResolveInterest computes the deductible/non-deductible split. Negative or
// zero inputs degrade to zero offsets; there are no error cases.
func ResolveInterest(active, passive, rol fiscal.Money) InterestDetails {
	details := InterestDetails{
		ActiveInterest:  active.FloorZero(),
		PassiveInterest: passive.FloorZero(),
		FiscalROL:       rol.FloorZero(),
	}
	details.ROLCap = details.FiscalROL.Mul(rolCapShare)

	// One-to-one offset against active interest income.
	offset := details.PassiveInterest.Min(details.ActiveInterest)
	remainder := details.PassiveInterest.Sub(offset)

	// The remainder is deductible only up to the ROL cap.
	underCap := remainder.Min(details.ROLCap)

	details.Deductible = offset.Add(underCap)
	details.NonDeductible = details.PassiveInterest.Sub(details.Deductible)
	return details
}
