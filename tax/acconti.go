/*
acconti.go - IRES and IRAP prepayment installments

PURPOSE:
  Computes the first (40%) and second (60%) acconto installments for the two
  main taxes. A business started in the fiscal year itself has no prior-year
  baseline and owes no acconti. Each tax's installment base comes from
  explicit prior-year data when available, otherwise from 80% of the current
  year's computed tax.

DUE DATES:
  First installment 30/06, second 30/11 of the fiscal year.
*/
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/warp/fiscal-engine/fiscal"
)

// Calendar categories for the two main taxes.
const (
	CategoryIRES = "IRES"
	CategoryIRAP = "IRAP"
)

// AccontiDetails is the outcome of the installment resolver.
type AccontiDetails struct {
	IsNewBusiness bool
	IRESBase      fiscal.Money
	IRESFirst     fiscal.Money
	IRESSecond    fiscal.Money
	IRAPBase      fiscal.Money
	IRAPFirst     fiscal.Money
	IRAPSecond    fiscal.Money
}

// ResolveAcconti computes the prepayment installments. currentIRES and
// currentIRAP are the taxes assessed for the fiscal year, used as the 80%
// fallback base when prior-year data is absent.
func ResolveAcconti(n Normalized, currentIRES, currentIRAP fiscal.Money, irapRate decimal.Decimal) AccontiDetails {
	if n.IsNewBusiness {
		return AccontiDetails{IsNewBusiness: true}
	}

	var details AccontiDetails

	details.IRESBase = currentIRES.Mul(accontoFallbackShare)
	if n.Utile2024.IsPositive() {
		details.IRESBase = n.Utile2024.Mul(iresStandardRate)
	}
	details.IRESFirst = details.IRESBase.Mul(accontoFirstShare)
	details.IRESSecond = details.IRESBase.Mul(accontoSecondShare)

	details.IRAPBase = currentIRAP.Mul(accontoFallbackShare)
	priorMargin := n.Revenue2024.Sub(n.Costs2024)
	if priorMargin.IsPositive() {
		details.IRAPBase = priorMargin.Mul(irapRate)
	}
	details.IRAPFirst = details.IRAPBase.Mul(accontoFirstShare)
	details.IRAPSecond = details.IRAPBase.Mul(accontoSecondShare)

	return details
}
