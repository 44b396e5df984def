/*
contributions.go - Mandatory INPS contributions

PURPOSE:
  Computes social contributions for the administrator and for employees.
  The administrator's contribution base is the salary clamped between the
  regime's floor and ceiling, taxed at the fixed rate; zero when the salary
  is not positive. Employee contributions are a fixed share of total employee
  cost, applied only when both headcount and cost are positive.
*/
package tax

import (
	"github.com/warp/fiscal-engine/fiscal"
)

// CategoryINPS tags contribution events on the calendar.
const CategoryINPS = "INPS"

// ContributionDetails is the outcome of the social-contribution resolver.
type ContributionDetails struct {
	AdminBase fiscal.Money
	Admin     fiscal.Money
	Employees fiscal.Money
	Total     fiscal.Money
}

// ResolveContributions computes administrator and employee contributions.
func ResolveContributions(n Normalized) ContributionDetails {
	var details ContributionDetails

	if n.AdminSalary.IsPositive() {
		base := n.AdminSalary.
			Max(fiscal.NewMoneyFromDecimal(adminContribFloor)).
			Min(fiscal.NewMoneyFromDecimal(adminContribCeiling))
		details.AdminBase = base
		details.Admin = base.Mul(adminContribRate)
	}

	if n.Employees > 0 && n.EmployeeCosts.IsPositive() {
		details.Employees = n.EmployeeCosts.Mul(employeeContribShare)
	}

	details.Total = details.Admin.Add(details.Employees)
	return details
}
