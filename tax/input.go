/*
input.go - Calculation input record and normalization

PURPOSE:
  Defines the flat input snapshot supplied by the caller and the single
  normalization step that resolves every optional field to a concrete value
  before any resolver runs. Resolvers never re-implement defaulting logic.

DEFAULTING CHAINS:
  Field absent (nil pointer)  -> zero, or the documented estimate:
    output VAT  -> 22% of revenue
    input VAT   -> 22% of costs
    fiscal ROL  -> 15% of revenue
    fiscal year -> 2025
    start year  -> year extracted from the start-date string, else 2025

  An unparseable start-date string falls back to the default year. It never
  fails the computation; that is the only failure class this system absorbs.

SEE ALSO:
  - engine.go: Calls Normalize once at the start of Calculate
  - result.go: The output record
*/
package tax

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/fiscal-engine/fiscal"
)

// =============================================================================
// INPUT - One flat snapshot per calculation, read-only
// =============================================================================

// Input is the calculation request. Optional numeric fields use pointers so
// "absent" and "explicit zero" stay distinguishable until normalization.
type Input struct {
	// Core financials
	Revenue        float64 `json:"ricavi"`
	Costs          float64 `json:"costi"`
	Employees      int     `json:"dipendenti"`
	EmployeeCosts  float64 `json:"costoDipendenti"`
	AdminSalary    float64 `json:"compensoAmministratore"`
	CurrentBalance float64 `json:"saldoAttuale"`

	// Classification
	Region    string `json:"regione"`
	VATRegime string `json:"regimeIva"`
	Sector    string `json:"settore"` // unused by current rules, kept for extensibility

	// VAT state
	OutputVAT     *float64 `json:"ivaVendite,omitempty"`
	InputVAT      *float64 `json:"ivaAcquisti,omitempty"`
	HasVATDebt    bool     `json:"hasVatDebt"`
	VATDebtAmount float64  `json:"debitoIva"`

	// Temporal anchors
	FiscalYear *int   `json:"fiscalYear,omitempty"`
	StartYear  *int   `json:"annoInizio,omitempty"`
	StartDate  string `json:"dataInizio,omitempty"`

	// Prior-year (2024) data
	Revenue2024 float64 `json:"ricavi2024"`
	Costs2024   float64 `json:"costi2024"`
	Utile2024   float64 `json:"utile2024"`

	// Preferential-rate (premiale) inputs
	Utile2023         float64 `json:"utile2023"`
	PlannedInvestment float64 `json:"investimentiPrevisti"`
	AvgHeadcount      float64 `json:"mediaULA2022_2024"`
	PriorHeadcount    float64 `json:"dipendentiTempo2024"`
	NewHires          int     `json:"nuoveAssunzioni2025"`
	HasUsedCIG        bool    `json:"hasUsedCIG"`

	// Interest / ROL inputs
	ActiveInterest  float64  `json:"interessiAttivi"`
	PassiveInterest float64  `json:"interessiPassivi"`
	FiscalROL       *float64 `json:"rolFiscale,omitempty"`

	// Carried-forward losses
	LossesFirst3Years float64 `json:"perditePrime3Esercizi"`
	OrdinaryLosses    float64 `json:"perditeOrdinarie"`

	// Super-deduction inputs
	NewHireCost           float64 `json:"costoNuoveAssunzioni"`
	PersonnelCostIncrease float64 `json:"incrementoCostoPersonale"`
}

// =============================================================================
// NORMALIZED - Every optional resolved, ready for the resolvers
// =============================================================================

type Normalized struct {
	Revenue        fiscal.Money
	Costs          fiscal.Money
	Employees      int
	EmployeeCosts  fiscal.Money
	AdminSalary    fiscal.Money
	CurrentBalance fiscal.Money

	Region    string
	VATRegime string
	Sector    string

	OutputVAT     fiscal.Money
	InputVAT      fiscal.Money
	HasVATDebt    bool
	VATDebtAmount fiscal.Money

	FiscalYear    int
	StartYear     int
	IsNewBusiness bool

	Revenue2024 fiscal.Money
	Costs2024   fiscal.Money
	Utile2024   fiscal.Money

	Utile2023         fiscal.Money
	PlannedInvestment fiscal.Money
	AvgHeadcount      decimal.Decimal
	PriorHeadcount    decimal.Decimal
	NewHires          int
	HasUsedCIG        bool

	ActiveInterest  fiscal.Money
	PassiveInterest fiscal.Money
	FiscalROL       fiscal.Money

	LossesFirst3Years fiscal.Money
	OrdinaryLosses    fiscal.Money

	NewHireCost           fiscal.Money
	PersonnelCostIncrease fiscal.Money
}

// Normalize resolves each optional field to a concrete value. It is the only
// place defaulting happens.
func (in Input) Normalize() Normalized {
	n := Normalized{
		Revenue:        fiscal.NewMoneyFromFloat(in.Revenue),
		Costs:          fiscal.NewMoneyFromFloat(in.Costs),
		Employees:      in.Employees,
		EmployeeCosts:  fiscal.NewMoneyFromFloat(in.EmployeeCosts),
		AdminSalary:    fiscal.NewMoneyFromFloat(in.AdminSalary),
		CurrentBalance: fiscal.NewMoneyFromFloat(in.CurrentBalance),

		Region:    in.Region,
		VATRegime: in.VATRegime,
		Sector:    in.Sector,

		HasVATDebt:    in.HasVATDebt,
		VATDebtAmount: fiscal.NewMoneyFromFloat(in.VATDebtAmount),

		Revenue2024: fiscal.NewMoneyFromFloat(in.Revenue2024),
		Costs2024:   fiscal.NewMoneyFromFloat(in.Costs2024),
		Utile2024:   fiscal.NewMoneyFromFloat(in.Utile2024),

		Utile2023:         fiscal.NewMoneyFromFloat(in.Utile2023),
		PlannedInvestment: fiscal.NewMoneyFromFloat(in.PlannedInvestment),
		AvgHeadcount:      decimal.NewFromFloat(in.AvgHeadcount),
		PriorHeadcount:    decimal.NewFromFloat(in.PriorHeadcount),
		NewHires:          in.NewHires,
		HasUsedCIG:        in.HasUsedCIG,

		ActiveInterest:  fiscal.NewMoneyFromFloat(in.ActiveInterest),
		PassiveInterest: fiscal.NewMoneyFromFloat(in.PassiveInterest),

		LossesFirst3Years: fiscal.NewMoneyFromFloat(in.LossesFirst3Years),
		OrdinaryLosses:    fiscal.NewMoneyFromFloat(in.OrdinaryLosses),

		NewHireCost:           fiscal.NewMoneyFromFloat(in.NewHireCost),
		PersonnelCostIncrease: fiscal.NewMoneyFromFloat(in.PersonnelCostIncrease),
	}

	n.FiscalYear = DefaultFiscalYear
	if in.FiscalYear != nil {
		n.FiscalYear = *in.FiscalYear
	}

	n.StartYear = resolveStartYear(in.StartYear, in.StartDate)
	n.IsNewBusiness = n.StartYear >= n.FiscalYear

	if in.OutputVAT != nil {
		n.OutputVAT = fiscal.NewMoneyFromFloat(*in.OutputVAT)
	} else {
		n.OutputVAT = n.Revenue.Mul(vatStandardRate)
	}
	if in.InputVAT != nil {
		n.InputVAT = fiscal.NewMoneyFromFloat(*in.InputVAT)
	} else {
		n.InputVAT = n.Costs.Mul(vatStandardRate)
	}

	if in.FiscalROL != nil {
		n.FiscalROL = fiscal.NewMoneyFromFloat(*in.FiscalROL)
	} else {
		n.FiscalROL = n.Revenue.Mul(rolEstimateShare)
	}

	return n
}

// resolveStartYear extracts the business start year from the explicit field,
// then from the start-date string, then defaults. Accepted date layouts are
// the display format and ISO.
func resolveStartYear(explicit *int, startDate string) int {
	if explicit != nil {
		return *explicit
	}
	if startDate != "" {
		if d, ok := fiscal.ParseDisplayDate(startDate); ok {
			return d.Year()
		}
		if t, err := time.Parse("2006-01-02", startDate); err == nil {
			return t.Year()
		}
	}
	return DefaultFiscalYear
}
