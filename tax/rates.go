/*
Package tax implements the 2025 fiscal regime for a small limited-liability
company.

PURPOSE:
  Computes annual IRES, IRAP, VAT, and INPS obligations plus acconto
  installments from one immutable input snapshot, and derives a fiscal
  calendar and a running-balance payment schedule.

KEY CONCEPTS IN THIS FILE (rates.go):
  - Region table: IRAP percentage per region/autonomous province
  - VAT regime table: filing-frequency metadata (label, cadence, eligibility)
  - Regime constants: rates, floors, ceilings and estimate shares frozen to
    the 2025 rules

DESIGN PRINCIPLES:
  1. Pure data: The tables hold no logic and are built once at init
  2. Graceful defaults: Unknown region codes fall back to the national rate;
     unknown regime codes fall back to quarterly cadence
  3. No validation: Out-of-range business data degrades, it never errors

SEE ALSO:
  - engine.go: Orchestrator sequencing the resolvers
  - irap.go: Uses the region table
  - vat.go: Uses the regime table
*/
package tax

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// REGIME CONSTANTS (fiscal year 2025)
// =============================================================================

const DefaultFiscalYear = 2025

var (
	// IRES
	iresStandardRate = decimal.NewFromFloat(0.24)
	iresPremialeRate = decimal.NewFromFloat(0.20)

	// VAT: standard rate used to estimate missing output/input VAT
	vatStandardRate = decimal.NewFromFloat(0.22)

	// Interest deductibility: ROL estimate share of revenue and the cap share
	rolEstimateShare = decimal.NewFromFloat(0.15)
	rolCapShare      = decimal.NewFromFloat(0.30)

	// Ordinary loss carry-forward ceiling
	ordinaryLossCap = decimal.NewFromFloat(0.80)

	// New-hire super-deduction (120% total allowance = 20% extra)
	superDeductionRate = decimal.NewFromFloat(0.20)

	// INPS
	adminContribRate     = decimal.NewFromFloat(0.24)
	employeeContribShare = decimal.NewFromFloat(0.30)

	// IRAP deductions
	irapContributiShare = decimal.NewFromFloat(0.30)

	// Acconti
	accontoFirstShare    = decimal.NewFromFloat(0.40)
	accontoSecondShare   = decimal.NewFromFloat(0.60)
	accontoFallbackShare = decimal.NewFromFloat(0.80)

	// Premiale eligibility
	premialeReserveShare      = decimal.NewFromFloat(0.80)
	premialeInvestReserveMin  = decimal.NewFromFloat(0.30)
	premialeInvestProfitMin   = decimal.NewFromFloat(0.24)
	premialeHireQuota         = decimal.NewFromFloat(0.01)

	twelve = decimal.NewFromInt(12)
	four   = decimal.NewFromInt(4)
)

// Fixed euro amounts of the regime.
var (
	adminContribFloor    = decimal.NewFromInt(18555)
	adminContribCeiling  = decimal.NewFromInt(92413)
	premialeInvestFloor  = decimal.NewFromInt(20000)
	calabriaIRAPDeduction = decimal.NewFromInt(15000)
)

// =============================================================================
// REGION TABLE - IRAP rate per region / autonomous province
// =============================================================================

// irapDefaultRate is the national standard rate, used when the region code is
// not recognized.
var irapDefaultRate = decimal.NewFromFloat(0.039)

// irapRegionRates maps region code to the 2025 IRAP percentage. Regions under
// healthcare-deficit plans carry the increased rate.
var irapRegionRates = map[string]decimal.Decimal{
	"ABRUZZO":               decimal.NewFromFloat(0.0482),
	"BASILICATA":            decimal.NewFromFloat(0.039),
	"CALABRIA":              decimal.NewFromFloat(0.0497),
	"CAMPANIA":              decimal.NewFromFloat(0.0497),
	"EMILIA-ROMAGNA":        decimal.NewFromFloat(0.039),
	"FRIULI-VENEZIA GIULIA": decimal.NewFromFloat(0.039),
	"LAZIO":                 decimal.NewFromFloat(0.0482),
	"LIGURIA":               decimal.NewFromFloat(0.039),
	"LOMBARDIA":             decimal.NewFromFloat(0.039),
	"MARCHE":                decimal.NewFromFloat(0.0473),
	"MOLISE":                decimal.NewFromFloat(0.0497),
	"PIEMONTE":              decimal.NewFromFloat(0.039),
	"PUGLIA":                decimal.NewFromFloat(0.0482),
	"SARDEGNA":              decimal.NewFromFloat(0.039),
	"SICILIA":               decimal.NewFromFloat(0.0482),
	"TOSCANA":               decimal.NewFromFloat(0.039),
	"TRENTINO-ALTO ADIGE":   decimal.NewFromFloat(0.0268),
	"UMBRIA":                decimal.NewFromFloat(0.039),
	"VALLE D'AOSTA":         decimal.NewFromFloat(0.0268),
	"VENETO":                decimal.NewFromFloat(0.039),
}

// IRAPRateFor returns the IRAP rate for a region code, falling back to the
// national standard rate for unrecognized codes.
func IRAPRateFor(region string) decimal.Decimal {
	if rate, ok := irapRegionRates[region]; ok {
		return rate
	}
	return irapDefaultRate
}

// RegionRates returns a copy of the region table for callers presenting
// region choices.
func RegionRates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(irapRegionRates))
	for k, v := range irapRegionRates {
		out[k] = v
	}
	return out
}

// =============================================================================
// VAT REGIME TABLE - Filing frequency metadata
// =============================================================================

const (
	RegimeMonthly   = "MENSILE"
	RegimeQuarterly = "TRIMESTRALE"
)

type VATRegimeInfo struct {
	Code         string
	Label        string
	Installments int
	Eligibility  string
}

var vatRegimes = map[string]VATRegimeInfo{
	RegimeMonthly: {
		Code:         RegimeMonthly,
		Label:        "Liquidazione mensile",
		Installments: 12,
		Eligibility:  "Obbligatoria oltre le soglie di volume d'affari",
	},
	RegimeQuarterly: {
		Code:         RegimeQuarterly,
		Label:        "Liquidazione trimestrale",
		Installments: 4,
		Eligibility:  "Opzionale entro le soglie di volume d'affari",
	},
}

// VATRegimeFor returns the regime metadata for a frequency code. Unrecognized
// codes fall back to quarterly cadence for normalization purposes; deadline
// generation itself only fires for the recognized codes.
func VATRegimeFor(code string) (VATRegimeInfo, bool) {
	info, ok := vatRegimes[code]
	if !ok {
		fallback := vatRegimes[RegimeQuarterly]
		fallback.Code = code
		return fallback, false
	}
	return info, true
}

// VATRegimes returns a copy of the regime table for callers presenting
// frequency choices.
func VATRegimes() map[string]VATRegimeInfo {
	out := make(map[string]VATRegimeInfo, len(vatRegimes))
	for k, v := range vatRegimes {
		out[k] = v
	}
	return out
}
