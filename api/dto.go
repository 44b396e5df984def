/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

ROUNDING:
  Conversion from domain Money to float64 is where the two-decimal rounding
  happens; the engine itself computes unrounded throughout.

SEE ALSO:
  - handlers.go: Uses these types
  - tax/result.go: The domain result being projected
*/
package api

import (
	"time"

	"github.com/warp/fiscal-engine/fiscal"
	"github.com/warp/fiscal-engine/store/sqlite"
	"github.com/warp/fiscal-engine/tax"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculationResponse is the full output record returned to clients.
type CalculationResponse struct {
	FiscalYear    int  `json:"fiscalYear"`
	StartYear     int  `json:"startYear"`
	IsNewBusiness bool `json:"isNewBusiness"`

	GrossProfit              float64 `json:"utileLordo"`
	TaxableIncome            float64 `json:"taxableIncome"`
	TaxableIncomeAfterLosses float64 `json:"taxableIncomeAfterLosses"`
	IRESRate                 float64 `json:"iresRate"`
	IRES                     float64 `json:"ires"`

	IRAPRate    float64        `json:"irapRate"`
	IRAP        float64        `json:"irap"`
	IRAPDetails IRAPDetailsDTO `json:"irapDetails"`

	IVADetails VATDetailsDTO `json:"ivaDetails"`

	INPSAdmin     float64 `json:"inpsAdmin"`
	INPSEmployees float64 `json:"inpsDipendenti"`
	INPSTotal     float64 `json:"inpsTotale"`

	AccontiDetails AccontiDTO     `json:"accontiDetails"`
	RolDetails     *InterestDTO   `json:"rolDetails,omitempty"`
	LossDetails    LossDetailsDTO `json:"perditeDetails"`
	SuperDeduction float64        `json:"superDeduzione"`
	Premiale       *PremialeDTO   `json:"premialeDetails,omitempty"`

	TotalDue        float64 `json:"totaleDovuto"`
	MonthlySetAside float64 `json:"accantonamentoMensile"`

	Calendar        []EventDTO         `json:"calendar"`
	PaymentSchedule []ScheduleEntryDTO `json:"paymentSchedule"`
}

type IRAPDetailsDTO struct {
	GrossBase   float64 `json:"baseLorda"`
	Deductions  float64 `json:"deduzioni"`
	TaxableBase float64 `json:"baseImponibile"`
}

type VATDetailsDTO struct {
	OutputVAT           float64    `json:"ivaVendite"`
	InputVAT            float64    `json:"ivaAcquisti"`
	NetVAT              float64    `json:"ivaNetta"`
	CarriedDebt         float64    `json:"debitoPregresso"`
	Total               float64    `json:"totale"`
	QuarterlyEquivalent float64    `json:"rataTrimestrale"`
	Deadlines           []EventDTO `json:"scadenze"`
}

type AccontiDTO struct {
	IsNewBusiness bool    `json:"isNewBusiness"`
	IRESBase      float64 `json:"baseIres"`
	IRESFirst     float64 `json:"primaRataIres"`
	IRESSecond    float64 `json:"secondaRataIres"`
	IRAPBase      float64 `json:"baseIrap"`
	IRAPFirst     float64 `json:"primaRataIrap"`
	IRAPSecond    float64 `json:"secondaRataIrap"`
}

type InterestDTO struct {
	ActiveInterest  float64 `json:"interessiAttivi"`
	PassiveInterest float64 `json:"interessiPassivi"`
	FiscalROL       float64 `json:"rolFiscale"`
	ROLCap          float64 `json:"plafondRol"`
	Deductible      float64 `json:"deducibili"`
	NonDeductible   float64 `json:"indeducibili"`
}

type LossDetailsDTO struct {
	UsedFirst3Years   float64 `json:"perditePrime3EserciziUsate"`
	UsedOrdinary      float64 `json:"perditeOrdinarieUsate"`
	TotalUsed         float64 `json:"totaleUsato"`
	RemainingOrdinary float64 `json:"perditeOrdinarieResidue"`
}

type PremialeDTO struct {
	Eligible           bool    `json:"eligible"`
	ReserveAllocated   bool    `json:"riservaAccantonata"`
	InvestmentOK       bool    `json:"investimentiSufficienti"`
	WorkforceOK        bool    `json:"organicoMantenuto"`
	NewHiresOK         bool    `json:"assunzioniSufficienti"`
	NoCIG              bool    `json:"nessunaCIG"`
	ReserveRequired    float64 `json:"riservaRichiesta"`
	InvestmentRequired float64 `json:"investimentiRichiesti"`
	InvestmentPlanned  float64 `json:"investimentiPrevisti"`
	MinimumHires       int     `json:"assunzioniMinime"`
}

type EventDTO struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type ScheduleEntryDTO struct {
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	IsIncome        bool    `json:"isIncome"`
	PreviousBalance float64 `json:"previousBalance"`
	NewBalance      float64 `json:"newBalance"`
	RequiredPayment float64 `json:"requiredPayment"`
	Deficit         float64 `json:"deficit"`
}

// RegionRateDTO is one entry of the region reference table.
type RegionRateDTO struct {
	Region string  `json:"regione"`
	Rate   float64 `json:"aliquota"`
}

// VATRegimeDTO is one entry of the filing-frequency reference table.
type VATRegimeDTO struct {
	Code         string `json:"codice"`
	Label        string `json:"label"`
	Installments int    `json:"rate"`
	Eligibility  string `json:"eligibilita"`
}

// PlannerRequest asks for an equal monthly set-aside toward a deadline.
type PlannerRequest struct {
	TotalDue       float64 `json:"totaleDovuto"`
	CurrentBalance float64 `json:"saldoAttuale"`
	Months         int     `json:"mesi"`
}

// PlannerResponse is the installment-planning outcome.
type PlannerResponse struct {
	AlreadyCovered bool    `json:"alreadyCovered"`
	MonthlyAmount  float64 `json:"rataMensile"`
	Gap            float64 `json:"gap"`
}

// SaveScenarioRequest stores a named input snapshot.
type SaveScenarioRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Input       tax.Input `json:"input"`
}

// ScenarioDTO represents a saved scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toCalculationResponse(r *tax.Result) CalculationResponse {
	resp := CalculationResponse{
		FiscalYear:    r.FiscalYear,
		StartYear:     r.StartYear,
		IsNewBusiness: r.IsNewBusiness,

		GrossProfit:              r.GrossProfit.Float64(),
		TaxableIncome:            r.TaxableIncome.Float64(),
		TaxableIncomeAfterLosses: r.TaxableIncomeAfterLosses.Float64(),
		IRESRate:                 r.IRESRate.InexactFloat64(),
		IRES:                     r.IRES.Float64(),

		IRAPRate: r.IRAP.Rate.InexactFloat64(),
		IRAP:     r.IRAP.Tax.Float64(),
		IRAPDetails: IRAPDetailsDTO{
			GrossBase:   r.IRAP.GrossBase.Float64(),
			Deductions:  r.IRAP.Deductions.Float64(),
			TaxableBase: r.IRAP.TaxableBase.Float64(),
		},

		IVADetails: VATDetailsDTO{
			OutputVAT:           r.VAT.OutputVAT.Float64(),
			InputVAT:            r.VAT.InputVAT.Float64(),
			NetVAT:              r.VAT.NetVAT.Float64(),
			CarriedDebt:         r.VAT.CarriedDebt.Float64(),
			Total:               r.VAT.Total.Float64(),
			QuarterlyEquivalent: r.VAT.QuarterlyEquivalent.Float64(),
			Deadlines:           toEventDTOs(r.VAT.Deadlines),
		},

		INPSAdmin:     r.Contributions.Admin.Float64(),
		INPSEmployees: r.Contributions.Employees.Float64(),
		INPSTotal:     r.Contributions.Total.Float64(),

		AccontiDetails: AccontiDTO{
			IsNewBusiness: r.Acconti.IsNewBusiness,
			IRESBase:      r.Acconti.IRESBase.Float64(),
			IRESFirst:     r.Acconti.IRESFirst.Float64(),
			IRESSecond:    r.Acconti.IRESSecond.Float64(),
			IRAPBase:      r.Acconti.IRAPBase.Float64(),
			IRAPFirst:     r.Acconti.IRAPFirst.Float64(),
			IRAPSecond:    r.Acconti.IRAPSecond.Float64(),
		},

		LossDetails: LossDetailsDTO{
			UsedFirst3Years:   r.Losses.UsedFirst3Years.Float64(),
			UsedOrdinary:      r.Losses.UsedOrdinary.Float64(),
			TotalUsed:         r.Losses.TotalUsed.Float64(),
			RemainingOrdinary: r.Losses.RemainingOrdinary.Float64(),
		},
		SuperDeduction: r.SuperDeduction.Deduction.Float64(),

		TotalDue:        r.TotalDue.Float64(),
		MonthlySetAside: r.MonthlySetAside.Float64(),

		Calendar:        toEventDTOs(r.Calendar),
		PaymentSchedule: toScheduleDTOs(r.PaymentSchedule),
	}

	if r.Interest != nil {
		resp.RolDetails = &InterestDTO{
			ActiveInterest:  r.Interest.ActiveInterest.Float64(),
			PassiveInterest: r.Interest.PassiveInterest.Float64(),
			FiscalROL:       r.Interest.FiscalROL.Float64(),
			ROLCap:          r.Interest.ROLCap.Float64(),
			Deductible:      r.Interest.Deductible.Float64(),
			NonDeductible:   r.Interest.NonDeductible.Float64(),
		}
	}

	if r.Premiale != nil {
		resp.Premiale = &PremialeDTO{
			Eligible:           r.Premiale.Eligible,
			ReserveAllocated:   r.Premiale.Conditions.ReserveAllocated,
			InvestmentOK:       r.Premiale.Conditions.InvestmentSufficient,
			WorkforceOK:        r.Premiale.Conditions.WorkforceMaintained,
			NewHiresOK:         r.Premiale.Conditions.NewHiresSufficient,
			NoCIG:              r.Premiale.Conditions.NoWageSupportUsed,
			ReserveRequired:    r.Premiale.ReserveRequired.Float64(),
			InvestmentRequired: r.Premiale.InvestmentRequired.Float64(),
			InvestmentPlanned:  r.Premiale.InvestmentPlanned.Float64(),
			MinimumHires:       r.Premiale.MinimumHires,
		}
	}

	return resp
}

func toEventDTOs(events []fiscal.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = EventDTO{
			Date:        e.Date.Display(),
			Amount:      e.Amount.Float64(),
			Category:    e.Category,
			Description: e.Description,
		}
	}
	return dtos
}

func toScheduleDTOs(entries []fiscal.ScheduleEntry) []ScheduleEntryDTO {
	dtos := make([]ScheduleEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = ScheduleEntryDTO{
			Date:            e.Date.Display(),
			Category:        e.Category,
			Description:     e.Description,
			Amount:          e.Amount.Float64(),
			IsIncome:        e.IsIncome,
			PreviousBalance: e.PreviousBalance.Float64(),
			NewBalance:      e.NewBalance.Float64(),
			RequiredPayment: e.RequiredPayment.Float64(),
			Deficit:         e.Deficit.Float64(),
		}
	}
	return dtos
}

func toScenarioDTO(record sqlite.ScenarioRecord) ScenarioDTO {
	return ScenarioDTO{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
	}
}
