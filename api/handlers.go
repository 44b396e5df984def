/*
handlers.go - HTTP API handlers for the fiscal engine

PURPOSE:
  Exposes the calculation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Calculations:
    POST   /api/calculations        Run a full calculation

  Reference data:
    GET    /api/rates/regions       Region -> IRAP rate table
    GET    /api/rates/vat-regimes   Filing-frequency table

  Planner:
    POST   /api/planner             Standalone installment planner

  Scenarios:
    GET    /api/scenarios           List saved scenarios
    POST   /api/scenarios           Save a named input snapshot
    GET    /api/scenarios/{id}      Fetch one scenario with its snapshot
    DELETE /api/scenarios/{id}      Delete a scenario

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (tax.Engine, fiscal.PlanInstallments, store)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed request bodies
  - 404: Scenario not found
  - 500: Internal errors
  Business-data degradation (unknown regions, missing optionals) is not an
  error: the engine absorbs it by design.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/warp/fiscal-engine/fiscal"
	"github.com/warp/fiscal-engine/store/sqlite"
	"github.com/warp/fiscal-engine/tax"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  *sqlite.Store
	Engine tax.Engine
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate runs the full fiscal calculation.
// POST /api/calculations
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var input tax.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result := h.Engine.Calculate(input)
	writeJSON(w, http.StatusOK, toCalculationResponse(result))
}

// =============================================================================
// REFERENCE DATA
// =============================================================================

// ListRegionRates returns the region -> IRAP rate table, sorted by region.
// GET /api/rates/regions
func (h *Handler) ListRegionRates(w http.ResponseWriter, r *http.Request) {
	rates := tax.RegionRates()

	dtos := make([]RegionRateDTO, 0, len(rates))
	for region, rate := range rates {
		dtos = append(dtos, RegionRateDTO{Region: region, Rate: rate.InexactFloat64()})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Region < dtos[j].Region })

	writeJSON(w, http.StatusOK, dtos)
}

// ListVATRegimes returns the filing-frequency table.
// GET /api/rates/vat-regimes
func (h *Handler) ListVATRegimes(w http.ResponseWriter, r *http.Request) {
	regimes := tax.VATRegimes()

	dtos := make([]VATRegimeDTO, 0, len(regimes))
	for _, info := range regimes {
		dtos = append(dtos, VATRegimeDTO{
			Code:         info.Code,
			Label:        info.Label,
			Installments: info.Installments,
			Eligibility:  info.Eligibility,
		})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Code < dtos[j].Code })

	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// PLANNER
// =============================================================================

// Plan runs the standalone installment planner.
// POST /api/planner
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var req PlannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	plan := fiscal.PlanInstallments(
		fiscal.NewMoneyFromFloat(req.TotalDue),
		fiscal.NewMoneyFromFloat(req.CurrentBalance),
		req.Months,
	)

	writeJSON(w, http.StatusOK, PlannerResponse{
		AlreadyCovered: plan.AlreadyCovered,
		MonthlyAmount:  plan.MonthlyAmount.Float64(),
		Gap:            plan.Gap.Float64(),
	})
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ListScenarios returns all saved scenarios, newest first.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListScenarios(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list scenarios", err)
		return
	}

	dtos := make([]ScenarioDTO, len(records))
	for i, record := range records {
		dtos[i] = toScenarioDTO(record)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SaveScenario stores a named input snapshot with its computed summary.
// POST /api/scenarios
func (h *Handler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	var req SaveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Scenario name is required", nil)
		return
	}

	inputJSON, err := json.Marshal(req.Input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode input", err)
		return
	}

	summary := toCalculationResponse(h.Engine.Calculate(req.Input))
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode summary", err)
		return
	}

	record, err := h.Store.SaveScenario(r.Context(), req.Name, req.Description,
		string(inputJSON), string(summaryJSON))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save scenario", err)
		return
	}

	writeJSON(w, http.StatusCreated, toScenarioDTO(*record))
}

// GetScenario returns one scenario with its stored input and summary.
// GET /api/scenarios/{id}
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.Store.GetScenario(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get scenario", err)
		return
	}
	if record == nil {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}

	// The stored snapshots are returned verbatim alongside the metadata.
	writeJSON(w, http.StatusOK, map[string]any{
		"scenario": toScenarioDTO(*record),
		"input":    json.RawMessage(record.InputJSON),
		"summary":  json.RawMessage(record.SummaryJSON),
	})
}

// DeleteScenario removes a saved scenario.
// DELETE /api/scenarios/{id}
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Store.DeleteScenario(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete scenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
