// Package handlers provides HTTP handlers for the policy impact engine.
package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/api"
	"github.com/npcc/npcc/internal/modules/impact"
)

// Handler handles policy impact HTTP requests
type Handler struct {
	calculator *impact.Calculator
	log        zerolog.Logger
}

// NewHandler creates a new impact handler
func NewHandler(calculator *impact.Calculator, log zerolog.Logger) *Handler {
	return &Handler{
		calculator: calculator,
		log:        log.With().Str("handler", "impact").Logger(),
	}
}

// HandleInit handles GET /api/init
func (h *Handler) HandleInit(w http.ResponseWriter, r *http.Request) {
	api.WriteSuccess(w, http.StatusOK, h.calculator.BaselineState(), h.log)
}

// HandleCalculate handles POST /api/calculate
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	inputs, err := api.DecodeObject(r)
	if err != nil {
		if errors.Is(err, api.ErrEmptyBody) {
			api.WriteError(w, http.StatusBadRequest, "Missing policy inputs", h.log)
			return
		}
		h.log.Debug().Err(err).Msg("Rejected malformed calculate request")
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body", h.log)
		return
	}

	result := h.calculator.Calculate(inputs)
	if result.BankruptcyFlag {
		h.log.Warn().
			Float64("national_debt", result.NationalDebt).
			Msg("Policy mix exceeds bankruptcy threshold")
	}

	api.WriteSuccess(w, http.StatusOK, result, h.log)
}
