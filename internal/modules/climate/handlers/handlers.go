// Package handlers provides HTTP handlers for climate indicators.
package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/api"
	"github.com/npcc/npcc/internal/modules/climate"
	"github.com/npcc/npcc/internal/modules/impact"
)

// Handler handles climate HTTP requests
type Handler struct {
	service    *climate.Service
	calculator *impact.Calculator
	log        zerolog.Logger
}

// NewHandler creates a new climate handler
func NewHandler(service *climate.Service, calculator *impact.Calculator, log zerolog.Logger) *Handler {
	return &Handler{
		service:    service,
		calculator: calculator,
		log:        log.With().Str("handler", "climate").Logger(),
	}
}

// HandleSummary handles GET /api/climate/summary
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	api.WriteSuccess(w, http.StatusOK, h.service.Summary(), h.log)
}

// HandleOutlook handles POST /api/climate/outlook
// An empty body yields the business-as-usual outlook.
func (h *Handler) HandleOutlook(w http.ResponseWriter, r *http.Request) {
	inputs, err := api.DecodeObject(r)
	if err != nil && !errors.Is(err, api.ErrEmptyBody) {
		h.log.Debug().Err(err).Msg("Rejected malformed outlook request")
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body", h.log)
		return
	}

	result := h.calculator.Calculate(inputs)
	api.WriteSuccess(w, http.StatusOK, h.service.Outlook(result), h.log)
}
