// Package handlers provides HTTP handlers for policy imagery.
package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/api"
	"github.com/npcc/npcc/internal/modules/imagery"
)

// Handler handles imagery HTTP requests
type Handler struct {
	service *imagery.Service
	log     zerolog.Logger
}

// NewHandler creates a new imagery handler
func NewHandler(service *imagery.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "imagery").Logger(),
	}
}

// HandleCompare handles POST /api/imagery
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	inputs, ok := h.decode(w, r)
	if !ok {
		return
	}

	comparison, err := h.service.Compare(r.Context(), h.service.ParseCompareRequest(inputs))
	h.respond(w, comparison, err)
}

// HandleQuick handles POST /api/imagery/quick
func (h *Handler) HandleQuick(w http.ResponseWriter, r *http.Request) {
	inputs, ok := h.decode(w, r)
	if !ok {
		return
	}

	scenario, _ := inputs["scenario"].(string)
	levels := h.service.ParseCompareRequest(inputs).Levels

	comparison, err := h.service.Quick(r.Context(), levels, imagery.Scenario(scenario))
	h.respond(w, comparison, err)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (map[string]interface{}, bool) {
	inputs, err := api.DecodeObject(r)
	if err != nil {
		if errors.Is(err, api.ErrEmptyBody) {
			api.WriteError(w, http.StatusBadRequest, "Missing input data", h.log)
			return nil, false
		}
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body", h.log)
		return nil, false
	}
	return inputs, true
}

func (h *Handler) respond(w http.ResponseWriter, comparison *imagery.Comparison, err error) {
	switch {
	case err == nil:
		api.WriteSuccess(w, http.StatusOK, comparison, h.log)
	case errors.Is(err, imagery.ErrRendererUnavailable):
		api.WriteError(w, http.StatusServiceUnavailable, "Image generation is not enabled", h.log)
	case errors.Is(err, imagery.ErrInvalidBaselineImage):
		api.WriteError(w, http.StatusBadRequest, err.Error(), h.log)
	default:
		h.log.Error().Err(err).Msg("Image generation failed")
		api.WriteError(w, http.StatusInternalServerError, "Image generation failed: "+err.Error(), h.log)
	}
}
