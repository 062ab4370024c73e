// Package handlers provides HTTP handlers for generated headlines.
package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/npcc/npcc/internal/api"
	"github.com/npcc/npcc/internal/modules/narrative"
)

// Handler handles headline HTTP requests
type Handler struct {
	service *narrative.Service
	log     zerolog.Logger
}

// NewHandler creates a new narrative handler
func NewHandler(service *narrative.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "narrative").Logger(),
	}
}

// HandleNews handles POST /api/news
func (h *Handler) HandleNews(w http.ResponseWriter, r *http.Request) {
	inputs, err := api.DecodeObject(r)
	if err != nil {
		if errors.Is(err, api.ErrEmptyBody) {
			api.WriteError(w, http.StatusBadRequest, "Missing input data", h.log)
			return
		}
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body", h.log)
		return
	}

	result, err := h.service.Headline(r.Context(), h.service.ParseRequest(inputs))
	if err != nil {
		if errors.Is(err, narrative.ErrGeneratorUnavailable) {
			api.WriteError(w, http.StatusServiceUnavailable, "AI generation is not configured", h.log)
			return
		}
		h.log.Error().Err(err).Msg("Headline generation failed")
		api.WriteError(w, http.StatusInternalServerError, "AI generation failed: "+err.Error(), h.log)
		return
	}

	api.WriteSuccess(w, http.StatusOK, result, h.log)
}
