package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the dashboard init and calculate routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/init", h.HandleInit)
	r.Post("/calculate", h.HandleCalculate)
}
