package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers headline routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/news", h.HandleNews)
}
