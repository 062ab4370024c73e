package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers imagery routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/imagery", func(r chi.Router) {
		r.Post("/", h.HandleCompare)
		r.Post("/quick", h.HandleQuick)
	})
}
