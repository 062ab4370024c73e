package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers climate routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/climate", func(r chi.Router) {
		r.Get("/summary", h.HandleSummary)
		r.Post("/outlook", h.HandleOutlook)
	})
}
