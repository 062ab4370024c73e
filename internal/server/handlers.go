package server

import (
	"net/http"

	"github.com/npcc/npcc/internal/api"
)

// Service identity reported by the health check
const (
	ServiceName    = "NPCC Backend API"
	ServiceVersion = "1.0.0"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
	}

	api.WriteJSON(w, http.StatusOK, response, s.log)
}
