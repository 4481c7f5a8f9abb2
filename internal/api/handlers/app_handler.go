package handlers

import (
	"net/http"

	"github.com/isdelr/users-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AppHandler serves the root and health endpoints.
type AppHandler struct {
	service services.AppServiceProvider
}

// NewAppHandler creates a new AppHandler.
func NewAppHandler(service services.AppServiceProvider) *AppHandler {
	return &AppHandler{service: service}
}

// Hello writes the greeting.
func (h *AppHandler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(h.service.Hello()))
}

// Health reports database reachability.
func (h *AppHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Health(r.Context()); err != nil {
		log.Warn().Err(err).Msg("Health check failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
