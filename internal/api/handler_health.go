package api

import "net/http"

// healthCheck returns the bare health object. It always answers 200; an
// unreachable database is reported in the body, not the status code.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metadata.HealthCheck(r.Context()))
}

// healthStatus wraps the same health fields in the response envelope.
func (h *Handler) healthStatus(w http.ResponseWriter, r *http.Request) {
	hs := h.metadata.HealthCheck(r.Context())
	writeJSON(w, http.StatusOK, Envelope{
		Success: hs.DatabaseConnected,
		Message: hs.Message,
		Data:    hs,
	})
}
