// Package api exposes the read-only HTTP surface: health probes, schema
// metadata, and the provider catalog.
package api

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper used by catalog-facing endpoints.
// Data is omitted on failure so a failed request never carries a partial
// payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondOK writes a 200 success envelope.
func respondOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// respondFail writes a failure envelope. Catalog endpoints report failures
// in-band with status 200 except where a specific status is warranted.
func respondFail(w http.ResponseWriter, status int, message string, err error) {
	env := Envelope{Success: false, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	writeJSON(w, status, env)
}
