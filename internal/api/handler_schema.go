package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) databaseOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.metadata.DatabaseOverview(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) listSchemas(w http.ResponseWriter, r *http.Request) {
	schemas, err := h.metadata.ListSchemas(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schemas)
}

func (h *Handler) schemaDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.metadata.SchemaDetails(r.Context(), chi.URLParam(r, "schema"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	details, err := h.metadata.SchemaDetails(r.Context(), chi.URLParam(r, "schema"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details.Tables)
}

func (h *Handler) tableDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.metadata.TableDetails(r.Context(), chi.URLParam(r, "schema"), chi.URLParam(r, "table"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) searchTables(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Detail: "query parameter 'q' is required"})
		return
	}
	tables, err := h.metadata.SearchTables(r.Context(), chi.URLParam(r, "schema"), term)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) tableStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.metadata.TableStatistics(r.Context(), chi.URLParam(r, "schema"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
