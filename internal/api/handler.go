package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"provider-catalog/internal/service"
)

// Handler holds the query services behind the HTTP surface.
type Handler struct {
	metadata *service.MetadataService
	catalog  *service.CatalogService
	logger   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(metadata *service.MetadataService, catalog *service.CatalogService, logger *slog.Logger) *Handler {
	return &Handler{metadata: metadata, catalog: catalog, logger: logger}
}

// Routes returns the router for all API endpoints. Every route is a GET;
// the service is strictly read-only.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/health", func(r chi.Router) {
		r.Get("/health", h.healthCheck)
		r.Get("/status", h.healthStatus)
	})

	r.Route("/schema", func(r chi.Router) {
		r.Get("/overview", h.databaseOverview)
		r.Get("/schemas", h.listSchemas)
		r.Get("/schemas/{schema}", h.schemaDetails)
		r.Get("/schemas/{schema}/tables", h.listTables)
		r.Get("/schemas/{schema}/tables/{table}", h.tableDetails)
		r.Get("/schemas/{schema}/search", h.searchTables)
		r.Get("/schemas/{schema}/statistics", h.tableStatistics)
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/overview", h.catalogOverview)
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{category}", h.categoryBySegment)
		r.Get("/categories/{category}/types", h.facilityTypesBySegment)
		r.Get("/categories/{category}/types/{typeSlug}", h.facilityTypeBySlug)
		r.Get("/providers", h.listProviders)
		r.Get("/providers/{id}", h.providerDetails)
		r.Get("/search", h.searchProviders)
		r.Get("/statistics", h.catalogStatistics)
	})

	return r
}

// apiError is the error body for the typed (non-envelope) endpoints.
type apiError struct {
	Detail string `json:"detail"`
}

// respondError writes a typed error body with the status mapped from the
// domain error.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	writeJSON(w, httpStatusFromDomainError(err), apiError{Detail: err.Error()})
}
