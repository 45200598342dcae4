package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"provider-catalog/internal/domain"
)

const (
	defaultProviderLimit = 50
	defaultSearchLimit   = 20
	maxListLimit         = 1000
)

func (h *Handler) catalogOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.catalog.Overview(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve categories", err)
		return
	}
	respondOK(w, fmt.Sprintf("Found %d healthcare categories", len(categories)), map[string]any{
		"categories":       categories,
		"total_categories": len(categories),
	})
}

// categoryBySegment serves /categories/{category}. An all-digit segment is a
// numeric id; anything else is a display-name slug.
func (h *Handler) categoryBySegment(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "category")
	if isAllDigits(segment) {
		id, err := strconv.Atoi(segment)
		if err != nil {
			respondFail(w, http.StatusBadRequest, "Invalid category id", err)
			return
		}
		category, err := h.catalog.CategoryByID(r.Context(), id)
		if err != nil {
			if isNotFound(err) {
				respondFail(w, http.StatusNotFound, "Category not found", err)
				return
			}
			respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve category", err)
			return
		}
		respondOK(w, "Category retrieved successfully", map[string]any{"category": category})
		return
	}
	category, err := h.catalog.CategoryBySlug(r.Context(), segment)
	if err != nil {
		if isNotFound(err) {
			respondFail(w, http.StatusNotFound, "Category not found", err)
			return
		}
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve category", err)
		return
	}
	respondOK(w, "Category retrieved successfully", map[string]any{"category": category})
}

// facilityTypesBySegment serves /categories/{category}/types with the same
// numeric-vs-slug disambiguation.
func (h *Handler) facilityTypesBySegment(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "category")

	var categoryID int
	if isAllDigits(segment) {
		id, err := strconv.Atoi(segment)
		if err != nil {
			respondFail(w, http.StatusBadRequest, "Invalid category id", err)
			return
		}
		categoryID = id
	} else {
		category, err := h.catalog.CategoryBySlug(r.Context(), segment)
		if err != nil {
			if isNotFound(err) {
				respondFail(w, http.StatusNotFound, "Category not found", err)
				return
			}
			respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve facility types", err)
			return
		}
		categoryID = category.ID
	}

	facilityTypes, err := h.catalog.FacilityTypesByCategory(r.Context(), categoryID)
	if err != nil {
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve facility types", err)
		return
	}
	respondOK(w, fmt.Sprintf("Found %d facility types in category %d", len(facilityTypes), categoryID), map[string]any{
		"category_id":    categoryID,
		"facility_types": facilityTypes,
		"total_types":    len(facilityTypes),
	})
}

func (h *Handler) facilityTypeBySlug(w http.ResponseWriter, r *http.Request) {
	categorySlug := chi.URLParam(r, "category")
	typeSlug := chi.URLParam(r, "typeSlug")

	facilityType, err := h.catalog.FacilityTypeBySlug(r.Context(), categorySlug, typeSlug)
	if err != nil {
		if isNotFound(err) {
			respondFail(w, http.StatusNotFound, "Facility type not found", err)
			return
		}
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve facility type", err)
		return
	}
	respondOK(w, "Facility type retrieved successfully", map[string]any{"facility_type": facilityType})
}

func (h *Handler) listProviders(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters", err)
		return
	}
	limit, err := queryInt(r, "limit", defaultProviderLimit)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters", err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters", err)
		return
	}
	if limit < 1 || limit > maxListLimit || offset < 0 {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters",
			fmt.Errorf("limit must be in [1,%d] and offset non-negative", maxListLimit))
		return
	}

	providers, total, err := h.catalog.Providers(r.Context(), filter, limit, offset)
	if err != nil {
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve providers", err)
		return
	}
	respondOK(w, fmt.Sprintf("Found %d providers", len(providers)), map[string]any{
		"providers":   providers,
		"total_count": total,
		"limit":       limit,
		"offset":      offset,
		"filters": map[string]any{
			"category_id":      filter.CategoryID,
			"facility_type_id": filter.FacilityTypeID,
			"state":            filter.StateID,
		},
	})
}

func (h *Handler) providerDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid provider id", err)
		return
	}

	provider, err := h.catalog.ProviderDetails(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			respondFail(w, http.StatusNotFound, "Provider not found", err)
			return
		}
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve provider details", err)
		return
	}
	respondOK(w, "Provider details retrieved successfully", map[string]any{"provider": provider})
}

func (h *Handler) searchProviders(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters",
			fmt.Errorf("query parameter 'q' is required"))
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters", err)
		return
	}
	limit, err := queryInt(r, "limit", defaultSearchLimit)
	if err != nil {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters", err)
		return
	}
	if limit < 1 || limit > maxListLimit {
		respondFail(w, http.StatusBadRequest, "Invalid request parameters",
			fmt.Errorf("limit must be in [1,%d]", maxListLimit))
		return
	}

	providers, err := h.catalog.SearchProviders(r.Context(), query, filter, limit)
	if err != nil {
		respondFail(w, httpStatusFromDomainError(err), "Failed to search providers", err)
		return
	}
	respondOK(w, fmt.Sprintf("Found %d providers matching %q", len(providers), query), map[string]any{
		"query":         query,
		"providers":     providers,
		"total_results": len(providers),
		"filters": map[string]any{
			"category_id": filter.CategoryID,
			"state":       filter.StateID,
		},
	})
}

func (h *Handler) catalogStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Statistics(r.Context())
	if err != nil {
		respondFail(w, httpStatusFromDomainError(err), "Failed to retrieve catalog statistics", err)
		return
	}
	respondOK(w, "Catalog statistics retrieved successfully", stats)
}

// filterFromQuery parses the optional provider filter parameters.
func filterFromQuery(r *http.Request) (domain.ProviderFilter, error) {
	var filter domain.ProviderFilter

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("category_id must be an integer: %w", err)
		}
		filter.CategoryID = &id
	}
	if raw := r.URL.Query().Get("facility_type_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("facility_type_id must be an integer: %w", err)
		}
		filter.FacilityTypeID = &id
	}
	if raw := r.URL.Query().Get("state"); raw != "" {
		state := strings.ToUpper(raw)
		filter.StateID = &state
	}
	return filter, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	return v, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isNotFound(err error) bool {
	return httpStatusFromDomainError(err) == http.StatusNotFound
}
