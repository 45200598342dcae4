package service

import (
	"context"
	"log/slog"
	"time"

	"provider-catalog/internal/domain"
)

const (
	topStatesLimit        = 10
	topFacilityTypesLimit = 10
	recentUpdateWindow    = 30 * 24 * time.Hour
)

// CatalogService answers questions about the healthcare provider catalog.
type CatalogService struct {
	repo   domain.CatalogRepository
	logger *slog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo domain.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// Overview returns catalog-wide totals plus the full category list in one
// snapshot stamped at retrieval time.
func (s *CatalogService) Overview(ctx context.Context) (*domain.CatalogOverview, error) {
	totalProviders, err := s.repo.CountProviders(ctx, domain.ProviderFilter{})
	if err != nil {
		s.logger.Error("catalog overview failed", "error", err)
		return nil, err
	}
	totalCategories, err := s.repo.CountCategories(ctx)
	if err != nil {
		s.logger.Error("catalog overview failed", "error", err)
		return nil, err
	}
	totalTypes, err := s.repo.CountFacilityTypes(ctx)
	if err != nil {
		s.logger.Error("catalog overview failed", "error", err)
		return nil, err
	}
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("catalog overview failed", "error", err)
		return nil, err
	}

	return &domain.CatalogOverview{
		TotalProviders:     totalProviders,
		TotalCategories:    totalCategories,
		TotalFacilityTypes: totalTypes,
		Categories:         categories,
		LastUpdated:        time.Now(),
	}, nil
}

// Categories returns every category with aggregated counts.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("listing categories failed", "error", err)
	}
	return categories, err
}

// FacilityTypesByCategory returns the facility types of one category.
// An unknown category yields an empty list, not an error.
func (s *CatalogService) FacilityTypesByCategory(ctx context.Context, categoryID int) ([]domain.FacilityType, error) {
	types, err := s.repo.ListFacilityTypes(ctx, categoryID)
	if err != nil {
		s.logger.Error("listing facility types failed", "category_id", categoryID, "error", err)
	}
	return types, err
}

// Providers returns one page of active providers matching the filter plus the
// unpaginated total for the same filter.
func (s *CatalogService) Providers(ctx context.Context, filter domain.ProviderFilter, limit, offset int) ([]domain.Provider, int, error) {
	providers, err := s.repo.ListProviders(ctx, filter, limit, offset)
	if err != nil {
		s.logger.Error("listing providers failed", "error", err)
		return nil, 0, err
	}
	total, err := s.repo.CountProviders(ctx, filter)
	if err != nil {
		s.logger.Error("counting providers failed", "error", err)
		return nil, 0, err
	}
	return providers, total, nil
}

// ProviderDetails returns one provider's full record or a NotFoundError.
func (s *CatalogService) ProviderDetails(ctx context.Context, id int) (*domain.ProviderDetails, error) {
	details, err := s.repo.GetProvider(ctx, id)
	if err != nil {
		s.logger.Error("provider lookup failed", "provider_id", id, "error", err)
	}
	return details, err
}

// SearchProviders matches a free-text query against provider name, business
// city, and credentials, restricted to active providers and the filter.
func (s *CatalogService) SearchProviders(ctx context.Context, query string, filter domain.ProviderFilter, limit int) ([]domain.Provider, error) {
	providers, err := s.repo.SearchProviders(ctx, query, filter, limit)
	if err != nil {
		s.logger.Error("provider search failed", "query", query, "error", err)
	}
	return providers, err
}

// Statistics assembles the composite catalog statistics payload.
func (s *CatalogService) Statistics(ctx context.Context) (*domain.CatalogStatistics, error) {
	totalProviders, err := s.repo.CountProviders(ctx, domain.ProviderFilter{})
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}
	totalCategories, err := s.repo.CountCategories(ctx)
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}
	totalTypes, err := s.repo.CountFacilityTypes(ctx)
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}
	byCategory, err := s.repo.ProvidersByCategory(ctx)
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}
	byState, err := s.repo.ProvidersByState(ctx, topStatesLimit)
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}
	topTypes, err := s.repo.TopFacilityTypes(ctx, topFacilityTypesLimit)
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}
	recent, err := s.repo.CountRecentUpdates(ctx, time.Now().Add(-recentUpdateWindow))
	if err != nil {
		s.logger.Error("catalog statistics failed", "error", err)
		return nil, err
	}

	return &domain.CatalogStatistics{
		TotalProviders:      totalProviders,
		TotalCategories:     totalCategories,
		TotalFacilityTypes:  totalTypes,
		ProvidersByCategory: byCategory,
		ProvidersByState:    byState,
		TopFacilityTypes:    topTypes,
		RecentUpdates:       recent,
		LastUpdated:         time.Now(),
	}, nil
}

// CategoryByID resolves a category by its numeric id.
func (s *CatalogService) CategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("category lookup failed", "category_id", id, "error", err)
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, domain.ErrNotFound("category %d does not exist", id)
}

// CategoryBySlug resolves a category by the slug derived from its display
// name. Slugs are recomputed per lookup, never stored.
func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("category slug lookup failed", "slug", slug, "error", err)
		return nil, err
	}
	for i := range categories {
		if domain.NameToSlug(categories[i].DisplayName) == slug {
			return &categories[i], nil
		}
	}
	return nil, domain.ErrNotFound("category with slug %q does not exist", slug)
}

// FacilityTypeBySlug resolves a facility type by slug within a category
// resolved by slug.
func (s *CatalogService) FacilityTypeBySlug(ctx context.Context, categorySlug, typeSlug string) (*domain.FacilityType, error) {
	category, err := s.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	types, err := s.repo.ListFacilityTypes(ctx, category.ID)
	if err != nil {
		s.logger.Error("facility type slug lookup failed", "category_slug", categorySlug, "type_slug", typeSlug, "error", err)
		return nil, err
	}
	for i := range types {
		if domain.NameToSlug(types[i].DisplayName) == typeSlug {
			return &types[i], nil
		}
	}
	return nil, domain.ErrNotFound("facility type with slug %q does not exist in category %q", typeSlug, categorySlug)
}
