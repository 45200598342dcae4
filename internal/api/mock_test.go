package api

import (
	"context"
	"time"

	"provider-catalog/internal/domain"
)

type mockMetadataRepo struct {
	pingFn            func(ctx context.Context) error
	getSchemaFn       func(ctx context.Context, name string) (*domain.SchemaInfo, error)
	listSchemasFn     func(ctx context.Context) ([]domain.SchemaInfo, error)
	listTablesFn      func(ctx context.Context, schema string) ([]domain.TableInfo, error)
	listColumnsFn     func(ctx context.Context, schema, table string) ([]domain.ColumnInfo, error)
	listConstraintsFn func(ctx context.Context, schema, table string) ([]domain.ConstraintInfo, error)
	listIndexesFn     func(ctx context.Context, schema, table string) ([]domain.IndexInfo, error)
	countRowsFn       func(ctx context.Context, schema, table string) (int64, error)
}

func (m *mockMetadataRepo) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	panic("unexpected call to mockMetadataRepo.Ping")
}

func (m *mockMetadataRepo) GetSchema(ctx context.Context, name string) (*domain.SchemaInfo, error) {
	if m.getSchemaFn != nil {
		return m.getSchemaFn(ctx, name)
	}
	panic("unexpected call to mockMetadataRepo.GetSchema")
}

func (m *mockMetadataRepo) ListSchemas(ctx context.Context) ([]domain.SchemaInfo, error) {
	if m.listSchemasFn != nil {
		return m.listSchemasFn(ctx)
	}
	panic("unexpected call to mockMetadataRepo.ListSchemas")
}

func (m *mockMetadataRepo) ListTables(ctx context.Context, schema string) ([]domain.TableInfo, error) {
	if m.listTablesFn != nil {
		return m.listTablesFn(ctx, schema)
	}
	panic("unexpected call to mockMetadataRepo.ListTables")
}

func (m *mockMetadataRepo) ListColumns(ctx context.Context, schema, table string) ([]domain.ColumnInfo, error) {
	if m.listColumnsFn != nil {
		return m.listColumnsFn(ctx, schema, table)
	}
	panic("unexpected call to mockMetadataRepo.ListColumns")
}

func (m *mockMetadataRepo) ListConstraints(ctx context.Context, schema, table string) ([]domain.ConstraintInfo, error) {
	if m.listConstraintsFn != nil {
		return m.listConstraintsFn(ctx, schema, table)
	}
	panic("unexpected call to mockMetadataRepo.ListConstraints")
}

func (m *mockMetadataRepo) ListIndexes(ctx context.Context, schema, table string) ([]domain.IndexInfo, error) {
	if m.listIndexesFn != nil {
		return m.listIndexesFn(ctx, schema, table)
	}
	panic("unexpected call to mockMetadataRepo.ListIndexes")
}

func (m *mockMetadataRepo) CountRows(ctx context.Context, schema, table string) (int64, error) {
	if m.countRowsFn != nil {
		return m.countRowsFn(ctx, schema, table)
	}
	panic("unexpected call to mockMetadataRepo.CountRows")
}

type mockCatalogRepo struct {
	countProvidersFn      func(ctx context.Context, filter domain.ProviderFilter) (int, error)
	countCategoriesFn     func(ctx context.Context) (int, error)
	countFacilityTypesFn  func(ctx context.Context) (int, error)
	listCategoriesFn      func(ctx context.Context) ([]domain.Category, error)
	listFacilityTypesFn   func(ctx context.Context, categoryID int) ([]domain.FacilityType, error)
	listProvidersFn       func(ctx context.Context, filter domain.ProviderFilter, limit, offset int) ([]domain.Provider, error)
	getProviderFn         func(ctx context.Context, id int) (*domain.ProviderDetails, error)
	searchProvidersFn     func(ctx context.Context, query string, filter domain.ProviderFilter, limit int) ([]domain.Provider, error)
	providersByCategoryFn func(ctx context.Context) (map[string]int, error)
	providersByStateFn    func(ctx context.Context, limit int) (map[string]int, error)
	topFacilityTypesFn    func(ctx context.Context, limit int) ([]domain.FacilityTypeCount, error)
	countRecentUpdatesFn  func(ctx context.Context, since time.Time) (int, error)
}

func (m *mockCatalogRepo) CountProviders(ctx context.Context, filter domain.ProviderFilter) (int, error) {
	if m.countProvidersFn != nil {
		return m.countProvidersFn(ctx, filter)
	}
	panic("unexpected call to mockCatalogRepo.CountProviders")
}

func (m *mockCatalogRepo) CountCategories(ctx context.Context) (int, error) {
	if m.countCategoriesFn != nil {
		return m.countCategoriesFn(ctx)
	}
	panic("unexpected call to mockCatalogRepo.CountCategories")
}

func (m *mockCatalogRepo) CountFacilityTypes(ctx context.Context) (int, error) {
	if m.countFacilityTypesFn != nil {
		return m.countFacilityTypesFn(ctx)
	}
	panic("unexpected call to mockCatalogRepo.CountFacilityTypes")
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx)
	}
	panic("unexpected call to mockCatalogRepo.ListCategories")
}

func (m *mockCatalogRepo) ListFacilityTypes(ctx context.Context, categoryID int) ([]domain.FacilityType, error) {
	if m.listFacilityTypesFn != nil {
		return m.listFacilityTypesFn(ctx, categoryID)
	}
	panic("unexpected call to mockCatalogRepo.ListFacilityTypes")
}

func (m *mockCatalogRepo) ListProviders(ctx context.Context, filter domain.ProviderFilter, limit, offset int) ([]domain.Provider, error) {
	if m.listProvidersFn != nil {
		return m.listProvidersFn(ctx, filter, limit, offset)
	}
	panic("unexpected call to mockCatalogRepo.ListProviders")
}

func (m *mockCatalogRepo) GetProvider(ctx context.Context, id int) (*domain.ProviderDetails, error) {
	if m.getProviderFn != nil {
		return m.getProviderFn(ctx, id)
	}
	panic("unexpected call to mockCatalogRepo.GetProvider")
}

func (m *mockCatalogRepo) SearchProviders(ctx context.Context, query string, filter domain.ProviderFilter, limit int) ([]domain.Provider, error) {
	if m.searchProvidersFn != nil {
		return m.searchProvidersFn(ctx, query, filter, limit)
	}
	panic("unexpected call to mockCatalogRepo.SearchProviders")
}

func (m *mockCatalogRepo) ProvidersByCategory(ctx context.Context) (map[string]int, error) {
	if m.providersByCategoryFn != nil {
		return m.providersByCategoryFn(ctx)
	}
	panic("unexpected call to mockCatalogRepo.ProvidersByCategory")
}

func (m *mockCatalogRepo) ProvidersByState(ctx context.Context, limit int) (map[string]int, error) {
	if m.providersByStateFn != nil {
		return m.providersByStateFn(ctx, limit)
	}
	panic("unexpected call to mockCatalogRepo.ProvidersByState")
}

func (m *mockCatalogRepo) TopFacilityTypes(ctx context.Context, limit int) ([]domain.FacilityTypeCount, error) {
	if m.topFacilityTypesFn != nil {
		return m.topFacilityTypesFn(ctx, limit)
	}
	panic("unexpected call to mockCatalogRepo.TopFacilityTypes")
}

func (m *mockCatalogRepo) CountRecentUpdates(ctx context.Context, since time.Time) (int, error) {
	if m.countRecentUpdatesFn != nil {
		return m.countRecentUpdatesFn(ctx, since)
	}
	panic("unexpected call to mockCatalogRepo.CountRecentUpdates")
}
