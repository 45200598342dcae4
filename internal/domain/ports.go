package domain

import (
	"context"
	"time"
)

// MetadataRepository reads structural facts about schemas and tables from the
// backing PostgreSQL database. All methods are single stateless queries.
type MetadataRepository interface {
	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// GetSchema returns the named schema or a NotFoundError.
	GetSchema(ctx context.Context, name string) (*SchemaInfo, error)

	// ListSchemas returns all schemas except the reserved system schemas,
	// ordered by name.
	ListSchemas(ctx context.Context) ([]SchemaInfo, error)

	// ListTables returns all tables and views in a schema, ordered by name.
	ListTables(ctx context.Context, schema string) ([]TableInfo, error)

	// ListColumns returns a table's columns ordered by ordinal position.
	ListColumns(ctx context.Context, schema, table string) ([]ColumnInfo, error)

	// ListConstraints returns constraint/column pairs ordered by
	// (constraint name, column name).
	ListConstraints(ctx context.Context, schema, table string) ([]ConstraintInfo, error)

	// ListIndexes returns a table's indexes ordered by index name.
	ListIndexes(ctx context.Context, schema, table string) ([]IndexInfo, error)

	// CountRows returns the exact row count via a full scan. Callers decide
	// whether a failure is fatal or degrades to zero.
	CountRows(ctx context.Context, schema, table string) (int64, error)
}

// CatalogRepository reads the healthcare provider catalog. All counts cover
// active providers only, except GetProvider which returns any provider by id.
type CatalogRepository interface {
	CountProviders(ctx context.Context, filter ProviderFilter) (int, error)
	CountCategories(ctx context.Context) (int, error)
	CountFacilityTypes(ctx context.Context) (int, error)

	// ListCategories returns every category with aggregated provider and
	// facility-type counts, ordered by display name.
	ListCategories(ctx context.Context) ([]Category, error)

	// ListFacilityTypes returns the facility types of one category ordered by
	// display name. An unknown category yields an empty list, not an error.
	ListFacilityTypes(ctx context.Context, categoryID int) ([]FacilityType, error)

	// ListProviders returns active providers matching the filter, ordered by
	// provider name, paginated by limit/offset.
	ListProviders(ctx context.Context, filter ProviderFilter, limit, offset int) ([]Provider, error)

	// GetProvider returns the full detail record or a NotFoundError.
	GetProvider(ctx context.Context, id int) (*ProviderDetails, error)

	// SearchProviders matches one shared case-insensitive pattern against
	// provider name, business city, and credentials.
	SearchProviders(ctx context.Context, query string, filter ProviderFilter, limit int) ([]Provider, error)

	// ProvidersByCategory returns active-provider counts for every category,
	// including zero-count ones.
	ProvidersByCategory(ctx context.Context) (map[string]int, error)

	// ProvidersByState returns the top states by active-provider count,
	// excluding states with none.
	ProvidersByState(ctx context.Context, limit int) (map[string]int, error)

	// TopFacilityTypes returns the facility types with the most active
	// providers, excluding types with none, ordered by count descending.
	TopFacilityTypes(ctx context.Context, limit int) ([]FacilityTypeCount, error)

	// CountRecentUpdates counts providers updated at or after the cutoff.
	CountRecentUpdates(ctx context.Context, since time.Time) (int, error)
}
