// Package service contains the read-only query services that back the HTTP
// API: schema metadata and the provider catalog.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"provider-catalog/internal/domain"
)

// rowCountConcurrency bounds the per-table COUNT(*) fan-out. Counts are
// independent full scans; the bound keeps a wide schema from monopolizing
// the connection pool.
const rowCountConcurrency = 8

// MetadataService answers structural questions about schemas and tables.
type MetadataService struct {
	repo   domain.MetadataRepository
	dbName string
	logger *slog.Logger
}

// NewMetadataService creates a new MetadataService.
func NewMetadataService(repo domain.MetadataRepository, dbName string, logger *slog.Logger) *MetadataService {
	return &MetadataService{repo: repo, dbName: dbName, logger: logger}
}

// HealthCheck reports database reachability. It never returns an error;
// failure degrades to an unhealthy status.
func (s *MetadataService) HealthCheck(ctx context.Context) domain.HealthStatus {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Error("health check failed", "error", err)
		return domain.HealthStatus{
			Status:            "unhealthy",
			DatabaseConnected: false,
			Message:           "Database connection failed: " + err.Error(),
			Timestamp:         time.Now(),
		}
	}
	return domain.HealthStatus{
		Status:            "healthy",
		DatabaseConnected: true,
		Message:           "Database connection successful",
		Timestamp:         time.Now(),
	}
}

// DatabaseOverview lists every non-system schema in the database.
func (s *MetadataService) DatabaseOverview(ctx context.Context) (*domain.DatabaseOverview, error) {
	schemas, err := s.repo.ListSchemas(ctx)
	if err != nil {
		s.logger.Error("database overview failed", "error", err)
		return nil, err
	}
	return &domain.DatabaseOverview{
		DatabaseName:     s.dbName,
		Schemas:          schemas,
		TotalSchemas:     len(schemas),
		ConnectionStatus: "connected",
		LastUpdated:      time.Now(),
	}, nil
}

// ListSchemas returns all non-system schemas ordered by name.
func (s *MetadataService) ListSchemas(ctx context.Context) ([]domain.SchemaInfo, error) {
	schemas, err := s.repo.ListSchemas(ctx)
	if err != nil {
		s.logger.Error("listing schemas failed", "error", err)
	}
	return schemas, err
}

// SchemaDetails returns the schema's identity plus its tables enriched with
// row counts. A missing schema surfaces as a NotFoundError.
func (s *MetadataService) SchemaDetails(ctx context.Context, schema string) (*domain.SchemaDetails, error) {
	info, err := s.repo.GetSchema(ctx, schema)
	if err != nil {
		s.logger.Error("schema lookup failed", "schema", schema, "error", err)
		return nil, err
	}

	tables, err := s.repo.ListTables(ctx, schema)
	if err != nil {
		s.logger.Error("listing tables failed", "schema", schema, "error", err)
		return nil, err
	}
	s.fillRowCounts(ctx, schema, tables)

	return &domain.SchemaDetails{
		SchemaInfo:  *info,
		Tables:      tables,
		TotalTables: len(tables),
	}, nil
}

// TableDetails returns the full structural description of one table.
func (s *MetadataService) TableDetails(ctx context.Context, schema, table string) (*domain.TableDetails, error) {
	tables, err := s.repo.ListTables(ctx, schema)
	if err != nil {
		s.logger.Error("listing tables failed", "schema", schema, "error", err)
		return nil, err
	}

	var info *domain.TableInfo
	for i := range tables {
		if tables[i].TableName == table {
			info = &tables[i]
			break
		}
	}
	if info == nil {
		return nil, domain.ErrNotFound("table %q does not exist in schema %q", table, schema)
	}

	info.RowCount = s.rowCountOrZero(ctx, schema, table)

	columns, err := s.repo.ListColumns(ctx, schema, table)
	if err != nil {
		s.logger.Error("listing columns failed", "schema", schema, "table", table, "error", err)
		return nil, err
	}
	constraints, err := s.repo.ListConstraints(ctx, schema, table)
	if err != nil {
		s.logger.Error("listing constraints failed", "schema", schema, "table", table, "error", err)
		return nil, err
	}
	indexes, err := s.repo.ListIndexes(ctx, schema, table)
	if err != nil {
		s.logger.Error("listing indexes failed", "schema", schema, "table", table, "error", err)
		return nil, err
	}

	return &domain.TableDetails{
		TableInfo:   *info,
		Columns:     columns,
		Constraints: constraints,
		Indexes:     indexes,
		RowCount:    info.RowCount,
	}, nil
}

// SearchTables returns the schema's tables whose name contains the term,
// case-insensitively, enriched with row counts.
func (s *MetadataService) SearchTables(ctx context.Context, schema, term string) ([]domain.TableInfo, error) {
	tables, err := s.repo.ListTables(ctx, schema)
	if err != nil {
		s.logger.Error("listing tables failed", "schema", schema, "error", err)
		return nil, err
	}

	needle := strings.ToLower(term)
	matches := []domain.TableInfo{}
	for _, t := range tables {
		if strings.Contains(strings.ToLower(t.TableName), needle) {
			matches = append(matches, t)
		}
	}
	s.fillRowCounts(ctx, schema, matches)
	return matches, nil
}

// TableStatistics aggregates table counts and row totals for one schema.
// An empty schema yields all-zero statistics, not an error.
func (s *MetadataService) TableStatistics(ctx context.Context, schema string) (*domain.TableStatistics, error) {
	tables, err := s.repo.ListTables(ctx, schema)
	if err != nil {
		s.logger.Error("listing tables failed", "schema", schema, "error", err)
		return nil, err
	}
	s.fillRowCounts(ctx, schema, tables)

	stats := &domain.TableStatistics{
		SchemaName: schema,
		TableTypes: map[string]int{},
	}
	for _, t := range tables {
		stats.TotalTables++
		stats.TotalRows += t.RowCount
		stats.TableTypes[t.TableType]++
	}
	if stats.TotalTables > 0 {
		stats.AverageRowsPerTable = float64(stats.TotalRows) / float64(stats.TotalTables)
	}
	return stats, nil
}

// fillRowCounts populates RowCount on every table, best-effort, with bounded
// concurrency. Each count is independent and degrades to zero on failure.
func (s *MetadataService) fillRowCounts(ctx context.Context, schema string, tables []domain.TableInfo) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rowCountConcurrency)
	for i := range tables {
		i := i
		g.Go(func() error {
			tables[i].RowCount = s.rowCountOrZero(ctx, schema, tables[i].TableName)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// rowCountOrZero counts rows, degrading to 0 with a warning on failure.
// A table dropped between listing and counting is a latency race, not an
// error the caller should see.
func (s *MetadataService) rowCountOrZero(ctx context.Context, schema, table string) int64 {
	count, err := s.repo.CountRows(ctx, schema, table)
	if err != nil {
		s.logger.Warn("row count failed, reporting 0", "schema", schema, "table", table, "error", err)
		return 0
	}
	return count
}
