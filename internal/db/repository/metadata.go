// Package repository implements the metadata and catalog repositories against
// PostgreSQL using parameterized queries.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"provider-catalog/internal/db"
	"provider-catalog/internal/domain"
)

// reservedSchemas are never reported by ListSchemas.
const reservedSchemas = "('information_schema', 'pg_catalog', 'pg_toast')"

// MetadataRepo reads schema structure from information_schema and pg_catalog.
type MetadataRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewMetadataRepo creates a new MetadataRepo.
func NewMetadataRepo(pool *pgxpool.Pool, logger *slog.Logger) *MetadataRepo {
	return &MetadataRepo{pool: pool, logger: logger}
}

// Ping verifies database connectivity with a trivial query.
func (r *MetadataRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return domain.ErrUnavailable("pinging database: %v", err)
	}
	return nil
}

// GetSchema returns the named schema or a NotFoundError.
func (r *MetadataRepo) GetSchema(ctx context.Context, name string) (*domain.SchemaInfo, error) {
	const q = `
		SELECT schema_name, schema_owner
		FROM information_schema.schemata
		WHERE schema_name = $1`

	var s domain.SchemaInfo
	err := r.pool.QueryRow(ctx, q, name).Scan(&s.SchemaName, &s.SchemaOwner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("schema %q does not exist", name)
	}
	if err != nil {
		return nil, domain.ErrUnavailable("querying schema %q: %v", name, err)
	}
	return &s, nil
}

// ListSchemas returns all non-system schemas ordered by name.
func (r *MetadataRepo) ListSchemas(ctx context.Context) ([]domain.SchemaInfo, error) {
	q := `
		SELECT schema_name, schema_owner
		FROM information_schema.schemata
		WHERE schema_name NOT IN ` + reservedSchemas + `
		ORDER BY schema_name`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, domain.ErrUnavailable("listing schemas: %v", err)
	}
	defer rows.Close()

	schemas := []domain.SchemaInfo{}
	for rows.Next() {
		var s domain.SchemaInfo
		if err := rows.Scan(&s.SchemaName, &s.SchemaOwner); err != nil {
			return nil, domain.ErrUnavailable("scanning schema row: %v", err)
		}
		schemas = append(schemas, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading schema rows: %v", err)
	}
	return schemas, nil
}

// ListTables returns all tables and views in a schema ordered by name.
// RowCount is left zero; callers enrich it where needed.
func (r *MetadataRepo) ListTables(ctx context.Context, schema string) ([]domain.TableInfo, error) {
	const q = `
		SELECT table_name, table_type, table_schema
		FROM information_schema.tables
		WHERE table_schema = $1
		ORDER BY table_name`

	rows, err := r.pool.Query(ctx, q, schema)
	if err != nil {
		return nil, domain.ErrUnavailable("listing tables in %q: %v", schema, err)
	}
	defer rows.Close()

	tables := []domain.TableInfo{}
	for rows.Next() {
		var t domain.TableInfo
		if err := rows.Scan(&t.TableName, &t.TableType, &t.TableSchema); err != nil {
			return nil, domain.ErrUnavailable("scanning table row: %v", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading table rows: %v", err)
	}
	return tables, nil
}

// ListColumns returns a table's columns ordered by ordinal position.
// Nullability is normalized from the YES/NO text the catalog reports.
func (r *MetadataRepo) ListColumns(ctx context.Context, schema, table string) ([]domain.ColumnInfo, error) {
	const q = `
		SELECT
			column_name,
			data_type,
			is_nullable,
			column_default,
			character_maximum_length,
			numeric_precision,
			numeric_scale,
			ordinal_position
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position`

	rows, err := r.pool.Query(ctx, q, schema, table)
	if err != nil {
		return nil, domain.ErrUnavailable("listing columns of %s.%s: %v", schema, table, err)
	}
	defer rows.Close()

	cols := []domain.ColumnInfo{}
	for rows.Next() {
		var c domain.ColumnInfo
		var nullable string
		if err := rows.Scan(
			&c.ColumnName, &c.DataType, &nullable, &c.ColumnDefault,
			&c.CharacterMaximumLength, &c.NumericPrecision, &c.NumericScale,
			&c.OrdinalPosition,
		); err != nil {
			return nil, domain.ErrUnavailable("scanning column row: %v", err)
		}
		c.IsNullable = nullable == "YES"
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading column rows: %v", err)
	}
	return cols, nil
}

// ListConstraints returns constraint/column pairs for a table. Multi-column
// constraints produce one row per column; rows are ordered by
// (constraint name, column name).
func (r *MetadataRepo) ListConstraints(ctx context.Context, schema, table string) ([]domain.ConstraintInfo, error) {
	const q = `
		SELECT tc.constraint_name, tc.constraint_type, ccu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.constraint_column_usage ccu
			ON tc.constraint_name = ccu.constraint_name
		WHERE tc.table_schema = $1 AND tc.table_name = $2
		ORDER BY tc.constraint_name, ccu.column_name`

	rows, err := r.pool.Query(ctx, q, schema, table)
	if err != nil {
		return nil, domain.ErrUnavailable("listing constraints of %s.%s: %v", schema, table, err)
	}
	defer rows.Close()

	constraints := []domain.ConstraintInfo{}
	for rows.Next() {
		var c domain.ConstraintInfo
		if err := rows.Scan(&c.ConstraintName, &c.ConstraintType, &c.ColumnName); err != nil {
			return nil, domain.ErrUnavailable("scanning constraint row: %v", err)
		}
		constraints = append(constraints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading constraint rows: %v", err)
	}
	return constraints, nil
}

// ListIndexes returns a table's indexes with their definitions verbatim.
func (r *MetadataRepo) ListIndexes(ctx context.Context, schema, table string) ([]domain.IndexInfo, error) {
	const q = `
		SELECT indexname, indexdef
		FROM pg_indexes
		WHERE schemaname = $1 AND tablename = $2
		ORDER BY indexname`

	rows, err := r.pool.Query(ctx, q, schema, table)
	if err != nil {
		return nil, domain.ErrUnavailable("listing indexes of %s.%s: %v", schema, table, err)
	}
	defer rows.Close()

	indexes := []domain.IndexInfo{}
	for rows.Next() {
		var idx domain.IndexInfo
		if err := rows.Scan(&idx.IndexName, &idx.IndexDefinition); err != nil {
			return nil, domain.ErrUnavailable("scanning index row: %v", err)
		}
		indexes = append(indexes, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrUnavailable("reading index rows: %v", err)
	}
	return indexes, nil
}

// CountRows returns the exact row count via a full scan. Identifiers are
// validated and quoted because they cannot travel as bind parameters.
func (r *MetadataRepo) CountRows(ctx context.Context, schema, table string) (int64, error) {
	qualified, err := db.QualifiedTable(schema, table)
	if err != nil {
		return 0, domain.ErrValidation("%v", err)
	}

	var count int64
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", qualified)
	if err := r.pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, domain.ErrUnavailable("counting rows of %s.%s: %v", schema, table, err)
	}
	return count, nil
}
