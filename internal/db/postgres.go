// Package db provides PostgreSQL connection pooling and identifier hygiene
// for the read-only query layers.
package db

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"

	"provider-catalog/internal/config"
)

// identifierPattern matches identifiers that are safe to quote into SQL text.
// Everything else must travel as a bind parameter.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_$]*$`)

// NewPool creates a pgx connection pool from config and verifies connectivity.
// The pool is created once at process start and closed at process stop; each
// query acquires and releases a connection through it.
func NewPool(ctx context.Context, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return pool, nil
}

// ValidIdentifier reports whether name can safely appear as a quoted SQL
// identifier.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

// QuoteIdentifier wraps a validated identifier in double quotes. Callers must
// check ValidIdentifier first; QuoteIdentifier does not re-validate.
func QuoteIdentifier(name string) string {
	return `"` + name + `"`
}

// QualifiedTable renders schema.table with both parts quoted, or an error if
// either part is not a safe identifier. COUNT(*) queries are the only place
// identifiers are spliced into SQL text, and they go through here.
func QualifiedTable(schema, table string) (string, error) {
	if !ValidIdentifier(schema) {
		return "", fmt.Errorf("unsafe schema identifier %q", schema)
	}
	if !ValidIdentifier(table) {
		return "", fmt.Errorf("unsafe table identifier %q", table)
	}
	return QuoteIdentifier(schema) + "." + QuoteIdentifier(table), nil
}
