// Package schema embeds the goose migrations for every SQL backend.
package schema

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// Migration directories inside the embedded tree
const (
	DirPostgres = "migrations/postgres"
	DirSQLite   = "migrations/sqlite"
)

// TableKVEntries is the table every SQL backend stores records in
const TableKVEntries = "kv_entries"

// Migrations returns the migration files for dialect
func Migrations(dialect goose.Dialect) (fs.FS, error) {
	switch dialect {
	case goose.DialectPostgres:
		return fs.Sub(migrationsFS, DirPostgres)
	case goose.DialectSQLite3:
		return fs.Sub(migrationsFS, DirSQLite)
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

// Migrate applies all pending up migrations for dialect
func Migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	fsys, err := Migrations(dialect)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		slog.Default().Debug("Applied migration", "dialect", string(dialect), "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// Reset rolls back every applied migration for dialect
func Reset(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	fsys, err := Migrations(dialect)
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	return nil
}
