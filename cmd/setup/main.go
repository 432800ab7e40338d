// Command setup prepares the configured store backend: it creates the
// Postgres database when missing and applies the schema migrations.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/CardBuilder_Go/internal/bootstrap"
	"github.com/osse101/CardBuilder_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.StoreBackend == config.BackendPostgres {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	// Opening a SQL backend applies any pending migrations
	backend, err := bootstrap.OpenBackend(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s backend: %v", cfg.StoreBackend, err)
	}
	defer backend.Close()

	switch cfg.StoreBackend {
	case config.BackendMemory:
		fmt.Println("Memory backend selected, nothing to set up.")
	case config.BackendSQLite:
		fmt.Printf("SQLite store ready at %s\n", cfg.SQLitePath)
	default:
		fmt.Printf("Postgres store ready in database %s\n", cfg.DBName)
	}
}

// ensureDatabase connects to the server's default database and creates
// cfg.DBName if it does not exist yet
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	conn, err := pgx.Connect(ctx, cfg.GetServerConnString())
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
