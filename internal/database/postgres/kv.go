package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CardBuilder_Go/internal/database/schema"
)

// KVBackend implements recordstore.Backend on PostgreSQL
type KVBackend struct {
	pool *pgxpool.Pool
}

// NewKVBackend applies migrations through pool and returns a backend that owns it
func NewKVBackend(ctx context.Context, pool *pgxpool.Pool) (*KVBackend, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := schema.Migrate(ctx, db, goose.DialectPostgres); err != nil {
		return nil, err
	}
	return &KVBackend{pool: pool}, nil
}

func (b *KVBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := b.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", ErrMsgFailedToSelectEntry, err)
	}
	return value, true, nil
}

func (b *KVBackend) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := b.pool.Exec(ctx,
		`INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertEntry, err)
	}
	return nil
}

func (b *KVBackend) Delete(ctx context.Context, key string) error {
	if _, err := b.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteEntry, err)
	}
	return nil
}

// Close closes the pool
func (b *KVBackend) Close() error {
	b.pool.Close()
	return nil
}
