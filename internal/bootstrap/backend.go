package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CardBuilder_Go/internal/config"
	"github.com/osse101/CardBuilder_Go/internal/database"
	"github.com/osse101/CardBuilder_Go/internal/database/postgres"
	"github.com/osse101/CardBuilder_Go/internal/database/sqlite"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

// OpenBackend opens the byte-level backend named by cfg.StoreBackend.
// SQL backends are migrated before they are returned.
func OpenBackend(ctx context.Context, cfg *config.Config) (recordstore.Backend, error) {
	slog.Default().Debug(LogMsgOpeningBackend, "backend", cfg.StoreBackend)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		return recordstore.NewMemoryBackend(), nil

	case config.BackendSQLite:
		b, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBackend, err)
		}
		return b, nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectPool, err)
		}
		b, err := postgres.NewKVBackend(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenBackend, err)
		}
		return b, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StoreBackend)
	}
}
