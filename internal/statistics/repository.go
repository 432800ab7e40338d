// Package statistics persists the single user statistics record.
package statistics

import (
	"context"

	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/logger"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

// Repository defines persistence operations for the statistics record
type Repository interface {
	Load(ctx context.Context) (*domain.Statistic, error)
	Save(ctx context.Context, stat domain.Statistic) error
	Delete(ctx context.Context) error
}

type repository struct {
	store *recordstore.Store
}

// NewRepository creates a statistics repository over store
func NewRepository(store *recordstore.Store) Repository {
	return &repository{store: store}
}

// Load returns the stored record, or nil when none is stored or it does not decode
func (r *repository) Load(ctx context.Context) (*domain.Statistic, error) {
	stat, found, err := recordstore.Read[domain.Statistic](ctx, r.store, domain.StoreKeyStatistics)
	if err != nil || !found {
		return nil, err
	}
	return &stat, nil
}

// Save overwrites the stored record regardless of ids.
// Field-level edits are done by the caller: Load, change fields, Save.
func (r *repository) Save(ctx context.Context, stat domain.Statistic) error {
	if err := recordstore.Write(ctx, r.store, domain.StoreKeyStatistics, stat); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgStatisticSaved, LogFieldStatisticID, stat.ID)
	return nil
}

// Delete erases the stored record
func (r *repository) Delete(ctx context.Context) error {
	if err := r.store.Erase(ctx, domain.StoreKeyStatistics); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgStatisticDeleted)
	return nil
}
