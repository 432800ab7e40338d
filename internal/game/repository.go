// Package game persists the user's card games and the editor's card selection.
package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/logger"
	"github.com/osse101/CardBuilder_Go/internal/metrics"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

// Repository defines persistence operations for games
type Repository interface {
	LoadAll(ctx context.Context) ([]domain.Game, error)
	LoadOne(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	Save(ctx context.Context, game domain.Game) error
	SaveAll(ctx context.Context, games []domain.Game) error
	Update(ctx context.Context, id uuid.UUID, update domain.GameUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	// Editor scratch state, independent of any stored game
	SaveSelectedCardIndices(ctx context.Context, indices []int) error
	LoadSelectedCardIndices(ctx context.Context) ([]int, error)
	ToggleSelectedCard(ctx context.Context, index int, selected bool) ([]int, error)
}

type repository struct {
	store *recordstore.Store
}

// NewRepository creates a game repository over store
func NewRepository(store *recordstore.Store) Repository {
	return &repository{store: store}
}

// LoadAll returns every stored game in stored order.
// Nothing stored, or stored bytes that do not decode, yield an empty slice.
func (r *repository) LoadAll(ctx context.Context) ([]domain.Game, error) {
	games, _, err := recordstore.Read[[]domain.Game](ctx, r.store, domain.StoreKeyGames)
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []domain.Game{}
	}
	return games, nil
}

// LoadOne returns the first game with id, or nil when there is none
func (r *repository) LoadOne(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	games, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(games, id); i >= 0 {
		return &games[i], nil
	}
	return nil, nil
}

// Save replaces the stored game with the same id in place, or appends it.
// A nil CardIndices is stored as an empty list and loads back as []int{}.
func (r *repository) Save(ctx context.Context, game domain.Game) error {
	if game.ID == uuid.Nil {
		return domain.ErrInvalidGameID
	}

	return r.store.WithLock(domain.StoreKeyGames, func() error {
		games, err := r.LoadAll(ctx)
		if err != nil {
			return err
		}

		if i := indexOf(games, game.ID); i >= 0 {
			games[i] = game.Clone()
		} else {
			games = append(games, game.Clone())
		}

		if err := r.write(ctx, games); err != nil {
			return err
		}
		logger.FromContext(ctx).Debug(LogMsgGameSaved, LogFieldGameID, game.ID)
		return nil
	})
}

// SaveAll overwrites the stored collection with games.
// A collection with a nil or repeated id is rejected and nothing is written.
func (r *repository) SaveAll(ctx context.Context, games []domain.Game) error {
	seen := make(map[uuid.UUID]struct{}, len(games))
	for _, g := range games {
		if g.ID == uuid.Nil {
			return domain.ErrInvalidGameID
		}
		if _, dup := seen[g.ID]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateGameID, g.ID)
		}
		seen[g.ID] = struct{}{}
	}

	out := make([]domain.Game, len(games))
	for i, g := range games {
		out[i] = g.Clone()
	}

	return r.store.WithLock(domain.StoreKeyGames, func() error {
		if err := r.write(ctx, out); err != nil {
			return err
		}
		logger.FromContext(ctx).Debug(LogMsgGamesReplaced, LogFieldCount, len(out))
		return nil
	})
}

// Update applies the set slots of update to the stored game with id
func (r *repository) Update(ctx context.Context, id uuid.UUID, update domain.GameUpdate) error {
	return r.store.WithLock(domain.StoreKeyGames, func() error {
		games, err := r.LoadAll(ctx)
		if err != nil {
			return err
		}

		i := indexOf(games, id)
		if i < 0 {
			return r.notFound(ctx, OpUpdate, id)
		}
		if update.IsEmpty() {
			return nil
		}

		games[i] = update.Apply(games[i])
		if err := r.write(ctx, games); err != nil {
			return err
		}
		logger.FromContext(ctx).Debug(LogMsgGameUpdated, LogFieldGameID, id)
		return nil
	})
}

// Delete removes the game with id. Legacy duplicates of the id are removed too.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.WithLock(domain.StoreKeyGames, func() error {
		games, err := r.LoadAll(ctx)
		if err != nil {
			return err
		}

		remaining := slices.DeleteFunc(slices.Clone(games), func(g domain.Game) bool { return g.ID == id })
		removed := len(games) - len(remaining)
		if removed == 0 {
			return r.notFound(ctx, OpDelete, id)
		}

		if err := r.write(ctx, remaining); err != nil {
			return err
		}

		log := logger.FromContext(ctx)
		log.Debug(LogMsgGameDeleted, LogFieldGameID, id)
		if removed > 1 {
			log.Warn(LogMsgDuplicatesRemoved, LogFieldGameID, id, LogFieldCount, removed)
		}
		return nil
	})
}

// DeleteAll stores an empty collection
func (r *repository) DeleteAll(ctx context.Context) error {
	return r.store.WithLock(domain.StoreKeyGames, func() error {
		if err := r.write(ctx, []domain.Game{}); err != nil {
			return err
		}
		logger.FromContext(ctx).Info(LogMsgGamesCleared)
		return nil
	})
}

// SaveSelectedCardIndices overwrites the editor selection
func (r *repository) SaveSelectedCardIndices(ctx context.Context, indices []int) error {
	return r.store.WithLock(domain.StoreKeySelectedCards, func() error {
		return r.writeSelection(ctx, indices)
	})
}

// LoadSelectedCardIndices returns the editor selection in stored order
func (r *repository) LoadSelectedCardIndices(ctx context.Context) ([]int, error) {
	return r.readSelection(ctx)
}

// ToggleSelectedCard adds or removes index from the editor selection and returns the result
func (r *repository) ToggleSelectedCard(ctx context.Context, index int, selected bool) ([]int, error) {
	var result []int
	err := r.store.WithLock(domain.StoreKeySelectedCards, func() error {
		current, err := r.readSelection(ctx)
		if err != nil {
			return err
		}
		result = ToggleSelection(current, index, selected)
		return r.writeSelection(ctx, result)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repository) readSelection(ctx context.Context) ([]int, error) {
	raw, found, err := r.store.ReadRaw(ctx, domain.StoreKeySelectedCards)
	if err != nil {
		return nil, err
	}
	if !found {
		return []int{}, nil
	}

	indices, dropped := ParseSelection(string(raw))
	if dropped > 0 {
		logger.FromContext(ctx).Warn(LogMsgSelectionDropped, LogFieldDropped, dropped)
	}
	return indices, nil
}

func (r *repository) writeSelection(ctx context.Context, indices []int) error {
	if err := r.store.WriteRaw(ctx, domain.StoreKeySelectedCards, []byte(FormatSelection(indices))); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgSelectionSaved, LogFieldCount, len(indices))
	return nil
}

// write persists games; callers hold the gameKey lock
func (r *repository) write(ctx context.Context, games []domain.Game) error {
	for i := range games {
		if games[i].CardIndices == nil {
			games[i].CardIndices = []int{}
		}
	}
	if err := recordstore.Write(ctx, r.store, domain.StoreKeyGames, games); err != nil {
		return err
	}
	metrics.GamesPersisted.Set(float64(len(games)))
	return nil
}

func (r *repository) notFound(ctx context.Context, op string, id uuid.UUID) error {
	metrics.GameNotFound.WithLabelValues(op).Inc()
	logger.FromContext(ctx).Info(LogMsgGameNotFound, LogFieldOperation, op, LogFieldGameID, id)
	return fmt.Errorf("%w: %s", domain.ErrGameNotFound, id)
}

func indexOf(games []domain.Game, id uuid.UUID) int {
	return slices.IndexFunc(games, func(g domain.Game) bool { return g.ID == id })
}
