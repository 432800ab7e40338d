package bootstrap

import (
	"context"

	"github.com/osse101/CardBuilder_Go/internal/catalog"
	"github.com/osse101/CardBuilder_Go/internal/config"
	"github.com/osse101/CardBuilder_Go/internal/game"
	"github.com/osse101/CardBuilder_Go/internal/generator"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
	"github.com/osse101/CardBuilder_Go/internal/statistics"
)

// Repositories holds everything a command needs. The store is constructed
// once per process and shared by both repositories.
type Repositories struct {
	Store      *recordstore.Store
	Games      game.Repository
	Statistics statistics.Repository
	Catalog    *catalog.Catalog
	Picker     *generator.Picker
}

// InitializeRepositories wires repositories over an already opened backend
func InitializeRepositories(backend recordstore.Backend) (*Repositories, error) {
	cards, err := catalog.Default()
	if err != nil {
		return nil, err
	}

	store := recordstore.New(backend)
	return &Repositories{
		Store:      store,
		Games:      game.NewRepository(store),
		Statistics: statistics.NewRepository(store),
		Catalog:    cards,
		Picker:     generator.NewPicker(),
	}, nil
}

// Open opens the configured backend and wires repositories over it
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repos, err := InitializeRepositories(backend)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return repos, nil
}
