package game_bench

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/osse101/CardBuilder_Go/internal/database/sqlite"
	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/game"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

func seededRepo(b *testing.B, backend recordstore.Backend, n int) (game.Repository, []domain.Game) {
	b.Helper()
	repo := game.NewRepository(recordstore.New(backend))

	games := make([]domain.Game, n)
	for i := range games {
		games[i] = domain.NewGame(fmt.Sprintf("game-%d", i), "2-4", "30m", "Highest card wins", []int{1, 2, 3, 4, 5})
	}
	if err := repo.SaveAll(context.Background(), games); err != nil {
		b.Fatal(err)
	}
	return repo, games
}

func memoryBackend(*testing.B) recordstore.Backend {
	return recordstore.NewMemoryBackend()
}

func sqliteBackend(b *testing.B) recordstore.Backend {
	kv, err := sqlite.Open(context.Background(), filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = kv.Close() })
	return kv
}

var backends = []struct {
	name string
	open func(*testing.B) recordstore.Backend
}{
	{"memory", memoryBackend},
	{"sqlite", sqliteBackend},
}

// BenchmarkSave measures an in-place upsert into collections of growing size
func BenchmarkSave(b *testing.B) {
	for _, be := range backends {
		for _, size := range []int{10, 100, 1000} {
			b.Run(fmt.Sprintf("%s/games=%d", be.name, size), func(b *testing.B) {
				repo, games := seededRepo(b, be.open(b), size)
				ctx := context.Background()
				target := games[size/2]

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					target.Rules = fmt.Sprintf("rev %d", i)
					if err := repo.Save(ctx, target); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkLoadAll(b *testing.B) {
	for _, be := range backends {
		for _, size := range []int{10, 100, 1000} {
			b.Run(fmt.Sprintf("%s/games=%d", be.name, size), func(b *testing.B) {
				repo, _ := seededRepo(b, be.open(b), size)
				ctx := context.Background()

				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := repo.LoadAll(ctx); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkToggleSelectedCard(b *testing.B) {
	repo := game.NewRepository(recordstore.New(recordstore.NewMemoryBackend()))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.ToggleSelectedCard(ctx, (i/2)%20, i%2 == 0); err != nil {
			b.Fatal(err)
		}
	}
}
