package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBuilder_Go/internal/config"
	"github.com/osse101/CardBuilder_Go/internal/database/sqlite"
	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

func TestEraseAll(t *testing.T) {
	ctx := context.Background()
	store := recordstore.New(recordstore.NewMemoryBackend())
	for _, key := range domain.StoreKeys {
		require.NoError(t, store.WriteRaw(ctx, key, []byte(`[]`)))
	}
	require.NoError(t, store.WriteRaw(ctx, "unrelated", []byte(`1`)))

	require.NoError(t, eraseAll(ctx, store))

	for _, key := range domain.StoreKeys {
		_, found, err := store.ReadRaw(ctx, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
	_, found, err := store.ReadRaw(ctx, "unrelated")
	require.NoError(t, err)
	assert.True(t, found)
}

func useSQLiteStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reset.db")
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", path)

	backend, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	store := recordstore.New(backend)
	require.NoError(t, store.WriteRaw(context.Background(), domain.StoreKeyGames, []byte(`[]`)))
	require.NoError(t, store.Close())
	return path
}

func gamesStored(t *testing.T, path string) bool {
	t.Helper()
	backend, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	defer backend.Close()

	_, found, err := backend.Get(context.Background(), domain.StoreKeyGames)
	require.NoError(t, err)
	return found
}

func TestRun_ForceErasesAndReleasesStore(t *testing.T) {
	path := useSQLiteStore(t)

	assert.Equal(t, exitOK, run([]string{"-force"}, strings.NewReader(""), io.Discard))
	assert.False(t, gamesStored(t, path))
}

func TestRun_Confirmation(t *testing.T) {
	path := useSQLiteStore(t)

	assert.Equal(t, exitOK, run(nil, strings.NewReader("no\n"), io.Discard))
	assert.True(t, gamesStored(t, path))

	out := &bytes.Buffer{}
	assert.Equal(t, exitOK, run(nil, strings.NewReader("yes\n"), out))
	assert.Contains(t, out.String(), "sqlite")
	assert.False(t, gamesStored(t, path))
}

func TestRun_Errors(t *testing.T) {
	assert.Equal(t, exitUsage, run([]string{"-bogus"}, strings.NewReader(""), io.Discard))

	t.Setenv("STORE_BACKEND", "floppy")
	assert.Equal(t, exitError, run([]string{"-force"}, strings.NewReader(""), io.Discard))
}

func TestReset_UnknownBackend(t *testing.T) {
	err := reset(context.Background(), &config.Config{StoreBackend: "floppy"})
	assert.Error(t, err)
}
