// Package backendtest is the contract every recordstore.Backend must meet.
// Backend packages call Run from their own tests.
package backendtest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CardBuilder_Go/internal/recordstore"
)

// Factory returns a fresh, empty backend. The suite closes it.
type Factory func(t *testing.T) recordstore.Backend

// Run executes the conformance suite against backends built by newBackend
func Run(t *testing.T, newBackend Factory) {
	t.Run("get missing key", func(t *testing.T) {
		b := open(t, newBackend)
		v, found, err := b.Get(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, v)
	})

	t.Run("put then get", func(t *testing.T) {
		b := open(t, newBackend)
		ctx := context.Background()
		require.NoError(t, b.Put(ctx, "k", []byte(`[1,2]`)))

		v, found, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`[1,2]`), v)
	})

	t.Run("put replaces", func(t *testing.T) {
		b := open(t, newBackend)
		ctx := context.Background()
		require.NoError(t, b.Put(ctx, "k", []byte("first, much longer value")))
		require.NoError(t, b.Put(ctx, "k", []byte("second")))

		v, _, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), v)
	})

	t.Run("empty value is found", func(t *testing.T) {
		b := open(t, newBackend)
		ctx := context.Background()
		require.NoError(t, b.Put(ctx, "k", []byte{}))

		v, found, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Empty(t, v)
	})

	t.Run("keys are independent", func(t *testing.T) {
		b := open(t, newBackend)
		ctx := context.Background()
		require.NoError(t, b.Put(ctx, "a", []byte("1")))
		require.NoError(t, b.Put(ctx, "b", []byte("2")))
		require.NoError(t, b.Delete(ctx, "a"))

		_, found, err := b.Get(ctx, "a")
		require.NoError(t, err)
		assert.False(t, found)
		v, found, err := b.Get(ctx, "b")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("2"), v)
	})

	t.Run("delete missing key", func(t *testing.T) {
		b := open(t, newBackend)
		assert.NoError(t, b.Delete(context.Background(), "never-written"))
	})

	t.Run("returned bytes are not shared", func(t *testing.T) {
		b := open(t, newBackend)
		ctx := context.Background()
		in := []byte("abc")
		require.NoError(t, b.Put(ctx, "k", in))
		in[0] = 'x'

		out, _, err := b.Get(ctx, "k")
		require.NoError(t, err)
		out[1] = 'y'

		again, _, err := b.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("canceled context", func(t *testing.T) {
		b := open(t, newBackend)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := b.Get(ctx, "k")
		assert.Error(t, err)
		assert.Error(t, b.Put(ctx, "k", []byte("v")))
	})

	t.Run("concurrent writers to distinct keys", func(t *testing.T) {
		b := open(t, newBackend)
		ctx := context.Background()

		const writers = 8
		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs <- b.Put(ctx, fmt.Sprintf("key-%d", i), []byte(fmt.Sprint(i)))
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		for i := 0; i < writers; i++ {
			v, found, err := b.Get(ctx, fmt.Sprintf("key-%d", i))
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte(fmt.Sprint(i)), v)
		}
	})
}

func open(t *testing.T, newBackend Factory) recordstore.Backend {
	t.Helper()
	b := newBackend(t)
	t.Cleanup(func() { _ = b.Close() })
	return b
}
