package recordstore

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/metrics"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	require.NoError(t, Write(ctx, store, "sample", sample{Name: "a", Count: 3}))

	got, found, err := Read[sample](ctx, store, "sample")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "a", Count: 3}, got)
}

func TestStore_ReadAbsent(t *testing.T) {
	store := New(NewMemoryBackend())

	got, found, err := Read[[]sample](context.Background(), store, "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestStore_WriteReplacesWholeValue(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	require.NoError(t, Write(ctx, store, "k", []int{1, 2, 3}))
	require.NoError(t, Write(ctx, store, "k", []int{9}))

	got, found, err := Read[[]int](ctx, store, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{9}, got)
}

func TestStore_Erase(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	require.NoError(t, store.WriteRaw(ctx, "k", []byte(`1`)))
	require.NoError(t, store.Erase(ctx, "k"))

	_, found, err := store.ReadRaw(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	// erasing again is harmless
	require.NoError(t, store.Erase(ctx, "k"))
}

func TestStore_DecodeFailureIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())
	key := "corrupt-" + t.Name()

	require.NoError(t, store.WriteRaw(ctx, key, []byte("not json {")))

	before := testutil.ToFloat64(metrics.StoreDecodeFailures.WithLabelValues(key))
	got, found, err := Read[[]sample](ctx, store, key)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.StoreDecodeFailures.WithLabelValues(key)))
}

func TestStore_ShapeMismatchIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())

	require.NoError(t, store.WriteRaw(ctx, "k", []byte(`{"name":"x"}`)))

	_, found, err := Read[[]sample](ctx, store, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_WriteFailure(t *testing.T) {
	backend := new(MockBackend)
	backendErr := errors.New("disk full")
	backend.On("Put", mock.Anything, "k", mock.Anything).Return(backendErr)

	store := New(backend)
	err := Write(context.Background(), store, "k", sample{Name: "a"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWriteFailure)
	assert.ErrorIs(t, err, backendErr)
	backend.AssertExpectations(t)
}

func TestStore_EraseFailure(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Delete", mock.Anything, "k").Return(errors.New("locked"))

	err := New(backend).Erase(context.Background(), "k")

	assert.ErrorIs(t, err, domain.ErrWriteFailure)
	backend.AssertExpectations(t)
}

func TestStore_ReadFailure(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Get", mock.Anything, "k").Return(nil, false, errors.New("io"))

	_, found, err := Read[sample](context.Background(), New(backend), "k")

	assert.False(t, found)
	assert.ErrorIs(t, err, domain.ErrReadFailure)
	backend.AssertExpectations(t)
}

func TestStore_EncodeFailure(t *testing.T) {
	backend := new(MockBackend)
	store := New(backend)

	err := Write(context.Background(), store, "k", map[string]any{"bad": make(chan int)})

	assert.ErrorIs(t, err, domain.ErrEncodeFailure)
	backend.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_CountsOperations(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryBackend())
	key := "counted-" + t.Name()

	okWrites := metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationWrite, key, metrics.StatusOK)
	absentReads := metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationRead, key, metrics.StatusAbsent)
	writesBefore := testutil.ToFloat64(okWrites)
	absentBefore := testutil.ToFloat64(absentReads)

	_, _, err := store.ReadRaw(ctx, key)
	require.NoError(t, err)
	require.NoError(t, store.WriteRaw(ctx, key, []byte(`1`)))

	assert.Equal(t, writesBefore+1, testutil.ToFloat64(okWrites))
	assert.Equal(t, absentBefore+1, testutil.ToFloat64(absentReads))
}

func TestStore_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	backend := new(MockBackend)
	backend.On("Get", mock.Anything, "k").Return([]byte(`{"name":"a"}`), true, nil)
	backend.On("Put", mock.Anything, "k", mock.Anything).Return(errors.New("boom"))

	ctx := context.Background()
	store := New(backend)
	_, _, err := Read[sample](ctx, store, "k")
	require.NoError(t, err)
	require.Error(t, Write(ctx, store, "k", sample{}))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, SpanRead, spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, SpanWrite, spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}

func TestStore_WithLockAndClose(t *testing.T) {
	backend := new(MockBackend)
	backend.On("Close").Return(nil)
	store := New(backend)

	called := false
	err := store.WithLock("k", func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	require.NoError(t, store.Close())
	backend.AssertExpectations(t)
}
