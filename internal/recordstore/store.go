package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/CardBuilder_Go/internal/concurrency"
	"github.com/osse101/CardBuilder_Go/internal/domain"
	"github.com/osse101/CardBuilder_Go/internal/logger"
	"github.com/osse101/CardBuilder_Go/internal/metrics"
)

// Store is the typed record store shared by every repository.
// Construct one per process and pass it to the repositories.
type Store struct {
	backend Backend
	locks   *concurrency.LockManager
}

// New wraps backend in a Store
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   concurrency.NewLockManager(),
	}
}

// WithLock serializes fn against every other WithLock call on the same key.
// Repositories wrap their load-then-save sequences in it.
func (s *Store) WithLock(key string, fn func() error) error {
	return s.locks.WithLock(key, fn)
}

// Close releases the backend
func (s *Store) Close() error {
	return s.backend.Close()
}

// ReadRaw returns the bytes stored under key. found is false when nothing is stored.
func (s *Store) ReadRaw(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, span := startSpan(ctx, SpanRead, key)
	defer span.End()

	start := time.Now()
	value, found, err := s.backend.Get(ctx, key)
	observe(metrics.OperationRead, start)

	if err != nil {
		fail(span, err)
		metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationRead, key, metrics.StatusError).Inc()
		logger.FromContext(ctx).Error(LogMsgReadFailed, LogFieldKey, key, LogFieldError, err)
		return nil, false, fmt.Errorf("%w: %s: %w", domain.ErrReadFailure, key, err)
	}

	span.SetAttributes(attribute.Bool(AttrStoreHit, found), attribute.Int(AttrValueSize, len(value)))
	if !found {
		metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationRead, key, metrics.StatusAbsent).Inc()
		return nil, false, nil
	}
	metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationRead, key, metrics.StatusOK).Inc()
	return value, true, nil
}

// WriteRaw replaces the bytes stored under key
func (s *Store) WriteRaw(ctx context.Context, key string, value []byte) error {
	ctx, span := startSpan(ctx, SpanWrite, key)
	defer span.End()
	span.SetAttributes(attribute.Int(AttrValueSize, len(value)))

	start := time.Now()
	err := s.backend.Put(ctx, key, value)
	observe(metrics.OperationWrite, start)

	if err != nil {
		fail(span, err)
		metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationWrite, key, metrics.StatusError).Inc()
		logger.FromContext(ctx).Error(LogMsgWriteFailed, LogFieldKey, key, LogFieldError, err)
		return fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, key, err)
	}
	metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationWrite, key, metrics.StatusOK).Inc()
	return nil
}

// Erase removes whatever is stored under key
func (s *Store) Erase(ctx context.Context, key string) error {
	ctx, span := startSpan(ctx, SpanErase, key)
	defer span.End()

	start := time.Now()
	err := s.backend.Delete(ctx, key)
	observe(metrics.OperationErase, start)

	if err != nil {
		fail(span, err)
		metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationErase, key, metrics.StatusError).Inc()
		logger.FromContext(ctx).Error(LogMsgEraseFailed, LogFieldKey, key, LogFieldError, err)
		return fmt.Errorf("%w: %s: %w", domain.ErrWriteFailure, key, err)
	}
	metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationErase, key, metrics.StatusOK).Inc()
	return nil
}

// Read decodes the JSON value stored under key into T.
// Bytes that do not decode are reported as absent, never as an error.
func Read[T any](ctx context.Context, s *Store, key string) (T, bool, error) {
	var zero T

	data, found, err := s.ReadRaw(ctx, key)
	if err != nil || !found {
		return zero, false, err
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		metrics.StoreDecodeFailures.WithLabelValues(key).Inc()
		logger.FromContext(ctx).Warn(LogMsgDecodeFailed, LogFieldKey, key, LogFieldError, err)
		return zero, false, nil
	}
	return value, true, nil
}

// Write encodes value as JSON and stores it under key
func Write[T any](ctx context.Context, s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.StoreOperationsTotal.WithLabelValues(metrics.OperationWrite, key, metrics.StatusEncode).Inc()
		logger.FromContext(ctx).Error(LogMsgEncodeFailed, LogFieldKey, key, LogFieldError, err)
		return fmt.Errorf("%w: %s: %w", domain.ErrEncodeFailure, key, err)
	}
	return s.WriteRaw(ctx, key, data)
}

func startSpan(ctx context.Context, name, key string) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, name, trace.WithAttributes(attribute.String(AttrStoreKey, key)))
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func observe(operation string, start time.Time) {
	metrics.StoreOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
