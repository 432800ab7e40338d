// Package recordstore persists records under string keys. A Backend moves
// raw bytes; Store adds JSON encoding, decode-failure handling, per-key
// locking, metrics and tracing on top of it.
package recordstore

import "context"

// Backend is a byte-level key-value namespace.
// Put replaces the whole value for a key atomically. Delete of a missing key
// is not an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
