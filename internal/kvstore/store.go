// Package kvstore provides the durable, string-keyed storage the
// provisioning client keeps its state in. Implementations are synchronous;
// callers above decide whether a failed read or write is fatal.
package kvstore

import "context"

// Store is a flat key-value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set creates or overwrites the value (upsert).
//   - Delete is idempotent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
