package session

import (
	"context"
	"encoding/json"

	"github.com/wpsaas/wpcloud/internal/kvstore"
	"github.com/wpsaas/wpcloud/internal/logging"
)

// Binding ties one JSON-encoded value to one storage key.
//
// On construction the key is read from the store: a parseable value becomes
// the initial in-memory value, otherwise the default is kept and written
// back. Every Set updates memory first and then persists. Storage and parse
// failures are swallowed (logged at warn): the in-memory value stays
// authoritative for the rest of the session.
type Binding[T any] struct {
	store kvstore.Store
	log   logging.Logger
	key   string
	value T
}

// NewBinding constructs a binding for key, initializing from storage or from
// def as described above.
func NewBinding[T any](ctx context.Context, store kvstore.Store, log logging.Logger, key string, def T) *Binding[T] {
	b := &Binding[T]{store: store, log: log, key: key, value: def}

	raw, err := store.Get(ctx, key)
	if err != nil {
		b.log.Warn(ctx, "state read failed, keeping default", "key", key, "error", err)
		return b
	}
	if raw == nil {
		b.persist(ctx)
		return b
	}

	var loaded T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		b.log.Warn(ctx, "corrupt state, keeping default", "key", key, "error", err)
		b.persist(ctx)
		return b
	}
	b.value = loaded
	return b
}

// Key returns the storage key the binding currently writes to.
func (b *Binding[T]) Key() string {
	return b.key
}

// Value returns the current in-memory value.
func (b *Binding[T]) Value() T {
	return b.value
}

// Set replaces the in-memory value and persists it to the current key.
func (b *Binding[T]) Set(ctx context.Context, v T) {
	b.value = v
	b.persist(ctx)
}

// Rebind switches the binding to key and runs the re-scope sequence: an
// existing parseable record under key replaces the in-memory value; an
// absent one is seeded from the current in-memory value; a corrupt one is
// ignored, keeping the in-memory value.
func (b *Binding[T]) Rebind(ctx context.Context, key string) {
	b.key = key

	raw, err := b.store.Get(ctx, key)
	if err != nil {
		b.log.Warn(ctx, "re-scope read failed, keeping in-memory value", "key", key, "error", err)
		return
	}
	if raw == nil {
		b.persist(ctx)
		return
	}

	var loaded T
	if err := json.Unmarshal(raw, &loaded); err != nil {
		b.log.Warn(ctx, "corrupt record under new scope, keeping in-memory value", "key", key, "error", err)
		return
	}
	b.value = loaded
}

// Persist writes the current value to the current key. Exposed so the
// manager can run the persistence reaction after a re-scope.
func (b *Binding[T]) Persist(ctx context.Context) {
	b.persist(ctx)
}

func (b *Binding[T]) persist(ctx context.Context) {
	raw, err := json.Marshal(b.value)
	if err != nil {
		b.log.Warn(ctx, "state marshal failed", "key", b.key, "error", err)
		return
	}
	if err := b.store.Set(ctx, b.key, raw); err != nil {
		b.log.Warn(ctx, "state write failed, in-memory value stays authoritative", "key", b.key, "error", err)
	}
}
