package session

import (
	"context"
	"errors"
)

// ErrContextMissing is the panic value of FromContext when no Manager was
// installed. Consuming the session outside its lifecycle is a programming
// error, so it fails loudly instead of handing out defaults.
var ErrContextMissing = errors.New("session: manager missing from context")

type ctxKey struct{}

// NewContext returns a copy of ctx carrying m.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

// FromContext returns the Manager installed in ctx. It panics with
// ErrContextMissing when there is none.
func FromContext(ctx context.Context) *Manager {
	m, ok := ctx.Value(ctxKey{}).(*Manager)
	if !ok {
		panic(ErrContextMissing)
	}
	return m
}
