package session

import (
	"context"
	"sync"

	"github.com/wpsaas/wpcloud/internal/kvstore"
	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/provision"
)

// Manager owns the two pieces of session state: auth (who is logged in) and
// the provisioning record of the active user. It also exposes the static
// reference data the UI layer needs (plan catalog, default nameservers).
//
// Two reactions run on identity change, in a fixed order: first the server
// binding is re-scoped to the new user's key (load-or-seed), then the
// post-re-scope record is persisted. SetServer runs only the persistence
// reaction. Both are synchronous with respect to the triggering call.
type Manager struct {
	mu     sync.Mutex
	log    logging.Logger
	auth   *Binding[AuthState]
	server *Binding[provision.ServerRecord]
}

// NewManager rehydrates session state from store. If a persisted auth state
// already names a user, the server binding is re-scoped to that user right
// away, so a restart lands on the same record the user left.
func NewManager(ctx context.Context, store kvstore.Store, log logging.Logger) *Manager {
	m := &Manager{
		log:    log,
		auth:   NewBinding(ctx, store, log, KeyAuth, AuthState{}),
		server: NewBinding(ctx, store, log, KeyServerDefault, provision.DefaultRecord()),
	}

	if u := m.auth.Value().User; u != nil {
		m.server.Rebind(ctx, ScopeKey(u.Email))
		m.server.Persist(ctx)
	}
	return m
}

// Auth returns the current authentication state.
func (m *Manager) Auth() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.auth.Value()
}

// SetAuth replaces the authentication state. When the new state names a user
// whose identity differs from the previous one, the server record is
// re-scoped to that user's key before it is persisted again. A nil user
// leaves the server scope untouched.
func (m *Manager) SetAuth(ctx context.Context, a AuthState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.auth.Value()
	m.auth.Set(ctx, a)

	if a.User == nil {
		return
	}

	if prev.User == nil || prev.User.Email != a.User.Email {
		m.server.Rebind(ctx, ScopeKey(a.User.Email))
	}

	// Persistence reaction: observes the post-re-scope record.
	m.server.Persist(ctx)
}

// Server returns the provisioning record of the active user.
func (m *Manager) Server() provision.ServerRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.server.Value()
}

// SetServer replaces the provisioning record and persists it to the current
// scoped key.
func (m *Manager) SetServer(ctx context.Context, rec provision.ServerRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.server.Set(ctx, rec)
}

// UpdateServer derives a new record from the current one and persists it.
// The whole read-modify-write runs under the manager's lock.
func (m *Manager) UpdateServer(ctx context.Context, fn func(prev provision.ServerRecord) provision.ServerRecord) provision.ServerRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := fn(m.server.Value())
	m.server.Set(ctx, next)
	return next
}

// ServerKey returns the storage key the record is currently scoped to.
func (m *Manager) ServerKey() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.server.Key()
}

// Plans returns the static plan catalog.
func (m *Manager) Plans() []provision.Plan {
	return provision.Plans()
}

// Nameservers returns the default nameserver pair.
func (m *Manager) Nameservers() []string {
	return provision.DefaultNameservers()
}
