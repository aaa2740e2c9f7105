package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wpsaas/wpcloud/internal/common"
)

// InMemoryRepository is a map-backed Repository for tests and ephemeral runs.
type InMemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*User
	email map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:  make(map[string]*User),
		email: make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.email[user.Email]; exists {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	r.byID[u.ID] = &u
	r.email[u.Email] = u.ID

	cp := u
	return &cp, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.email[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}
