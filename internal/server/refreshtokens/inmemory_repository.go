package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/wpsaas/wpcloud/internal/common"
)

type InMemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]*RefreshToken
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{tokens: make(map[string]*RefreshToken)}
}

func (r *InMemoryRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = &RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(validity),
	}
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, token string) (*RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *rt
	return &cp, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}
