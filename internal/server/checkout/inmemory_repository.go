package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/wpsaas/wpcloud/internal/common"
)

type InMemoryRepository struct {
	mu   sync.RWMutex
	data map[string]*Deployment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{data: make(map[string]*Deployment)}
}

func (r *InMemoryRepository) Create(ctx context.Context, d *Deployment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	r.data[d.SessionID] = &cp
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, sessionID string) (*Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.data[sessionID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, sessionID string, status DeploymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.data[sessionID]
	if !ok {
		return common.ErrorNotFound
	}
	d.Status = status
	return nil
}
