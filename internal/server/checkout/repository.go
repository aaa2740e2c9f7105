package checkout

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deployment) error
	Get(ctx context.Context, sessionID string) (*Deployment, error)
	UpdateStatus(ctx context.Context, sessionID string, status DeploymentStatus) error
}
