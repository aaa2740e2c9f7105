package checkout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wpsaas/wpcloud/internal/common"
	"github.com/wpsaas/wpcloud/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, d *Deployment) error {
	query :=
		`INSERT INTO deployments (session_id, user_id, email, domain, plan_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		d.SessionID, d.UserID, d.Email, d.Domain, d.PlanID, d.Status)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, sessionID string) (*Deployment, error) {
	query :=
		`SELECT session_id, user_id, email, domain, plan_id, status, created_at
		 FROM deployments
		 WHERE session_id = $1
		 `

	d := &Deployment{}
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&d.SessionID, &d.UserID, &d.Email, &d.Domain, &d.PlanID, &d.Status, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, sessionID string, status DeploymentStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE deployments SET status = $1 WHERE session_id = $2`, status, sessionID)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
