// Package refreshtokens stores the long-lived tokens issued alongside access
// tokens so sessions can be renewed without a password.
package refreshtokens

import (
	"context"
	"time"
)

type RefreshToken struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	Get(ctx context.Context, token string) (*RefreshToken, error)
	Delete(ctx context.Context, token string) error
}
