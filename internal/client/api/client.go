// Package api implements the HTTP client for the wpcloud backend. It keeps
// the access/refresh token pair in memory and retries a request once after a
// token refresh when the server reports an expired access token.
package api

import (
	"context"
	"errors"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// UserInfo is the identity the backend reports for an account.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CheckoutSession is a provider checkout session created for a plan purchase.
type CheckoutSession struct {
	ID  string `json:"session_id"`
	URL string `json:"session_url"`
}

// PresignedURL points at object storage for a single backup transfer.
type PresignedURL struct {
	Key string `json:"key,omitempty"`
	URL string `json:"url"`
}

type Client interface {
	Register(ctx context.Context, email, name string, password []byte) (*UserInfo, error)
	Login(ctx context.Context, email string, password []byte) (*UserInfo, error)
	Logout()
	CreateCheckoutSession(ctx context.Context, domain, planID string) (*CheckoutSession, error)
	BackupUploadURL(ctx context.Context, domain string) (*PresignedURL, error)
	BackupDownloadURL(ctx context.Context, key string) (*PresignedURL, error)
	Ping(ctx context.Context) error
}
