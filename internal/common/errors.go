// Package common defines shared constants and sentinel errors used across
// client and server layers of wpcloud. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Storage errors. A failed read/write on the local state store is
	// reported with this sentinel; the session layer decides whether to
	// swallow it.
	ErrorStorage = errors.New("storage unavailable")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Webhook errors.
	ErrInvalidSignature = errors.New("invalid signature")
)
