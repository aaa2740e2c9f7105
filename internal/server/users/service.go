// Package users implements account registration and login for the wpcloud
// API. Passwords are stored as argon2id hashes; successful logins hand out
// an access/refresh token pair.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wpsaas/wpcloud/internal/common"
	"github.com/wpsaas/wpcloud/internal/cryptox"
	"github.com/wpsaas/wpcloud/internal/server/auth"
	"github.com/wpsaas/wpcloud/internal/server/config"
	"github.com/wpsaas/wpcloud/internal/server/refreshtokens"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Service struct {
	repo                         Repository
	refreshTokenRepo             refreshtokens.Repository
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewService(repo Repository, refreshTokenRepo refreshtokens.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                         repo,
		refreshTokenRepo:             refreshTokenRepo,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

func (s *Service) Register(ctx context.Context, email, name string, password []byte) (*User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *Service) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *Service) Login(ctx context.Context, email string, password []byte) (*User, *TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, nil, common.ErrorUnauthorized
	}

	accessToken, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	err = s.refreshTokenRepo.Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	return user, &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges an unexpired refresh token for a new token pair. The
// used token is rotated out.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	rt, err := s.refreshTokenRepo.Get(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if time.Now().UTC().After(rt.ExpiresAt) {
		_ = s.refreshTokenRepo.Delete(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	accessToken, err := auth.GenerateToken(rt.UserID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	next, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.refreshTokenRepo.Create(ctx, rt.UserID, next, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	_ = s.refreshTokenRepo.Delete(ctx, refreshToken)

	return &TokenPair{AccessToken: accessToken, RefreshToken: next}, nil
}

// Authenticate resolves an access token to the user it was issued for.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*User, error) {
	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
