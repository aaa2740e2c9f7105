// Package checkout creates payment-provider checkout sessions and resolves
// them from provider webhooks. A session opens a pending deployment; the
// checkout.session.completed event completes it.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wpsaas/wpcloud/internal/common"
	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/provision"
	"github.com/wpsaas/wpcloud/internal/server/config"
)

type Service struct {
	repo        Repository
	log         logging.Logger
	frontendURL string
}

func NewService(repo Repository, log logging.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, frontendURL: cfg.FrontendURL}
}

// CreateSession opens a checkout session for the given user and plan and
// records the deployment as pending until the provider confirms payment.
// The returned session URL is where the user completes the payment; on
// success the provider redirects to
// {frontend}/confirmation?session_id=...&success=1.
func (s *Service) CreateSession(ctx context.Context, userID, email, domain, planID string) (*Session, error) {
	if _, ok := provision.PlanByID(planID); !ok {
		return nil, fmt.Errorf("unknown plan %q: %w", planID, common.ErrorNotFound)
	}

	sessionID := "cs_" + uuid.NewString()

	d := &Deployment{
		SessionID: sessionID,
		UserID:    userID,
		Email:     email,
		Domain:    domain,
		PlanID:    planID,
		Status:    DeploymentPending,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("error creating deployment: %w", err)
	}

	s.log.Info(ctx, "checkout session created",
		"session_id", sessionID, "plan", planID, "domain", domain)

	return &Session{
		ID:  sessionID,
		URL: fmt.Sprintf("%s/checkout/%s", s.frontendURL, sessionID),
	}, nil
}

// SuccessURL is the redirect the provider sends the user back to after a
// completed payment.
func (s *Service) SuccessURL(sessionID string) string {
	return fmt.Sprintf("%s/confirmation?session_id=%s&success=1", s.frontendURL, sessionID)
}

// CancelURL is the redirect for an abandoned payment.
func (s *Service) CancelURL() string {
	return s.frontendURL + "/create?canceled=1"
}
