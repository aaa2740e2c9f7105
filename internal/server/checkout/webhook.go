package checkout

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wpsaas/wpcloud/internal/common"
)

// Webhook event types the provider sends us.
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventInvoicePaid         = "invoice.paid"
	EventPaymentFailed       = "invoice.payment_failed"
	EventSubscriptionDeleted = "customer.subscription.deleted"
	EventSubscriptionUpdated = "customer.subscription.updated"
)

// Event is the envelope posted to the webhook endpoint.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type eventData struct {
	SessionID string `json:"session_id"`
	Customer  string `json:"customer"`
}

// Signature computes the hex HMAC-SHA256 of payload under secret. Exposed
// so clients (and tests) can sign requests the same way the provider does.
func Signature(payload, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the signature header of a webhook request against
// the shared secret.
func VerifySignature(payload []byte, header string, secret []byte) error {
	want, err := hex.DecodeString(header)
	if err != nil {
		return common.ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	if !hmac.Equal(mac.Sum(nil), want) {
		return common.ErrInvalidSignature
	}
	return nil
}

// HandleEvent applies one provider event to the deployment it refers to.
// Unknown event types are ignored: providers add new ones without notice.
func (s *Service) HandleEvent(ctx context.Context, evt Event) error {
	var data eventData
	if len(evt.Data) > 0 {
		if err := json.Unmarshal(evt.Data, &data); err != nil {
			return fmt.Errorf("malformed event data: %w", err)
		}
	}

	switch evt.Type {
	case EventCheckoutCompleted:
		d, err := s.repo.Get(ctx, data.SessionID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				s.log.Error(ctx, "no pending deployment for session", "session_id", data.SessionID)
				return nil
			}
			return err
		}
		if err := s.repo.UpdateStatus(ctx, d.SessionID, DeploymentCompleted); err != nil {
			return err
		}
		s.log.Info(ctx, "payment confirmed, deployment started",
			"session_id", d.SessionID, "domain", d.Domain, "email", d.Email)

	case EventInvoicePaid:
		s.log.Info(ctx, "invoice paid", "customer", data.Customer)

	case EventPaymentFailed:
		s.log.Warn(ctx, "payment failed", "customer", data.Customer)
		if data.SessionID != "" {
			if err := s.repo.UpdateStatus(ctx, data.SessionID, DeploymentFailed); err != nil && !errors.Is(err, common.ErrorNotFound) {
				return err
			}
		}

	case EventSubscriptionDeleted:
		s.log.Info(ctx, "subscription canceled", "customer", data.Customer)
		if data.SessionID != "" {
			if err := s.repo.UpdateStatus(ctx, data.SessionID, DeploymentCanceled); err != nil && !errors.Is(err, common.ErrorNotFound) {
				return err
			}
		}

	case EventSubscriptionUpdated:
		s.log.Info(ctx, "subscription updated", "customer", data.Customer)

	default:
		s.log.Warn(ctx, "ignoring unknown webhook event", "type", evt.Type)
	}

	return nil
}
