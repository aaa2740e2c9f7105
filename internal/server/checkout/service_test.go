package checkout

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpsaas/wpcloud/internal/common"
	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/server/config"
)

func newService() *Service {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(NewInMemoryRepository(), log, cfg)
}

func TestCreateSession(t *testing.T) {
	s := newService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "user-1", "u1@acme.io", "acme.io", "basic")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sess.ID, "cs_"))
	assert.Contains(t, sess.URL, sess.ID)

	d, err := s.repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, DeploymentPending, d.Status)
	assert.Equal(t, "acme.io", d.Domain)
}

func TestCreateSession_UnknownPlan(t *testing.T) {
	s := newService()

	_, err := s.CreateSession(context.Background(), "user-1", "u1@acme.io", "acme.io", "platinum")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSuccessURL_CarriesSuccessSignal(t *testing.T) {
	s := newService()

	url := s.SuccessURL("cs_123")
	assert.Contains(t, url, "session_id=cs_123")
	assert.Contains(t, url, "success=1")
	assert.Contains(t, url, "/confirmation")
}

func TestHandleEvent_CheckoutCompleted(t *testing.T) {
	s := newService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "user-1", "u1@acme.io", "acme.io", "basic")
	require.NoError(t, err)

	data, _ := json.Marshal(map[string]string{"session_id": sess.ID})
	require.NoError(t, s.HandleEvent(ctx, Event{Type: EventCheckoutCompleted, Data: data}))

	d, err := s.repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, DeploymentCompleted, d.Status)
}

func TestHandleEvent_UnknownSession_IsTolerated(t *testing.T) {
	s := newService()

	data, _ := json.Marshal(map[string]string{"session_id": "cs_nope"})
	assert.NoError(t, s.HandleEvent(context.Background(), Event{Type: EventCheckoutCompleted, Data: data}))
}

func TestHandleEvent_SubscriptionDeleted(t *testing.T) {
	s := newService()
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "user-1", "u1@acme.io", "acme.io", "basic")
	require.NoError(t, err)

	data, _ := json.Marshal(map[string]string{"session_id": sess.ID})
	require.NoError(t, s.HandleEvent(ctx, Event{Type: EventSubscriptionDeleted, Data: data}))

	d, err := s.repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, DeploymentCanceled, d.Status)
}

func TestHandleEvent_UnknownType_Ignored(t *testing.T) {
	s := newService()
	assert.NoError(t, s.HandleEvent(context.Background(), Event{Type: "totally.new.event"}))
}

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"type":"invoice.paid"}`)
	secret := []byte("whsec_test")

	sig := Signature(payload, secret)
	assert.NoError(t, VerifySignature(payload, sig, secret))

	assert.ErrorIs(t, VerifySignature(payload, sig, []byte("other")), common.ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature([]byte("tampered"), sig, secret), common.ErrInvalidSignature)
	assert.ErrorIs(t, VerifySignature(payload, "zz-not-hex", secret), common.ErrInvalidSignature)
}
