package cli

import (
	"context"
	"testing"

	"github.com/wpsaas/wpcloud/internal/provision"
)

func loginAs(t *testing.T, a *App, email string) {
	t.Helper()
	restore := stubInputs(t, []string{email}, []byte("pw"))
	defer restore()
	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
}

func TestBuy_ParksRecordAwaitingPayment(t *testing.T) {
	a, _ := newTestApp(t)
	loginAs(t, a, "alice@example.org")

	restore := stubInputs(t, []string{"pro", "acme.io"}, nil)
	defer restore()

	if err := a.Buy(context.Background()); err != nil {
		t.Fatalf("Buy err: %v", err)
	}

	rec := a.sessions.Server()
	if rec.Status != provision.StatusAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %q", rec.Status)
	}
	if rec.Domain != "acme.io" || rec.PlanID != "pro" {
		t.Fatalf("record not updated: %+v", rec)
	}
	if rec.CreatedAt == nil {
		t.Fatalf("CreatedAt not stamped")
	}
}

func TestBuy_UnknownPlanLeavesRecordAlone(t *testing.T) {
	a, _ := newTestApp(t)
	loginAs(t, a, "alice@example.org")

	restore := stubInputs(t, []string{"platinum"}, nil)
	defer restore()

	if err := a.Buy(context.Background()); err != nil {
		t.Fatalf("Buy err: %v", err)
	}

	if rec := a.sessions.Server(); rec.Status != provision.StatusNone {
		t.Fatalf("record must stay untouched, got %q", rec.Status)
	}
}

func TestBuy_SessionErrorLeavesRecordAlone(t *testing.T) {
	a, f := newTestApp(t)
	loginAs(t, a, "alice@example.org")
	f.sessionErr = context.DeadlineExceeded

	restore := stubInputs(t, []string{"basic", "acme.io"}, nil)
	defer restore()

	if err := a.Buy(context.Background()); err != nil {
		t.Fatalf("Buy err: %v", err)
	}

	if rec := a.sessions.Server(); rec.Status != provision.StatusNone {
		t.Fatalf("record must stay untouched, got %q", rec.Status)
	}
}
