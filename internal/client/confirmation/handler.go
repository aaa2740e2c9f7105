// Package confirmation serves the page the payment provider redirects back
// to. On a success signal it advances the provisioning record to the
// awaiting-DNS step through the session manager; in every case it shows the
// nameservers the user must configure at their registrar.
package confirmation

import (
	"html/template"
	"net/http"
	"time"

	"github.com/wpsaas/wpcloud/internal/logging"
	"github.com/wpsaas/wpcloud/internal/provision"
	"github.com/wpsaas/wpcloud/internal/session"
)

// Navigation targets exposed by the page.
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
	PathSupport   = "/support"
)

var page = template.Must(template.New("confirmation").Parse(`<!doctype html>
<html><head><title>Confirmation</title></head><body>
<h1>Confirmation</h1>
{{if .Paid}}<p>Payment received via {{.Provider}}. Next step: point your domain at these nameservers.</p>{{end}}
<h2>Nameservers</h2>
<ul>{{range .Nameservers}}<li><code>{{.}}</code></li>{{end}}</ul>
<p><a href="{{.DashboardURL}}">Go to dashboard</a> · <a href="{{.SupportURL}}">Need help?</a></p>
</body></html>
`))

type pageData struct {
	Paid         bool
	Provider     string
	Nameservers  []string
	DashboardURL string
	SupportURL   string
}

// Handler applies the payment-confirmation transition and renders the DNS
// instructions. The session manager is taken from the request context; the
// mux serving this handler must wrap it with Middleware or ServeHTTP panics.
type Handler struct {
	log logging.Logger

	// now is a seam for tests.
	now func() time.Time
}

func NewHandler(log logging.Logger) *Handler {
	return &Handler{log: log, now: time.Now}
}

// Middleware installs the session manager into every request context.
func Middleware(sessions *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sessions)))
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessions := session.FromContext(ctx)

	// No authenticated user: route to login, mutate nothing.
	if sessions.Auth().User == nil {
		http.Redirect(w, r, PathLogin, http.StatusSeeOther)
		return
	}

	params := provision.ParseConfirmParams(r.URL.Query())

	var rec provision.ServerRecord
	if params.Success {
		rec = sessions.UpdateServer(ctx, func(prev provision.ServerRecord) provision.ServerRecord {
			next, _ := provision.Confirm(prev, params, h.now().UTC())
			return next
		})
		h.log.Info(ctx, "payment confirmed, awaiting DNS",
			"provider", params.Provider, "domain", rec.Domain)
	} else {
		rec = sessions.Server()
	}

	data := pageData{
		Paid:         params.Success,
		Provider:     rec.PaymentProvider,
		Nameservers:  provision.DisplayNameservers(rec),
		DashboardURL: PathDashboard,
		SupportURL:   PathSupport,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		h.log.Error(ctx, "render confirmation page", "error", err)
	}
}
