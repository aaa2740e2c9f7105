package provision

import (
	"net/url"
	"time"
)

const (
	// DefaultProvider is assumed when the redirect does not name one.
	DefaultProvider = "stripe"

	// PlaceholderDomain is used to derive site URLs for records whose
	// domain was never filled in.
	PlaceholderDomain = "monsite.com"
)

// ConfirmParams are the query parameters a payment provider appends to the
// confirmation redirect.
type ConfirmParams struct {
	Success   bool
	Provider  string
	SessionID string
}

// ParseConfirmParams extracts the confirmation signal from redirect query
// parameters. Only success=1 counts as a success signal; the provider
// defaults to DefaultProvider when absent.
func ParseConfirmParams(q url.Values) ConfirmParams {
	p := ConfirmParams{
		Success:   q.Get("success") == "1",
		Provider:  q.Get("provider"),
		SessionID: q.Get("session_id"),
	}
	if p.Provider == "" {
		p.Provider = DefaultProvider
	}
	return p
}

// Confirm applies the successful-payment transition to rec and reports
// whether anything was applied.
//
// On a success signal the record moves to awaiting_dns, the payment time and
// provider are stamped, and siteUrl/wpAdminUrl/nameservers are derived only
// when currently empty; populated fields are never overwritten, which makes
// a revisit of the same redirect idempotent apart from the lastPayment
// timestamp. Without the success signal rec is returned untouched.
func Confirm(rec ServerRecord, p ConfirmParams, now time.Time) (ServerRecord, bool) {
	if !p.Success {
		return rec, false
	}

	domain := rec.Domain
	if domain == "" {
		domain = PlaceholderDomain
	}

	rec.Status = StatusAwaitingDNS
	rec.LastPayment = &now
	rec.PaymentProvider = p.Provider

	if rec.SiteURL == "" {
		rec.SiteURL = "https://" + domain
	}
	if rec.WpAdminURL == "" {
		rec.WpAdminURL = "https://" + domain + "/wp-admin"
	}
	if len(rec.Nameservers) == 0 {
		rec.Nameservers = DefaultNameservers()
	}

	return rec, true
}

// DisplayNameservers returns the nameservers to show for rec without
// persisting anything: the record's own list, or the default pair when the
// record has none yet.
func DisplayNameservers(rec ServerRecord) []string {
	if len(rec.Nameservers) > 0 {
		return rec.Nameservers
	}
	return DefaultNameservers()
}
