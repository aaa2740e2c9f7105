// Package provision defines the per-user hosted-site provisioning record and
// the payment-confirmation transition applied to it.
package provision

import "time"

// Status is the rollout state of a hosted site. It only ever moves forward
// along none → awaiting_payment → awaiting_dns → live; nothing in this
// package regresses a record on its own.
type Status string

const (
	StatusNone            Status = "none"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusAwaitingDNS     Status = "awaiting_dns"
	StatusLive            Status = "live"
)

var statusOrder = map[Status]int{
	StatusNone:            0,
	StatusAwaitingPayment: 1,
	StatusAwaitingDNS:     2,
	StatusLive:            3,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// Before reports whether s comes strictly earlier than other in the
// provisioning sequence. Unknown statuses compare as earliest.
func (s Status) Before(other Status) bool {
	return statusOrder[s] < statusOrder[other]
}

// Analytics carries the read-only usage numbers shown on the dashboard.
type Analytics struct {
	Visitors7d  int        `json:"visitors7d"`
	Uptime30d   float64    `json:"uptime30d"`
	LastChecked *time.Time `json:"lastChecked"`
}

// ServerRecord tracks one user's hosted-site provisioning state. It is the
// unit persisted under the user-scoped storage key.
type ServerRecord struct {
	Domain          string     `json:"domain"`
	PlanID          string     `json:"planId"`
	Status          Status     `json:"status"`
	CreatedAt       *time.Time `json:"createdAt"`
	WpAdminURL      string     `json:"wpAdminUrl"`
	SiteURL         string     `json:"siteUrl"`
	LastPayment     *time.Time `json:"lastPayment"`
	PaymentProvider string     `json:"paymentProvider,omitempty"`
	Registrar       string     `json:"registrar"`
	Nameservers     []string   `json:"nameservers,omitempty"`
	Analytics       Analytics  `json:"analytics"`
}

// DefaultRecord is the record a user starts with before any checkout.
func DefaultRecord() ServerRecord {
	return ServerRecord{
		Domain:    "",
		PlanID:    "basic",
		Status:    StatusNone,
		Registrar: "OVH",
		Analytics: Analytics{Visitors7d: 0, Uptime30d: 99.9},
	}
}
