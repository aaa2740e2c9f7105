package provision

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfirmParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  ConfirmParams
	}{
		{
			name:  "success with provider",
			query: "success=1&provider=paypal",
			want:  ConfirmParams{Success: true, Provider: "paypal"},
		},
		{
			name:  "success without provider defaults",
			query: "success=1",
			want:  ConfirmParams{Success: true, Provider: "stripe"},
		},
		{
			name:  "anything but 1 is not success",
			query: "success=true",
			want:  ConfirmParams{Success: false, Provider: "stripe"},
		},
		{
			name:  "empty query",
			query: "",
			want:  ConfirmParams{Success: false, Provider: "stripe"},
		},
		{
			name:  "session id is carried through",
			query: "success=1&session_id=cs_123",
			want:  ConfirmParams{Success: true, Provider: "stripe", SessionID: "cs_123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ParseConfirmParams(q))
		})
	}
}

func TestConfirm_FreshRecordWithoutDomain(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec, applied := Confirm(DefaultRecord(), ConfirmParams{Success: true, Provider: "stripe"}, now)

	require.True(t, applied)
	assert.Equal(t, StatusAwaitingDNS, rec.Status)
	assert.Equal(t, "https://monsite.com", rec.SiteURL)
	assert.Equal(t, "https://monsite.com/wp-admin", rec.WpAdminURL)
	assert.Equal(t, DefaultNameservers(), rec.Nameservers)
	assert.Equal(t, "stripe", rec.PaymentProvider)
	require.NotNil(t, rec.LastPayment)
	assert.Equal(t, now, *rec.LastPayment)
}

func TestConfirm_RecordWithDomainAndProvider(t *testing.T) {
	in := DefaultRecord()
	in.Domain = "acme.io"

	rec, applied := Confirm(in, ConfirmParams{Success: true, Provider: "paypal"}, time.Now())

	require.True(t, applied)
	assert.Equal(t, StatusAwaitingDNS, rec.Status)
	assert.Equal(t, "paypal", rec.PaymentProvider)
	assert.Equal(t, "https://acme.io", rec.SiteURL)
	assert.Equal(t, "https://acme.io/wp-admin", rec.WpAdminURL)
}

func TestConfirm_NeverOverwritesPopulatedFields(t *testing.T) {
	in := DefaultRecord()
	in.Domain = "acme.io"
	in.SiteURL = "https://custom.example"
	in.WpAdminURL = "https://custom.example/admin"
	in.Nameservers = []string{"ns1.custom.example", "ns2.custom.example"}

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	rec, _ := Confirm(in, ConfirmParams{Success: true, Provider: "stripe"}, first)
	rec2, _ := Confirm(rec, ConfirmParams{Success: true, Provider: "stripe"}, second)

	// Idempotent apart from lastPayment, which advances.
	assert.Equal(t, "https://custom.example", rec2.SiteURL)
	assert.Equal(t, "https://custom.example/admin", rec2.WpAdminURL)
	assert.Equal(t, []string{"ns1.custom.example", "ns2.custom.example"}, rec2.Nameservers)
	assert.Equal(t, StatusAwaitingDNS, rec2.Status)
	require.NotNil(t, rec2.LastPayment)
	assert.Equal(t, second, *rec2.LastPayment)
}

func TestConfirm_NoSuccessSignal_NoMutation(t *testing.T) {
	in := DefaultRecord()
	in.Domain = "acme.io"

	rec, applied := Confirm(in, ConfirmParams{Success: false, Provider: "stripe"}, time.Now())

	assert.False(t, applied)
	assert.Equal(t, in, rec)
}

func TestDisplayNameservers(t *testing.T) {
	rec := DefaultRecord()
	assert.Equal(t, DefaultNameservers(), DisplayNameservers(rec))

	rec.Nameservers = []string{"ns1.acme.io"}
	assert.Equal(t, []string{"ns1.acme.io"}, DisplayNameservers(rec))
}

func TestStatus_Ordering(t *testing.T) {
	assert.True(t, StatusNone.Before(StatusAwaitingPayment))
	assert.True(t, StatusAwaitingPayment.Before(StatusAwaitingDNS))
	assert.True(t, StatusAwaitingDNS.Before(StatusLive))
	assert.False(t, StatusLive.Before(StatusAwaitingDNS))
	assert.False(t, StatusLive.Before(StatusLive))
}

func TestPlanByID(t *testing.T) {
	p, ok := PlanByID("basic")
	require.True(t, ok)
	assert.Equal(t, "Basic", p.Name)

	_, ok = PlanByID("nope")
	assert.False(t, ok)
}
