package provision

// Plan describes one entry of the static plan catalog. The catalog is
// reference data: nothing in the client mutates it.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceEURCent int      `json:"priceEurCent"`
	PriceID      string   `json:"priceId"` // payment-provider price identifier
	Features     []string `json:"features"`
}

var plans = []Plan{
	{
		ID:           "basic",
		Name:         "Basic",
		PriceEURCent: 999,
		PriceID:      "price_basic_monthly",
		Features:     []string{"1 site", "10 GB storage", "daily backups"},
	},
	{
		ID:           "pro",
		Name:         "Pro",
		PriceEURCent: 1999,
		PriceID:      "price_pro_monthly",
		Features:     []string{"3 sites", "50 GB storage", "daily backups", "staging"},
	},
	{
		ID:           "agency",
		Name:         "Agency",
		PriceEURCent: 4999,
		PriceID:      "price_agency_monthly",
		Features:     []string{"10 sites", "200 GB storage", "hourly backups", "staging", "priority support"},
	},
}

// Plans returns the plan catalog. The caller must not modify the result.
func Plans() []Plan {
	return plans
}

// PlanByID looks a plan up by its identifier.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// defaultNameservers is the pair users point their registrar at.
var defaultNameservers = []string{
	"ada.ns.cloudflare.com",
	"rick.ns.cloudflare.com",
}

// DefaultNameservers returns a copy of the default nameserver pair.
func DefaultNameservers() []string {
	ns := make([]string, len(defaultNameservers))
	copy(ns, defaultNameservers)
	return ns
}
