package checkout

import "time"

// DeploymentStatus tracks a paid-for site deployment from checkout to
// rollout.
type DeploymentStatus string

const (
	DeploymentPending   DeploymentStatus = "pending"
	DeploymentCompleted DeploymentStatus = "completed"
	DeploymentFailed    DeploymentStatus = "failed"
	DeploymentCanceled  DeploymentStatus = "canceled"
)

// Deployment is the record created when a checkout session is opened and
// resolved by the payment provider's webhook.
type Deployment struct {
	SessionID string
	UserID    string
	Email     string
	Domain    string
	PlanID    string
	Status    DeploymentStatus
	CreatedAt time.Time
}

// Session is what the API returns to the client: the provider-hosted page
// to send the user to.
type Session struct {
	ID  string `json:"session_id"`
	URL string `json:"session_url"`
}
