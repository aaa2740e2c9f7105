// Package session owns the client's authentication identity and the active
// provisioning record. The record is bound to a storage key derived from the
// authenticated user's email, and is re-scoped whenever identity changes.
package session

// Storage keys. Auth lives under a fixed global key because it identifies
// which user is active; the server record starts on the unscoped default key
// and moves to a per-user key on login.
const (
	KeyAuth          = "app.auth"
	KeyServerDefault = "app.server"

	serverKeyPrefix = "app.server."
)

// ScopeKey derives the storage key holding the provisioning record of the
// user identified by email.
func ScopeKey(email string) string {
	return serverKeyPrefix + email
}

// UserIdentity identifies an authenticated user. Email is the unique key
// records are scoped by.
type UserIdentity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthState is the persisted authentication state: the current user, or nil
// when logged out.
type AuthState struct {
	User *UserIdentity `json:"user"`
}
