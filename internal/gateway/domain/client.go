package domain

import "time"

// Client lifecycle status values. Clients are never hard-deleted; the status
// flips to suspended instead.
const (
	ClientStatusActive    = "active"
	ClientStatusSuspended = "suspended"
)

// Client is a registered API consumer: identity, credentials and
// authorization scope.
type Client struct {
	ID   string
	Name string
	// Email is unique across clients and doubles as the login identifier.
	Email string
	// APIKeyHash is the bcrypt hash of the long-lived API key presented at
	// login. The plaintext is shown once at registration and never stored.
	APIKeyHash string
	// SharedSecret keys the optional HMAC request signatures. It has to be
	// recoverable for verification, so unlike the API key it is stored
	// as-is; encrypting it at rest is a deployment concern.
	SharedSecret     string
	Scopes           []string
	AllowedModels    []string
	RateLimitProfile string
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Active reports whether the client may authenticate and call the API.
func (c Client) Active() bool { return c.Status == ClientStatusActive }
