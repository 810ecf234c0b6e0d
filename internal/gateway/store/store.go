package store

import (
	"context"
	"errors"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is the persistence boundary for the gateway.
type Store interface {
	Clients() Clients
	AccessTokens() AccessTokens

	Ping(ctx context.Context) error
	Close() error
}

// Clients persists registered API consumers.
type Clients interface {
	CreateClient(ctx context.Context, c domain.Client) error
	GetClientByID(ctx context.Context, id string) (domain.Client, error)
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)
	UpdateClientStatus(ctx context.Context, id, status string) error
	UpdateClientProfile(ctx context.Context, id, name string, scopes, allowedModels []string) error
}

// AccessTokens records issued token identifiers for revocation support.
type AccessTokens interface {
	CreateAccessToken(ctx context.Context, t domain.AccessToken) error
	GetAccessToken(ctx context.Context, jti string) (domain.AccessToken, error)
	RevokeAccessToken(ctx context.Context, jti string) error
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
