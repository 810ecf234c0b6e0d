package service

import (
	"context"
	"errors"
	"strings"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
	"github.com/darkaihq/darkgate/internal/gateway/store"
	"github.com/darkaihq/darkgate/pkg/cryptox"
	"github.com/darkaihq/darkgate/pkg/idx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrClientSuspended    = errors.New("client account is not active")
	ErrClientNotFound     = errors.New("client not found")
)

// Registration is what a successful registration hands back. The plaintext
// credentials are shown exactly once and never stored in recoverable form
// (the shared secret excepted, which HMAC verification requires).
type Registration struct {
	Client       domain.Client
	APIKey       string
	SharedSecret string
}

type ClientService struct {
	Store store.Store
}

// Register creates a new client with a generated API key and shared secret.
func (s *ClientService) Register(
	ctx context.Context,
	name, email string,
	scopes, allowedModels []string,
) (Registration, error) {
	l := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Store.Clients().GetClientByEmail(ctx, email); err == nil {
		return Registration{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return Registration{}, err
	}

	apiKey, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return Registration{}, err
	}
	sharedSecret, err := cryptox.GenerateToken(cryptox.TokenSize512)
	if err != nil {
		return Registration{}, err
	}
	apiKeyHash, err := cryptox.HashCredential(apiKey)
	if err != nil {
		return Registration{}, err
	}

	if len(scopes) == 0 {
		scopes = []string{"basic"}
	}
	if len(allowedModels) == 0 {
		allowedModels = []string{"all"}
	}

	client := domain.Client{
		ID:               idx.New().String(),
		Name:             name,
		Email:            email,
		APIKeyHash:       apiKeyHash,
		SharedSecret:     sharedSecret,
		Scopes:           scopes,
		AllowedModels:    allowedModels,
		RateLimitProfile: "standard",
		Status:           domain.ClientStatusActive,
	}

	if err := s.Store.Clients().CreateClient(ctx, client); err != nil {
		l.Error("failed to create client", "error", err)
		return Registration{}, err
	}

	l.Info("client registered", "client_id", client.ID, "email", email)
	return Registration{Client: client, APIKey: apiKey, SharedSecret: sharedSecret}, nil
}

// Authenticate verifies a login attempt and returns the client record.
// Lookup failure and key mismatch collapse into ErrInvalidCredentials so the
// response doesn't reveal whether the email exists.
func (s *ClientService) Authenticate(ctx context.Context, email, apiKey string) (domain.Client, error) {
	l := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	client, err := s.Store.Clients().GetClientByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrInvalidCredentials
		}
		return domain.Client{}, err
	}

	if err := cryptox.VerifyCredential(apiKey, client.APIKeyHash); err != nil {
		l.Info("login failed", "email", email)
		return domain.Client{}, ErrInvalidCredentials
	}

	if !client.Active() {
		return domain.Client{}, ErrClientSuspended
	}

	return client, nil
}

// GetProfile returns the client record by ID.
func (s *ClientService) GetProfile(ctx context.Context, clientID string) (domain.Client, error) {
	client, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return client, nil
}

// Suspend flips the client's status instead of deleting the record.
func (s *ClientService) Suspend(ctx context.Context, clientID string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.Clients().UpdateClientStatus(ctx, clientID, domain.ClientStatusSuspended)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}

	l.Info("client suspended", "client_id", clientID)
	return nil
}
