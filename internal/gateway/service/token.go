package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
	"github.com/darkaihq/darkgate/internal/gateway/store"
	"github.com/darkaihq/darkgate/pkg/idx"
	"github.com/darkaihq/darkgate/pkg/jwtx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

var ErrTokenNotFound = errors.New("token not found")

type TokenService struct {
	Codec     *jwtx.Codec
	Store     store.Store
	AccessTTL time.Duration
}

// IssueForClient mints an access token for an authenticated client and
// records its jti so the token can be revoked later.
func (s *TokenService) IssueForClient(ctx context.Context, client domain.Client) (string, jwtx.Claims, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	claims := jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Codec.Issuer,
			Subject:   client.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTTL)),
			ID:        idx.New().String(),
		},
		Scopes:        client.Scopes,
		AllowedModels: client.AllowedModels,
		Email:         client.Email,
	}

	signed, err := s.Codec.IssueClaims(claims)
	if err != nil {
		return "", jwtx.Claims{}, err
	}

	record := domain.AccessToken{
		JTI:       claims.ID,
		ClientID:  client.ID,
		IssuedAt:  now,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := s.Store.AccessTokens().CreateAccessToken(ctx, record); err != nil {
		l.Error("failed to record access token", "error", err, "client_id", client.ID)
		return "", jwtx.Claims{}, err
	}

	l.Info("access token issued", "client_id", client.ID, "jti", claims.ID)
	return signed, claims, nil
}

// Revoke marks a token identifier revoked before its natural expiry.
func (s *TokenService) Revoke(ctx context.Context, jti string) error {
	err := s.Store.AccessTokens().RevokeAccessToken(ctx, jti)
	if errors.Is(err, store.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}

// RevokeOwned revokes jti only when it belongs to clientID. Ownership
// failures look identical to a missing token so callers can't probe for
// other clients' token identifiers.
func (s *TokenService) RevokeOwned(ctx context.Context, jti, clientID string) error {
	record, err := s.Store.AccessTokens().GetAccessToken(ctx, jti)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTokenNotFound
		}
		return err
	}
	if record.ClientID != clientID {
		return ErrTokenNotFound
	}
	return s.Revoke(ctx, jti)
}

// IsRevoked reports whether the token identifier has been revoked. Every
// issued token is recorded, so an unknown jti is treated as revoked.
func (s *TokenService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	record, err := s.Store.AccessTokens().GetAccessToken(ctx, jti)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return record.Revoked, nil
}
