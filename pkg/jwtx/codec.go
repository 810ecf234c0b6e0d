// Package jwtx implements the bearer token codec: signed, time-bound access
// tokens carrying a subject and scope list. Tokens are HS256-signed with a
// server-held secret, so verification is stateless and needs no store or
// network access. Revocation, when required, is layered on top by the gate
// via a jti lookup.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/darkaihq/darkgate/pkg/idx"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens issued at
// login.
const DefaultAccessTokenTTL = time.Hour

var (
	// ErrExpired reports a structurally valid token whose expiry has passed.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrInvalid covers malformed encodings, signature mismatches and
	// algorithm confusion. Deliberately coarse so callers can't distinguish
	// forgery from corruption.
	ErrInvalid = errors.New("jwtx: invalid token")
)

// Claims are the access-token claims. Scopes are carried as a JSON list so
// downstream handlers can authorize without re-parsing.
type Claims struct {
	jwt.RegisteredClaims

	Scopes []string `json:"scope,omitempty"`

	// AllowedModels limits which upstream models the client may call.
	AllowedModels []string `json:"models,omitempty"`

	// Email of the owning client, for downstream display only.
	Email string `json:"email,omitempty"`
}

// Codec issues and verifies access tokens with a single symmetric secret.
// Safe for concurrent use.
type Codec struct {
	Secret []byte
	Issuer string
}

// Issue mints a signed token for subject with the given scopes and TTL. The
// returned Claims echo what was encoded, including the generated jti.
func (c *Codec) Issue(subject string, scopes []string, ttl time.Duration) (string, Claims, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.New().String(),
		},
		Scopes: scopes,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, claims, nil
}

// IssueClaims signs fully caller-built claims. Used when the login flow wants
// to attach extra fields (email, allowed models) beyond what Issue sets.
func (c *Codec) IssueClaims(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
}

// Verify decodes and checks signature, expiry and issuer. Failures are
// reported as a result value (ErrExpired or ErrInvalid), never a panic.
func (c *Codec) Verify(raw string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if c.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.Issuer))
	}

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return c.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalid
	}
	if !token.Valid {
		return Claims{}, ErrInvalid
	}

	return claims, nil
}
