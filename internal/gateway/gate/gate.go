// Package gate implements the per-request admission decision in front of all
// proxied endpoints: replay protection on the request identifier, bearer
// token verification, and an optional timestamped HMAC body signature.
//
// Replay-cache failures fail open: an unreachable cache admits first-seen
// identifiers instead of taking the whole gateway down. Every degraded
// reserve is logged at warn level.
package gate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
	"github.com/darkaihq/darkgate/internal/gateway/replay"
	"github.com/darkaihq/darkgate/pkg/httpx"
	"github.com/darkaihq/darkgate/pkg/hmacx"
	"github.com/darkaihq/darkgate/pkg/jwtx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

const (
	// DefaultMaxSkew bounds |now - X-Timestamp| for signed requests.
	DefaultMaxSkew = 30 * time.Second

	// DefaultCacheTimeout bounds a single replay-cache round trip so a slow
	// backend cannot stall admission.
	DefaultCacheTimeout = 200 * time.Millisecond

	// maxSignedBodyBytes caps how much body the gate will buffer to compute
	// the content digest for signature verification.
	maxSignedBodyBytes = 10 << 20
)

// TokenVerifier checks a raw bearer token and returns its claims.
// *jwtx.Codec satisfies this.
type TokenVerifier interface {
	Verify(raw string) (jwtx.Claims, error)
}

// ClientSource resolves the client record holding the HMAC shared secret and
// lifecycle status. store.Clients satisfies this.
type ClientSource interface {
	GetClientByID(ctx context.Context, id string) (domain.Client, error)
}

// RevocationChecker reports whether a token identifier has been revoked.
// Optional: when nil, verification stays fully stateless.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Gate composes the replay cache, token codec and HMAC verifier into a
// single admission decision per inbound request.
type Gate struct {
	Replay  replay.Cache
	Tokens  TokenVerifier
	Clients ClientSource

	// Revocations is optional; when set, verified tokens are additionally
	// checked against the revocation list by jti.
	Revocations RevocationChecker

	// Exempt paths skip authentication entirely. "/" matches exactly; every
	// other entry matches itself and any subpath.
	Exempt []string

	ReplayTTL    time.Duration
	MaxSkew      time.Duration
	CacheTimeout time.Duration

	// Now is the clock source for skew comparisons. Defaults to time.Now.
	Now func() time.Time
}

// Middleware returns the admission middleware. Denials short-circuit with
// the JSON error envelope; admitted requests continue with the client
// identity and scopes attached to the context.
func (g *Gate) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.exempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, denial := g.admit(r)
			if denial != nil {
				httpx.WriteError(w, denial.Status, denial.Message)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// admit runs the admission checks in order, each short-circuiting on
// failure. On success it returns the request context with identity attached.
func (g *Gate) admit(r *http.Request) (context.Context, *Denial) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// 1. Replay check: the request identifier may be accepted at most once
	// within the TTL window.
	reqID := r.Header.Get("X-Request-ID")
	if reqID == "" {
		return nil, ErrMissingRequestID
	}

	reserveCtx, cancel := context.WithTimeout(ctx, g.cacheTimeout())
	won, err := g.Replay.Reserve(reserveCtx, reqID, g.replayTTL())
	cancel()
	switch {
	case err != nil:
		// Fail-open: cache unavailability must not block admission.
		log.Warn("replay reserve failed, admitting request", "error", err)
	case !won:
		log.Warn("replay detected", "request_id", reqID)
		return nil, ErrReplayDetected
	}

	// 2. Bearer check.
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, ErrMissingAuth
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	claims, err := g.Tokens.Verify(raw)
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return nil, ErrExpiredToken
	case err != nil:
		log.Warn("token verification failed", "error", err)
		return nil, ErrInvalidToken
	}

	if g.Revocations != nil && claims.ID != "" {
		revoked, err := g.Revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Warn("revocation check failed, admitting request", "error", err)
		} else if revoked {
			return nil, ErrInvalidToken
		}
	}

	ctx = httpx.WithIdentity(ctx, claims.Subject, claims.ID, claims.Scopes)

	// 3. Optional HMAC check: only when both headers are present. Absence is
	// not an error, it is the weaker-auth path.
	sig := r.Header.Get("X-Signature")
	ts := r.Header.Get("X-Timestamp")
	if sig != "" && ts != "" {
		if denial := g.verifySignature(ctx, r, claims.Subject, sig, ts); denial != nil {
			return nil, denial
		}
	}

	return ctx, nil
}

func (g *Gate) verifySignature(
	ctx context.Context,
	r *http.Request,
	clientID, sig, ts string,
) *Denial {
	log := slogx.FromContext(ctx)

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ErrClockSkew
	}
	skew := g.now().Unix() - unix
	if skew < 0 {
		skew = -skew
	}
	if skew > int64(g.maxSkew()/time.Second) {
		return ErrClockSkew
	}

	client, err := g.Clients.GetClientByID(ctx, clientID)
	if err != nil {
		log.Warn("client lookup for signature check failed", "error", err, "client_id", clientID)
		return ErrInvalidToken
	}
	if !client.Active() {
		return ErrClientSuspended
	}

	// The digest covers the exact raw body bytes, so buffer and restore the
	// stream for the downstream handler.
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBodyBytes))
	if err != nil {
		log.Error("reading body for signature check failed", "error", err)
		return ErrInternal
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	candidate := hmacx.StripScheme(sig)
	if !hmacx.Verify([]byte(client.SharedSecret), r.Method, r.URL.Path, ts, hmacx.BodyHash(body), candidate) {
		log.Warn("signature mismatch", "client_id", clientID)
		return ErrInvalidSignature
	}

	return nil
}

// exempt reports whether path skips authentication. "/" only matches the
// root itself; a prefix match there would exempt every path.
func (g *Gate) exempt(path string) bool {
	for _, entry := range g.Exempt {
		if entry == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if path == entry || strings.HasPrefix(path, entry+"/") {
			return true
		}
	}
	return false
}

func (g *Gate) replayTTL() time.Duration {
	if g.ReplayTTL > 0 {
		return g.ReplayTTL
	}
	return replay.DefaultTTL
}

func (g *Gate) maxSkew() time.Duration {
	if g.MaxSkew > 0 {
		return g.MaxSkew
	}
	return DefaultMaxSkew
}

func (g *Gate) cacheTimeout() time.Duration {
	if g.CacheTimeout > 0 {
		return g.CacheTimeout
	}
	return DefaultCacheTimeout
}

func (g *Gate) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
