package httpx

import "context"

type ctxKey string

const (
	// CtxKeyClientID carries the authenticated client identifier.
	CtxKeyClientID ctxKey = "client_id"
	// CtxKeyScopes carries the scope list resolved from the bearer token.
	CtxKeyScopes ctxKey = "scopes"
	// CtxKeyTokenID carries the jti of the presented bearer token.
	CtxKeyTokenID ctxKey = "token_id"
)

// WithIdentity attaches the admitted client identity to the context for
// downstream handlers.
func WithIdentity(ctx context.Context, clientID, tokenID string, scopes []string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyClientID, clientID)
	ctx = context.WithValue(ctx, CtxKeyTokenID, tokenID)
	return context.WithValue(ctx, CtxKeyScopes, scopes)
}

// TokenIDFromContext returns the jti of the presented bearer token.
func TokenIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyTokenID).(string); ok {
		return v
	}
	return ""
}

// ClientIDFromContext returns the authenticated client ID, or "" on exempt
// paths where no identity was attached.
func ClientIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyClientID).(string); ok {
		return v
	}
	return ""
}

// ScopesFromContext returns the scope list attached at admission.
func ScopesFromContext(ctx context.Context) []string {
	if v, ok := ctx.Value(CtxKeyScopes).([]string); ok {
		return v
	}
	return nil
}
