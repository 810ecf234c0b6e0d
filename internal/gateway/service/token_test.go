package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darkaihq/darkgate/pkg/jwtx"
)

func newTokenService(t *testing.T) (*TokenService, *ClientService) {
	t.Helper()

	st := newTestStore(t)
	codec := &jwtx.Codec{Secret: []byte("test-secret"), Issuer: "darkgate"}
	return &TokenService{Codec: codec, Store: st, AccessTTL: time.Hour},
		&ClientService{Store: st}
}

func TestTokenService_IssueForClient(t *testing.T) {
	t.Parallel()

	tokens, clients := newTokenService(t)
	ctx := context.Background()

	reg, err := clients.Register(ctx, "Acme", "admin@acme.example",
		[]string{"basic", "chat"}, []string{"all"})
	require.NoError(t, err)

	signed, claims, err := tokens.IssueForClient(ctx, reg.Client)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	t.Run("claims carry client identity", func(t *testing.T) {
		require.Equal(t, reg.Client.ID, claims.Subject)
		require.Equal(t, []string{"basic", "chat"}, claims.Scopes)
		require.Equal(t, []string{"all"}, claims.AllowedModels)
		require.Equal(t, "admin@acme.example", claims.Email)
		require.NotEmpty(t, claims.ID)
	})

	t.Run("token verifies with the codec", func(t *testing.T) {
		verified, err := tokens.Codec.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, claims.ID, verified.ID)
	})

	t.Run("jti recorded for revocation", func(t *testing.T) {
		revoked, err := tokens.IsRevoked(ctx, claims.ID)
		require.NoError(t, err)
		require.False(t, revoked)
	})
}

func TestTokenService_Revoke(t *testing.T) {
	t.Parallel()

	tokens, clients := newTokenService(t)
	ctx := context.Background()

	reg, err := clients.Register(ctx, "Acme", "admin@acme.example", nil, nil)
	require.NoError(t, err)

	_, claims, err := tokens.IssueForClient(ctx, reg.Client)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, claims.ID))

	revoked, err := tokens.IsRevoked(ctx, claims.ID)
	require.NoError(t, err)
	require.True(t, revoked)

	require.ErrorIs(t, tokens.Revoke(ctx, "missing"), ErrTokenNotFound)
}

func TestTokenService_RevokeOwned(t *testing.T) {
	t.Parallel()

	tokens, clients := newTokenService(t)
	ctx := context.Background()

	alice, err := clients.Register(ctx, "Alice", "alice@acme.example", nil, nil)
	require.NoError(t, err)
	mallory, err := clients.Register(ctx, "Mallory", "mallory@acme.example", nil, nil)
	require.NoError(t, err)

	_, claims, err := tokens.IssueForClient(ctx, alice.Client)
	require.NoError(t, err)

	t.Run("other client cannot revoke", func(t *testing.T) {
		err := tokens.RevokeOwned(ctx, claims.ID, mallory.Client.ID)
		require.ErrorIs(t, err, ErrTokenNotFound)

		revoked, err := tokens.IsRevoked(ctx, claims.ID)
		require.NoError(t, err)
		require.False(t, revoked)
	})

	t.Run("owner revokes", func(t *testing.T) {
		require.NoError(t, tokens.RevokeOwned(ctx, claims.ID, alice.Client.ID))

		revoked, err := tokens.IsRevoked(ctx, claims.ID)
		require.NoError(t, err)
		require.True(t, revoked)
	})
}

func TestTokenService_IsRevoked_UnknownJTI(t *testing.T) {
	t.Parallel()

	tokens, _ := newTokenService(t)

	// Every issued token is recorded, so an unrecorded jti is suspect
	revoked, err := tokens.IsRevoked(context.Background(), "never-issued")
	require.NoError(t, err)
	require.True(t, revoked)
}
