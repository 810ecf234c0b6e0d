package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darkaihq/darkgate/internal/gateway/domain"
	"github.com/darkaihq/darkgate/internal/gateway/store"
)

func TestHousekeepingService_PrunesExpired(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	clients := &ClientService{Store: st}
	reg, err := clients.Register(ctx, "Acme", "admin@acme.example", nil, nil)
	require.NoError(t, err)

	expired := domain.AccessToken{
		JTI: "jti-old", ClientID: reg.Client.ID,
		IssuedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}
	require.NoError(t, st.AccessTokens().CreateAccessToken(ctx, expired))

	svc := NewHousekeepingService(st, slog.Default(), time.Hour)
	svc.runOnce(ctx)

	_, err = st.AccessTokens().GetAccessToken(ctx, "jti-old")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestHousekeepingService_StartStop(t *testing.T) {
	t.Parallel()

	svc := NewHousekeepingService(newTestStore(t), slog.Default(), 10*time.Millisecond)

	svc.Start()
	time.Sleep(30 * time.Millisecond)
	svc.Stop()

	// Stop on an already stopped service is a no-op
	svc.cancel = nil
	svc.Stop()
}
