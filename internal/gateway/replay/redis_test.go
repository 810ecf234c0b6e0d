package replay

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client)
}

func TestRedis_Reserve(t *testing.T) {
	t.Parallel()

	cache := newTestRedis(t)
	ctx := context.Background()

	won, err := cache.Reserve(ctx, "req-1", time.Minute)
	require.NoError(t, err)
	require.True(t, won)

	won, err = cache.Reserve(ctx, "req-1", time.Minute)
	require.NoError(t, err)
	require.False(t, won)

	won, err = cache.Reserve(ctx, "req-2", time.Minute)
	require.NoError(t, err)
	require.True(t, won)
}

func TestRedis_ReserveAfterExpiry(t *testing.T) {
	t.Parallel()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedis(client)
	ctx := context.Background()

	won, err := cache.Reserve(ctx, "req-1", time.Minute)
	require.NoError(t, err)
	require.True(t, won)

	srv.FastForward(61 * time.Second)

	won, err = cache.Reserve(ctx, "req-1", time.Minute)
	require.NoError(t, err)
	require.True(t, won, "key is reusable after the TTL window")
}

func TestRedis_ReserveErrorWhenDown(t *testing.T) {
	t.Parallel()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewRedis(client)
	srv.Close()

	_, err := cache.Reserve(context.Background(), "req-1", time.Minute)
	require.Error(t, err)
}
