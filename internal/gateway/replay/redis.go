package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces request identifiers within the shared cache service.
const keyPrefix = "rid:"

// Redis is the distributed backend, suitable when the gateway runs as
// multiple instances behind a load balancer. SET NX with expiry is a single
// atomic operation, so concurrent reserves on the same key have exactly one
// winner cluster-wide.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis wraps an existing redis client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// Reserve implements Cache.
func (r *Redis) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("replay: redis reserve: %w", err)
	}
	return ok, nil
}
