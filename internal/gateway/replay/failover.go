package replay

import (
	"context"
	"log/slog"
	"time"
)

// Failover serves reserves from a primary backend and degrades to an
// in-process fallback when the primary errors. Fallback reserves are
// at-least-available, not distributed-consistent: two instances could each
// accept the same identifier while the shared cache is down. Every degraded
// reserve is logged so the weakness is visible in operation.
type Failover struct {
	primary  Cache
	fallback *Memory
	logger   *slog.Logger
}

// NewFailover wraps primary with an in-process fallback.
func NewFailover(primary Cache, logger *slog.Logger) *Failover {
	return &Failover{
		primary:  primary,
		fallback: NewMemory(),
		logger:   logger,
	}
}

// Reserve implements Cache. It never returns an error; primary failures are
// recovered locally.
func (f *Failover) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := f.primary.Reserve(ctx, key, ttl)
	if err == nil {
		return ok, nil
	}

	f.logger.Warn("replay cache degraded to in-process fallback", "error", err)
	return f.fallback.Reserve(ctx, key, ttl)
}
