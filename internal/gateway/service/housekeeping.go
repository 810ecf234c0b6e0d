package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/store"
)

// HousekeepingService periodically prunes expired access-token records.
// Expired tokens already fail verification; pruning only keeps the table
// from growing unbounded.
type HousekeepingService struct {
	store    store.Store
	logger   *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	return &HousekeepingService{
		store:    st,
		logger:   logger,
		interval: interval,
	}
}

// Start launches the background pruning loop.
func (s *HousekeepingService) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit.
func (s *HousekeepingService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *HousekeepingService) runOnce(ctx context.Context) {
	pruned, err := s.store.AccessTokens().DeleteExpiredBefore(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("housekeeping prune failed", "error", err)
		return
	}
	if pruned > 0 {
		s.logger.Info("pruned expired access tokens", "count", pruned)
	}
}
