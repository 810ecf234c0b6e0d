// Package replay detects duplicate request identifiers. A request ID may be
// accepted at most once within its TTL window; after expiry the ID may be
// legitimately reused, which is an accepted risk of the trailing-window
// design.
package replay

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the replay-protection window for request identifiers.
const DefaultTTL = 60 * time.Second

// Cache is a key-existence store with per-key expiry.
type Cache interface {
	// Reserve atomically inserts key if absent, scheduling expiry after ttl.
	// It returns true when this call performed the insert (the caller wins
	// and may proceed) and false when the key already existed (replay).
	// Exactly one concurrent caller can win for a given key.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Memory is the in-process backend: a mutex-guarded map of expiry deadlines.
// It is process-local, so replay protection only holds within one instance.
type Memory struct {
	mu        sync.Mutex
	deadlines map[string]time.Time
	lastSweep time.Time
	now       func() time.Time
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{
		deadlines: make(map[string]time.Time),
		now:       time.Now,
	}
}

// Reserve implements Cache. It never returns an error.
func (m *Memory) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.maybeSweep(now)

	if deadline, ok := m.deadlines[key]; ok && now.Before(deadline) {
		return false, nil
	}
	m.deadlines[key] = now.Add(ttl)
	return true, nil
}

// maybeSweep drops expired entries. Sweeping on every call would be wasted
// work, so it runs at most once per minute; individual lookups already treat
// expired entries as absent.
func (m *Memory) maybeSweep(now time.Time) {
	if now.Sub(m.lastSweep) < time.Minute {
		return
	}
	m.lastSweep = now

	for key, deadline := range m.deadlines {
		if !now.Before(deadline) {
			delete(m.deadlines, key)
		}
	}
}
