// Package ratelimit implements the per-client sliding window that caps
// repeated login attempts. State is process-local: it does not survive
// restarts, and idle client buckets are never evicted. The limiter is
// consumed through ports.LoginLimiter so it can be swapped for a
// bounded external store without touching call sites.
package ratelimit

import (
	"sync"
	"time"
)

const (
	defaultWindow = 5 * time.Minute
	defaultLimit  = 5
)

// SlidingWindow tracks attempt timestamps per client identifier.
// The empty client identifier is a bucket like any other.
type SlidingWindow struct {
	window time.Duration
	limit  int
	now    func() time.Time

	mu       sync.Mutex
	attempts map[string][]time.Time
}

// New returns a SlidingWindow allowing up to limit attempts per window.
// Non-positive arguments fall back to 5 attempts per 5 minutes.
func New(window time.Duration, limit int) *SlidingWindow {
	if window <= 0 {
		window = defaultWindow
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return &SlidingWindow{
		window:   window,
		limit:    limit,
		now:      time.Now,
		attempts: make(map[string][]time.Time),
	}
}

// Allow checks and records one attempt for clientID. Stale timestamps
// are pruned lazily here, never by a background task. A timestamp whose
// age is strictly less than the window still counts; once the ceiling
// is reached the attempt is rejected without being recorded.
func (l *SlidingWindow) Allow(clientID string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.attempts[clientID][:0]
	for _, ts := range l.attempts[clientID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.limit {
		l.attempts[clientID] = recent
		return false
	}

	l.attempts[clientID] = append(recent, now)
	return true
}

// Reset clears all buckets. Intended for tests.
func (l *SlidingWindow) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = make(map[string][]time.Time)
}
