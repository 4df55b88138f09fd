package api

import (
	"sync"
	"time"
)

const (
	// DefaultChatRateLimit is the maximum number of assistant turns allowed
	// per conversation per minute when no explicit limit is configured.
	DefaultChatRateLimit = 30

	// defaultRateLimitWindow is the sliding window duration.
	defaultRateLimitWindow = time.Minute
)

// RateLimiter enforces a per-conversation sliding-window rate limit on the
// chat endpoint.
//
// Internally it holds the call timestamps for each key within the current
// window and prunes stale entries on every Allow call, keeping memory bounded
// to O(limit) entries per active conversation.
//
// RateLimiter is safe for concurrent use from multiple goroutines.
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	counters map[string][]time.Time // conversation key → call timestamps in window
}

// NewRateLimiter returns a RateLimiter that allows at most limit calls per
// key within window.
//
// If limit <= 0 it defaults to DefaultChatRateLimit.
// If window <= 0 it defaults to one minute.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = DefaultChatRateLimit
	}
	if window <= 0 {
		window = defaultRateLimitWindow
	}
	return &RateLimiter{
		limit:    limit,
		window:   window,
		counters: make(map[string][]time.Time),
	}
}

// Allow returns true when the key is permitted another call and records the
// current timestamp. Returns false when the key has exhausted its quota for
// the current window.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-r.window)

	// Prune timestamps that have fallen outside the window.
	existing := r.counters[key]
	valid := existing[:0] // reuse backing array
	for _, t := range existing {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= r.limit {
		r.counters[key] = valid
		return false
	}

	r.counters[key] = append(valid, now)
	return true
}

// Remaining returns the number of calls the key can still make within the
// current window. A return value of 0 means the next Allow call will return
// false.
func (r *RateLimiter) Remaining(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-r.window)
	count := 0
	for _, t := range r.counters[key] {
		if t.After(cutoff) {
			count++
		}
	}
	rem := r.limit - count
	if rem < 0 {
		return 0
	}
	return rem
}
