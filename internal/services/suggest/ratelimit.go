package suggest

import (
	"sync"
	"time"
)

// RateLimiter enforces a per-client sliding window: at most maxRequests
// acceptances per window per key. State is process-wide and never
// persisted; a restart resets every window.
type RateLimiter struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	hits        map[string][]time.Time
	now         func() time.Time
}

func NewRateLimiter(window time.Duration, maxRequests int) *RateLimiter {
	return &RateLimiter{
		window:      window,
		maxRequests: maxRequests,
		hits:        make(map[string][]time.Time),
		now:         time.Now,
	}
}

// Allow records an attempt for the key and reports whether it fits inside
// the window. Expired timestamps are pruned lazily on each call.
func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	cutoff := now.Add(-r.window)

	recent := r.hits[key][:0]
	for _, t := range r.hits[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= r.maxRequests {
		r.hits[key] = recent
		return false
	}

	r.hits[key] = append(recent, now)
	return true
}

// Sweep drops keys whose every timestamp has expired, so idle clients do
// not accumulate forever. Called periodically by the scheduler.
func (r *RateLimiter) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.window)
	removed := 0
	for key, times := range r.hits {
		live := false
		for _, t := range times {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(r.hits, key)
			removed++
		}
	}
	return removed
}
