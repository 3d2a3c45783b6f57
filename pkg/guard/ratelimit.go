package guard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxTrackedKeys = 1000
	limiterTTL     = 5 * time.Minute
)

// ErrRateLimited is returned by RateLimiter.Allow when the key is over budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiter is a per-key token bucket. Keys idle for longer than the TTL
// expire from an LRU so the set of tracked keys stays bounded.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
	disabled bool
}

// NewRateLimiter allows requestsPerMin per key. Zero disables limiting.
func NewRateLimiter(requestsPerMin int) *RateLimiter {
	return newRateLimiter(requestsPerMin, limiterTTL)
}

func newRateLimiter(requestsPerMin int, ttl time.Duration) *RateLimiter {
	burst := max(requestsPerMin/10, 1)
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedKeys, nil, ttl),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
		disabled: requestsPerMin <= 0,
	}
}

// Allow consumes one token for key.
func (rl *RateLimiter) Allow(key string) error {
	if rl.disabled {
		return nil
	}

	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	// Re-adding restarts the TTL, so a busy key never drops its bucket.
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
