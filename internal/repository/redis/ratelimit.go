package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitPrefix namespaces per-client counters in the shared redis
const rateLimitPrefix = "ratelimit:"

// RateLimiter enforces a fixed one-minute window per client IP on the
// avatar API. Each request increments the client's counter for the
// current window; once the counter passes the per-minute budget plus the
// burst allowance the client is refused until the window rolls over.
// Generation requests are expensive upstream, so the budget is kept low
// and the burst absorbs normal gallery browsing.
type RateLimiter struct {
	client            *Client
	requestsPerMinute int
	burst             int
}

// NewRateLimiter creates a limiter with the given per-minute budget and
// burst headroom
func NewRateLimiter(client *Client, requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		client:            client,
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
	}
}

// Allow records one request for the client and reports whether it fits the
// current window, how much budget remains, and when the window resets.
func (r *RateLimiter) Allow(ctx context.Context, clientKey string) (bool, int, time.Time, error) {
	key := rateLimitPrefix + clientKey

	pipe := r.client.rdb.Pipeline()
	incr := pipe.Incr(ctx, key)
	// The first hit in a window creates the key; ExpireNX pins its
	// lifetime without refreshing the TTL on later hits
	pipe.ExpireNX(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to count request: %w", err)
	}

	allowed, remaining := r.verdict(incr.Val())
	resetAt := time.Now().Truncate(time.Minute).Add(time.Minute)
	return allowed, remaining, resetAt, nil
}

// verdict compares a window counter against the budget, clamping the
// remaining allowance at zero for the response headers
func (r *RateLimiter) verdict(count int64) (bool, int) {
	budget := int64(r.requestsPerMinute + r.burst)
	remaining := budget - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= budget, int(remaining)
}
