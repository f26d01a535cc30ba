package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a Redis-backed fixed-window rate limiter.
// Each key gets a counter that expires after the window elapses; a hit
// beyond the limit within the window is rejected.
type RateLimiter struct {
	client redis.UniversalClient
	prefix string
	window time.Duration
}

// NewRateLimiter creates a rate limiter with the given window.
func NewRateLimiter(client redis.UniversalClient, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		client: client,
		prefix: "ratelimit:",
		window: window,
	}
}

// Allow records a hit for key and reports whether it is within limit for the
// current window. A non-positive limit disables limiting for the call.
func (l *RateLimiter) Allow(ctx context.Context, key string, limit int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	k := l.prefix + key
	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("incr rate limit key: %w", err)
	}

	// First hit in the window creates the counter; start its expiry clock.
	if count == 1 {
		if expErr := l.client.Expire(ctx, k, l.window).Err(); expErr != nil {
			return false, fmt.Errorf("expire rate limit key: %w", expErr)
		}
	}

	return count <= int64(limit), nil
}

// Reset clears the counter for key, ending its current window early.
func (l *RateLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
