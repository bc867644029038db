package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter backed by redis. When redis is
// unavailable it fails open: the public endpoints keep working.
type Limiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

func NewLimiter(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: int64(limit), window: window}
}

// Allow increments the counter for key and reports whether the caller
// is still under the limit for the current window.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return true
	}

	// Set expiration on first increment
	if count == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}

	return count <= l.limit
}

// FormatKey builds a rate-limit key for an endpoint and client address.
func FormatKey(endpoint, addr string) string {
	return fmt.Sprintf("ratelimit:%s:%s", endpoint, addr)
}
