// Package ratelimit provides a sliding-window rate limiter keyed by an
// arbitrary string (the login middleware keys by client IP). Both
// successful and failed attempts count against the limit.
package ratelimit

import (
	"context"
	"strconv"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Limiter answers whether one more attempt under key is allowed right now.
// The attempt is recorded regardless of the answer.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// ── Redis implementation ──

// RedisLimiter implements a sorted-set sliding window in Redis, so the
// count survives restarts and is shared if several processes ever run.
type RedisLimiter struct {
	rdb    *goredis.Client
	limit  int
	window time.Duration
}

// NewRedisLimiter builds a Redis-backed limiter.
func NewRedisLimiter(rdb *goredis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, limit: limit, window: window}
}

// Allow prunes entries older than the window, records this attempt and
// checks the count, all in one pipeline so concurrent requests from the
// same key cannot both slip under the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)
	member := strconv.FormatInt(now.UnixNano(), 10)

	pipe := l.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now.UnixNano()), Member: member})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() <= int64(l.limit), nil
}

// ── in-memory implementation ──

// MemoryLimiter keeps per-key attempt timestamps in process memory. Used
// when Redis is unavailable so the login endpoint stays protected instead
// of failing open. Increment and check happen under one lock.
type MemoryLimiter struct {
	mu        sync.Mutex
	attempts  map[string][]time.Time
	limit     int
	window    time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryLimiter builds an in-process limiter.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow records the attempt and reports whether it is within the limit.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-l.window)
	l.sweep(now, windowStart)

	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(windowStart) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	l.attempts[key] = kept

	return len(kept) <= l.limit, nil
}

// sweep drops keys whose whole window has elapsed, at most once per
// window, so the map does not grow without bound across distinct clients.
// Caller holds the lock.
func (l *MemoryLimiter) sweep(now, windowStart time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	for key, ts := range l.attempts {
		if len(ts) == 0 || !ts[len(ts)-1].After(windowStart) {
			delete(l.attempts, key)
		}
	}
	l.lastSweep = now
}
