package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
)

// Client wraps the Redis connection used for login rate limiting and the
// access-token denylist.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and runs a ping health check.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// Raw exposes the underlying client for components that need pipelines,
// e.g. the rate limiter.
func (c *Client) Raw() *goredis.Client { return c.rdb }

// ── token denylist ──
//
// Stateless JWTs cannot be revoked before expiry on their own. Denylisting
// the token ID until its natural expiry closes that gap for deactivation
// and explicit logout.

const denylistPrefix = "token:denylist:"

// DenyToken records a JWT ID until its remaining TTL elapses.
func (c *Client) DenyToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to deny
	}
	return c.rdb.Set(ctx, denylistPrefix+jti, "1", ttl).Err()
}

// IsDenied checks whether a JWT ID has been denylisted.
func (c *Client) IsDenied(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, denylistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
