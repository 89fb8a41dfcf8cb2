// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ContextSource builds the aggregate market context string. Following Go
// convention: interfaces are defined by the consumer (this decorator), not
// the provider (the marketcontext usecase).
type ContextSource interface {
	BuildContext(ctx context.Context) (string, error)
}

// CachingContextSource decorates a ContextSource with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying builder. Every quote the builder needs is a
// provider round trip, so the built string is reused for a short TTL.
type CachingContextSource struct {
	inner ContextSource
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// NewCachingContextSource decorates a ContextSource with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If key is empty, it uses
// "marketcontext".
func NewCachingContextSource(rdb *redis.Client, ttl time.Duration, inner ContextSource, key string) *CachingContextSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if key == "" {
		key = "marketcontext"
	}
	return &CachingContextSource{inner: inner, rdb: rdb, ttl: ttl, key: key}
}

// MarketContext returns the cached context string, rebuilding it on a miss.
func (c *CachingContextSource) MarketContext(ctx context.Context) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.BuildContext(ctx)
	}

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, c.key).Result(); err == nil && s != "" {
		return s, nil
	}

	// 2) Rebuild from the provider
	s, err := c.inner.BuildContext(ctx)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	if err := c.rdb.Set(ctx, c.key, s, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache market context", "error", err)
	}

	return s, nil
}
