package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SettledCache remembers deposit references that have already reached a
// terminal status. Webhook ingestion consults it to skip redelivered events
// without opening a database transaction. The transaction row remains the
// source of truth; a cache miss just falls through to the locked lookup.
type SettledCache struct {
	client *goredis.Client
	prefix string
}

// NewSettledCache creates a new Redis-backed settled-reference cache.
func NewSettledCache(client *goredis.Client) *SettledCache {
	return &SettledCache{
		client: client,
		prefix: "settled:",
	}
}

// IsSettled reports whether a reference is known to be settled.
// Returns false, nil on a cache miss.
func (c *SettledCache) IsSettled(ctx context.Context, reference string) (bool, error) {
	_, err := c.client.Get(ctx, c.prefix+reference).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis settled get: %w", err)
	}
	return true, nil
}

// MarkSettled records a reference as settled with a TTL.
func (c *SettledCache) MarkSettled(ctx context.Context, reference string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+reference, 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis settled set: %w", err)
	}
	return nil
}
