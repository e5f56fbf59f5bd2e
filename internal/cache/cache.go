// Package cache is a thin namespaced wrapper around redis used by the
// agent tools and by the entity services for write-through invalidation.
// Keys follow the "perikanan:{entity}:..." convention; invalidation is by
// prefix on write, never TTL alone.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Namespace is the key prefix owned by this application. Flush only ever
// touches keys under it.
const Namespace = "perikanan:"

const scanBatchSize = 100

// Cache wraps a redis client with the operations the tool surface and the
// invalidation contract need.
type Cache struct {
	rdb *redis.Client
	log *slog.Logger
}

// New creates a Cache. log may be nil.
func New(rdb *redis.Client, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	return &Cache{rdb: rdb, log: log}
}

// Get returns the value for key. The second return is false on a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key with the given TTL. A zero TTL means no
// expiry; the invalidation contract, not the TTL, is what keeps entries
// from going stale.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes the given keys and reports how many existed.
func (c *Cache) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	return c.rdb.Del(ctx, keys...).Result()
}

// Keys returns all keys matching the glob pattern, collected with SCAN so
// large keyspaces do not block the server.
func (c *Cache) Keys(ctx context.Context, pattern string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Flush removes every key under the application namespace. It deliberately
// does not FLUSHDB: the redis instance may be shared.
func (c *Cache) Flush(ctx context.Context) (int64, error) {
	keys, err := c.Keys(ctx, Namespace+"*")
	if err != nil {
		return 0, err
	}
	return c.Delete(ctx, keys...)
}

// InvalidatePrefix removes every key under prefix. It is best-effort: a
// failed invalidation is logged, not surfaced, because the write that
// triggered it has already succeeded.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	keys, err := c.Keys(ctx, prefix+"*")
	if err == nil && len(keys) > 0 {
		_, err = c.Delete(ctx, keys...)
	}
	if err != nil {
		c.log.Warn("cache invalidation failed",
			slog.String("prefix", prefix), slog.Any("error", err))
	}
}
