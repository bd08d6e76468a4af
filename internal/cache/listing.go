package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "listing:"

// Key names a cached projection. Variants of the same listing path share its prefix,
// so invalidating the path clears them all.
func Key(path string, variant ...string) string {
	key := keyPrefix + path
	for _, v := range variant {
		key += ":" + v
	}
	return key
}

// IListingCache is the read-through cache for listing projections.
type IListingCache interface {
	Get(ctx context.Context, key string, out any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, path string) error
}

type listingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) IListingCache {
	return &listingCache{rdb: rdb, ttl: ttl}
}

// Get decodes the cached value into out. A miss returns false with no error.
func (c *listingCache) Get(ctx context.Context, key string, out any) (bool, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

func (c *listingCache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Invalidate drops every cached projection under path.
func (c *listingCache) Invalidate(ctx context.Context, path string) error {
	keys := []string{Key(path)}
	iter := c.rdb.Scan(ctx, 0, Key(path)+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys for %s: %w", path, err)
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", path, err)
	}
	return nil
}
