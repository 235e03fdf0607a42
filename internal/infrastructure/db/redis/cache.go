package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/solestore/storefront-api/internal/core/ports"
)

// Cache is a JSON value cache backed by Redis. Used for the dashboard
// stats and analytics payloads.
type Cache struct {
	client *redis.Client
}

// NewCache creates a Cache wrapping the given Redis client.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get unmarshals the cached value at key into v. An absent key is
// reported as ports.ErrCacheMiss; anything else is a real failure.
func (c *Cache) Get(ctx context.Context, key string, v any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.ErrCacheMiss
		}
		return fmt.Errorf("cache get: %w", err)
	}
	return json.Unmarshal(data, v)
}

// Set stores v at key as JSON, expiring after ttl.
func (c *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}
