// Package cache keeps short-lived JSON copies of upstream lookups in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// JSONCache stores values under fmt.Sprintf(keyFormat, id)
type JSONCache struct {
	client    *redis.Client
	keyFormat string
	ttl       time.Duration
}

// NewJSONCache creates a cache; keyFormat must contain one %s verb
func NewJSONCache(client *redis.Client, keyFormat string, ttl time.Duration) *JSONCache {
	return &JSONCache{client: client, keyFormat: keyFormat, ttl: ttl}
}

func (c *JSONCache) key(id string) string {
	return fmt.Sprintf(c.keyFormat, id)
}

// Get decodes the cached value for id into dest and reports whether it was present
func (c *JSONCache) Get(ctx context.Context, id string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached value: %w", err)
	}
	return true, nil
}

// Set caches value for id
func (c *JSONCache) Set(ctx context.Context, id string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache value: %w", err)
	}
	if err := c.client.Set(ctx, c.key(id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached value for id
func (c *JSONCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
