package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// JSONCache is a get/set/delete cache with per-entry TTL, storing values
// as JSON. Used cache-aside by the post service.
type JSONCache struct {
	client *redis.Client
}

// NewJSONCache creates a JSONCache wrapping the given Redis client.
func NewJSONCache(client *redis.Client) *JSONCache {
	return &JSONCache{client: client}
}

// GetJSON loads key into dest. A missing key is (false, nil); a backend
// or decode failure is an error the caller treats as a miss.
func (c *JSONCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// SetJSON stores value under key, expiring after ttl.
func (c *JSONCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *JSONCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
