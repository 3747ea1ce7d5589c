// Package redis defines the cache abstraction used by the services.
// Services depend on CacheService, not on the Redis client.
package redis

import (
	"context"
	"time"
)

// CacheService key/value cache
type CacheService interface {
	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns "" and nil when the key does not exist
	Get(ctx context.Context, key string) (string, error)
	// Delete removes key, missing keys are not an error
	Delete(ctx context.Context, key string) error
}
