package cache

import (
	"context"
	"time"
)

// Cache stores opaque values under string keys for a bounded time.
type Cache interface {
	// Get returns the value stored under key, or nil and no error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A ttl of zero keeps the value until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
