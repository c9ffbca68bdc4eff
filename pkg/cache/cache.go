// Package cache provides caching for rendered block artifacts.
//
// Layout and outline computation is deterministic, so a rendered artifact is
// fully identified by the hash of its block definition plus the render
// options. Backends:
//   - FileCache: on-disk cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disabled caching
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// A miss is reported through the bool, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
