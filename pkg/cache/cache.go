// Package cache provides the key-value caches that back analysis results.
//
// All backends implement [Cache]. [FileCache] is the default for the CLI,
// [RedisCache] and [MongoCache] share results between processes, and
// [NullCache] disables caching. Keys are built by a [Keyer] so that every
// caller derives the same key for the same request.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cached entries.
const (
	// TTLAnalysis is the lifetime of a cached permutation analysis.
	TTLAnalysis = 7 * 24 * time.Hour

	// TTLClasses is the lifetime of a cached conjugacy class listing.
	TTLClasses = 30 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
//
// Get reports a miss with hit == false and a nil error; errors are reserved
// for backend failures. A ttl <= 0 passed to Set stores the entry without
// expiry. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
