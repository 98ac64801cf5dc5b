// Package cache stores generated tiles and their encoded artifacts.
//
// # Backends
//
//   - [FileCache]: JSON entries under a local directory, for CLI use
//   - [RedisCache]: shared cache for multi-instance servers
//   - [MongoCache]: documents with a TTL index, for deployments already on MongoDB
//   - [NullCache]: stores nothing; the default when caching is disabled
//
// # Keys
//
// Only seeded generations are cacheable, since an unseeded tile is different
// on every call. A [Keyer] derives keys from everything that affects the
// output, so changing any option yields a new key:
//
//	k := cache.NewDefaultKeyer()
//	key := k.PatternKey(cache.PatternKeyOpts{Seed: "alice", Size: 8, Symmetry: "VERTICAL"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default time-to-live values.
const (
	TTLPattern  = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
