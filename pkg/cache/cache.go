// Package cache provides the response and artifact caches.
//
// Three backends share one byte-oriented interface: a file cache under
// ~/.cache/feedcard for CLI runs, a redis cache for serve mode, and a null
// cache for tests and --no-cache. Keys are SHA-256 hashed before storage, so
// arbitrary URLs are safe as keys on every backend.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
