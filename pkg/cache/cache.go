// Package cache provides the artifact cache for appbrief.
//
// Rendered PDF briefs are deterministic for a given content document and
// page geometry, so they are cached keyed by a content hash. The CLI uses a
// file-based cache under the XDG cache directory; tests and --no-cache runs
// use a null cache.
package cache

import (
	"context"
	"time"
)

// TTL values for cached entries.
const (
	// TTLArtifact is how long rendered PDF artifacts are kept.
	// Artifacts are content-addressed, so a long TTL is safe.
	TTLArtifact = 30 * 24 * time.Hour
)

// Cache is the interface for cache backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
