// Package cache stores rendered artifacts by content key.
//
// Rendering a search tree through Graphviz is far slower than producing
// its DOT source, so callers key the output by a hash of the input and
// reuse it while the input is unchanged.
//
//	key := cache.Key("tree.svg", dot)
//	if svg, ok, _ := c.Get(ctx, key); ok {
//		return svg
//	}
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. Implementations are safe
// for concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
