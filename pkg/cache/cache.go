// Package cache stores rendered diagrams so that re-rendering an unchanged
// graph skips Graphviz layout and SVG conversion.
//
// Entries are keyed by a hash of the DOT source and the render options, so
// a key never needs invalidating: a changed graph hashes differently.
// Entries still carry an expiry to keep the cache directory from growing
// without bound.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// DefaultTTL is how long rendered diagrams are kept.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with expiring entries.
type Cache interface {
	// Get returns the stored data and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data for ttl. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes an entry. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}

// RenderKey returns the key for a diagram rendered from dot. The options
// are hashed together with the source, separated by NUL bytes.
func RenderKey(dot []byte, format string, scale float64) string {
	h := sha256.New()
	h.Write(dot)
	h.Write([]byte{0})
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(scale, 'g', -1, 64)))
	return "render:" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache never stores anything. It is used when caching is disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
