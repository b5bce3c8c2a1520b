// Package cache stores rendered diagram artifacts.
//
// Rendering through Graphviz is deterministic, so an artifact is fully
// identified by the engine that produced it, the output format and the DOT
// source. [ArtifactKey] hashes those into a key; a [Cache] maps keys to bytes.
//
// Three backends are provided:
//
//   - [NullCache]: stores nothing (the default)
//   - [FileCache]: JSON envelopes under a directory, for CLI use
//   - [RedisCache]: a shared Redis instance, for the preview server
//
// All backends honor a per-entry TTL; zero means no expiry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero keeps the entry until deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for rendered artifacts.
type Keyer struct {
	// Prefix namespaces all keys, e.g. "musicmap:" on a shared Redis.
	Prefix string
}

// ArtifactKey returns the key for an artifact rendered by engine in format
// from the given DOT source.
func (k Keyer) ArtifactKey(engine, format string, dot []byte) string {
	return k.Prefix + hashKey("artifact", engine, format, Hash(dot))
}

// ArtifactKey is [Keyer.ArtifactKey] without a prefix.
func ArtifactKey(engine, format string, dot []byte) string {
	return Keyer{}.ArtifactKey(engine, format, dot)
}
