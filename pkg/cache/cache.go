// Package cache stores rendered output under content-derived keys.
//
// Frame export renders one document per frame, and most frames of a
// timeline repeat: the hold and pause stages produce the same picture for
// seconds at a time. Keys built with [Key] hash everything that affects the
// output, so equal keys mean byte-identical documents.
//
// Implementations:
//   - [MemoryCache]: process-local map, the default
//   - [FileCache]: one file per entry, shared between runs
//   - [NullCache]: stores nothing
//
// [NewScoped] prefixes keys and [NewInstrumented] reports hits and misses
// to the observability hooks.
package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored data and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources.
	Close() error
}

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache closed")
