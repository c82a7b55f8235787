package cache

import (
	"context"
	"time"

	"github.com/matzehuels/bloom/pkg/observability"
)

// Instrumented reports hits, misses and writes of an inner cache to
// observability.Cache(), labelled with the key's kind.
type Instrumented struct {
	inner Cache
}

// NewInstrumented wraps inner.
func NewInstrumented(inner Cache) *Instrumented {
	return &Instrumented{inner: inner}
}

func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, KindOf(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, KindOf(key))
		}
	}
	return data, ok, err
}

func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, KindOf(key), len(data))
	return nil
}

func (c *Instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *Instrumented) Close() error { return c.inner.Close() }

var _ Cache = (*Instrumented)(nil)
