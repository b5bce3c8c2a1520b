package diagram

import (
	"context"
	"time"

	"github.com/matzehuels/musicmap/pkg/cache"
	"github.com/matzehuels/musicmap/pkg/observability"
)

// Cached wraps an engine with an artifact cache. Cache failures are never
// fatal: a failed lookup renders, a failed write still returns the output.
type Cached struct {
	Engine Engine
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration

	// OnHit, if set, is called with the key of every artifact served from
	// the cache.
	OnHit func(key string)
}

// Name returns the wrapped engine's name.
func (c Cached) Name() string { return c.Engine.Name() }

// Render returns the cached artifact for (engine, format, dot) or renders
// and stores it.
func (c Cached) Render(ctx context.Context, dot []byte, format Format) ([]byte, error) {
	key := c.Keyer.ArtifactKey(c.Engine.Name(), string(format), dot)

	if data, ok, err := c.Cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, string(format))
		if c.OnHit != nil {
			c.OnHit(key)
		}
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, string(format))

	data, err := c.Engine.Render(ctx, dot, format)
	if err != nil {
		return nil, err
	}
	if err := c.Cache.Set(ctx, key, data, c.TTL); err == nil {
		observability.Cache().OnCacheSet(ctx, string(format), len(data))
	}
	return data, nil
}
