package cache

import (
	"context"
	"time"

	"github.com/de-tools/ga-insights/pkg/models/domain"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL matches the one-hour memoization window of the dashboard's
// report queries.
const DefaultTTL = time.Hour

type Settings struct {
	TTL time.Duration
}

// ResultCache memoizes normalized tables per report key for a bounded time
// window. Entries expire TTL after creation (hits do not extend them), and
// concurrent misses for the same key are coalesced into a single compute so
// at most one backend call per key is outstanding at a time.
type ResultCache struct {
	items *ttlcache.Cache[string, domain.NormalizedTable]
	group singleflight.Group
}

func New(settings Settings) *ResultCache {
	ttl := settings.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &ResultCache{
		items: ttlcache.New(
			ttlcache.WithTTL[string, domain.NormalizedTable](ttl),
			ttlcache.WithDisableTouchOnHit[string, domain.NormalizedTable](),
		),
	}
}

// GetOrCompute returns the cached table for key if it is still fresh,
// otherwise runs compute exactly once, stores the result and returns it.
// A compute failure propagates to every coalesced caller and leaves the
// cache untouched; there is no stale fallback.
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	key string,
	compute func(ctx context.Context) (domain.NormalizedTable, error),
) (domain.NormalizedTable, error) {
	if item := c.items.Get(key); item != nil {
		return item.Value(), nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under singleflight: a coalesced caller may have stored
		// the result while we waited for the flight slot.
		if item := c.items.Get(key); item != nil {
			return item.Value(), nil
		}

		table, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		c.items.Set(key, table, ttlcache.DefaultTTL)
		return table, nil
	})
	if err != nil {
		return domain.NormalizedTable{}, err
	}

	return v.(domain.NormalizedTable), nil
}
