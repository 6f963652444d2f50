package cache

import (
	"context"
	"fmt"
	"slices"
	"time"

	"poeconv/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoCatalogCache memoizes catalogs in process, one entry per league.
type RistrettoCatalogCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewCatalogCache(maxItems int64, ttl time.Duration) (*RistrettoCatalogCache, error) {
	if maxItems <= 0 {
		maxItems = 16
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create catalog cache failed: %w", err)
	}
	return &RistrettoCatalogCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoCatalogCache) Get(_ context.Context, league string) (domain.Catalog, bool) {
	v, ok := c.cache.Get(toKey(league))
	if !ok {
		return domain.Catalog{}, false
	}
	catalog, ok := v.(domain.Catalog)
	if !ok {
		return domain.Catalog{}, false
	}
	catalog.Items = slices.Clone(catalog.Items)
	return catalog, true
}

func (c *RistrettoCatalogCache) Set(_ context.Context, league string, catalog domain.Catalog) {
	catalog.Items = slices.Clone(catalog.Items)
	if c.ttl > 0 {
		c.cache.SetWithTTL(toKey(league), catalog, 1, c.ttl)
	} else {
		c.cache.Set(toKey(league), catalog, 1)
	}
	// Make the entry visible to the next Get; catalogs are written rarely.
	c.cache.Wait()
}

func (c *RistrettoCatalogCache) Del(_ context.Context, league string) {
	c.cache.Del(toKey(league))
}

func (c *RistrettoCatalogCache) Close() { c.cache.Close() }

func toKey(league string) string { return "catalog:" + league }
