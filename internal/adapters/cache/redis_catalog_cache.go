package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"poeconv/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisCatalogCache shares memoized catalogs between replicas. Entries are JSON documents.
// Redis errors are logged and treated as misses so the catalog service falls through to upstream.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogCache(ctx context.Context, addr string, ttl time.Duration) (*RedisCatalogCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s failed: %w", addr, err)
	}
	return &RedisCatalogCache{client: client, ttl: ttl}, nil
}

func (c *RedisCatalogCache) Get(ctx context.Context, league string) (domain.Catalog, bool) {
	val, err := c.client.Get(ctx, toKey(league)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("league", league).Warn("Catalog cache get failed")
		}
		return domain.Catalog{}, false
	}

	var catalog domain.Catalog
	if err = json.Unmarshal(val, &catalog); err != nil {
		logrus.WithError(err).WithField("league", league).Warn("Catalog cache entry is corrupt")
		return domain.Catalog{}, false
	}
	return catalog, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, league string, catalog domain.Catalog) {
	data, err := json.Marshal(catalog)
	if err != nil {
		logrus.WithError(err).WithField("league", league).Warn("Catalog cache encode failed")
		return
	}
	if err = c.client.Set(ctx, toKey(league), data, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("league", league).Warn("Catalog cache set failed")
	}
}

func (c *RedisCatalogCache) Del(ctx context.Context, league string) {
	if err := c.client.Del(ctx, toKey(league)).Err(); err != nil {
		logrus.WithError(err).WithField("league", league).Warn("Catalog cache delete failed")
	}
}

func (c *RedisCatalogCache) Close() error { return c.client.Close() }
