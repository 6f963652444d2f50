package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) *RedisCatalogCache {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis tests")
	}

	c, err := NewRedisCatalogCache(context.Background(), addr, ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisCatalogCache_SetGetDel(t *testing.T) {
	c := newRedisCache(t, time.Minute)
	ctx := context.Background()
	league := "test-" + t.Name()

	c.Set(ctx, league, sampleCatalog(league))

	got, ok := c.Get(ctx, league)
	require.True(t, ok)
	require.Equal(t, sampleCatalog(league), got)

	c.Del(ctx, league)

	_, ok = c.Get(ctx, league)
	require.False(t, ok)
}

func TestRedisCatalogCache_Expires(t *testing.T) {
	c := newRedisCache(t, time.Second)
	ctx := context.Background()
	league := "test-" + t.Name()

	c.Set(ctx, league, sampleCatalog(league))

	require.Eventually(t, func() bool {
		_, ok := c.Get(ctx, league)
		return !ok
	}, 5*time.Second, 100*time.Millisecond)
}

func TestNewRedisCatalogCache_Unreachable(t *testing.T) {
	_, err := NewRedisCatalogCache(context.Background(), "127.0.0.1:1", time.Minute)
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis ping 127.0.0.1:1 failed")
}
