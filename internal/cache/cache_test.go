package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Minute))

	got, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, c.Delete(ctx, "k1"))
	_, err = c.Get(ctx, "k1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	require.NoError(t, c.Set(ctx, "short", []byte("x"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(DefaultCacheConfig())
	defer c.Close()

	require.NoError(t, c.Set(ctx, "comments:p1", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "comments:p2", []byte("b"), time.Minute))
	require.NoError(t, c.Set(ctx, "posts:p1", []byte("c"), time.Minute))

	require.NoError(t, c.DeletePattern(ctx, "comments:*"))

	_, err := c.Get(ctx, "comments:p1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	_, err = c.Get(ctx, "comments:p2")
	assert.ErrorIs(t, err, ErrCacheMiss)

	got, err := c.Get(ctx, "posts:p1")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got)
}

func TestGenericCacheService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultCacheConfig()
	svc := NewGenericCacheService(NewMemoryCache(cfg), cfg)
	defer svc.Close()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, svc.CacheData(ctx, "list:all", &payload{Name: "n", Count: 3}))

	var got payload
	require.NoError(t, svc.GetCached(ctx, "list:all", &got))
	assert.Equal(t, "n", got.Name)
	assert.Equal(t, 3, got.Count)

	require.NoError(t, svc.InvalidateKey(ctx, "list:all"))
	assert.ErrorIs(t, svc.GetCached(ctx, "list:all", &got), ErrCacheMiss)
}

func TestGenericCacheService_Disabled(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultCacheConfig()
	cfg.Enabled = false
	svc := NewGenericCacheService(NewMemoryCache(cfg), cfg)

	assert.False(t, svc.IsEnabled())
	assert.ErrorIs(t, svc.CacheData(ctx, "k", "v"), ErrCacheDisabled)
	assert.ErrorIs(t, svc.GetCached(ctx, "k", new(string)), ErrCacheDisabled)
	assert.NoError(t, svc.InvalidateKey(ctx, "k"))
}

func TestNewCache_Factory(t *testing.T) {
	cfg := DefaultCacheConfig()
	cfg.Backend = BackendMemory

	c, err := NewCache(cfg)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NoError(t, c.Close())

	cfg.Backend = "bogus"
	_, err = NewCache(cfg)
	assert.Error(t, err)
}
