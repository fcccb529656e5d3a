package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestRedisCacheCounter(t *testing.T) {
	cache, _ := newTestRedisCache(t)
	ctx := context.Background()

	n, err := cache.Counter(ctx, "tool_views:timeline")
	require.NoError(t, err, "a missing key reads as zero")
	assert.Zero(t, n)

	n, err = cache.Increment(ctx, "tool_views:timeline")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = cache.Counter(ctx, "tool_views:timeline")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedisCacheCounterNonNumeric(t *testing.T) {
	cache, mr := newTestRedisCache(t)
	require.NoError(t, mr.Set("tool_views:chat", "lots"))

	_, err := cache.Counter(context.Background(), "tool_views:chat")
	assert.Error(t, err)
}

func TestViewCounterOnRedis(t *testing.T) {
	cache, mr := newTestRedisCache(t)
	views := NewViewCounter(cache)
	ctx := context.Background()

	require.NoError(t, views.Record(ctx, "visual"))
	require.NoError(t, views.Record(ctx, "visual"))

	n, err := views.Views(ctx, "visual")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := mr.Get("tool_views:visual")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestNewRedisCacheRejectsBadURL(t *testing.T) {
	_, err := NewRedisCache("not-a-redis-url")
	assert.Error(t, err)
}
