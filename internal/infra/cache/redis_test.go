package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedis(client, "test:")
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedis_GetSetExpiry(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	_, ok, err := r.Get(ctx, "reports-trade:~")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "reports-trade:~", []byte(`[]`), DefaultTTL))
	assert.True(t, mr.Exists("test:reports-trade:~"))
	assert.Equal(t, DefaultTTL, mr.TTL("test:reports-trade:~"))

	val, ok, err := r.Get(ctx, "reports-trade:~")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(val))

	mr.FastForward(61 * time.Second)
	_, ok, err = r.Get(ctx, "reports-trade:~")
	require.NoError(t, err)
	assert.False(t, ok)

	stats := r.Stats()
	assert.Equal(t, "redis", stats.Driver)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
}

func TestRedis_BackendDown(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	require.NoError(t, r.Ping(ctx))
	mr.Close()

	_, ok, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, r.Set(ctx, "k", []byte("v"), DefaultTTL))
	assert.Error(t, r.Ping(ctx))
}
