package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/rentvest/internal/domain"
)

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.values[key] = string(value.([]byte))
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	v, ok := f.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func TestCache_MemoryOnly(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(nil)

	_, ok := cache.Get(ctx, "BTCUSDT")
	assert.False(t, ok)

	cache.Put(ctx, domain.Ticker{Symbol: "BTCUSDT", LastPrice: "1", UpdatedAt: fixedNow})
	cache.Put(ctx, domain.Ticker{Symbol: "ETHUSDT", LastPrice: "2", UpdatedAt: fixedNow})

	got := cache.List(ctx, []string{"ETHUSDT", "TRXUSDT", "BTCUSDT"})
	require.Len(t, got, 2)
	assert.Equal(t, "ETHUSDT", got[0].Symbol)
	assert.Equal(t, "BTCUSDT", got[1].Symbol)
}

func TestCache_KeepsNewest(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(nil)

	cache.Put(ctx, domain.Ticker{Symbol: "BTCUSDT", LastPrice: "2", UpdatedAt: fixedNow})
	cache.Put(ctx, domain.Ticker{Symbol: "BTCUSDT", LastPrice: "1", UpdatedAt: fixedNow.Add(-time.Second)})

	got, ok := cache.Get(ctx, "BTCUSDT")
	require.True(t, ok)
	assert.Equal(t, "2", got.LastPrice)
}

func TestCache_MirrorsToRedis(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	cache := NewCache(rdb)

	ticker := domain.Ticker{Symbol: "BTCUSDT", LastPrice: "64000.10", UpdatedAt: fixedNow}
	cache.Put(ctx, ticker)

	require.Contains(t, rdb.values, "ticker:BTCUSDT")
	assert.Equal(t, cacheTTL, rdb.ttls["ticker:BTCUSDT"])

	var stored domain.Ticker
	require.NoError(t, json.Unmarshal([]byte(rdb.values["ticker:BTCUSDT"]), &stored))
	assert.Equal(t, ticker, stored)
}

func TestCache_ReadsThroughRedis(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	rdb.values["ticker:ETHUSDT"] = `{"symbol":"ETHUSDT","last_price":"3100.00","updated_at":"2024-03-01T12:00:00Z"}`
	rdb.values["ticker:BNBUSDT"] = `not json`
	cache := NewCache(rdb)

	got, ok := cache.Get(ctx, "ETHUSDT")
	require.True(t, ok)
	assert.Equal(t, "3100.00", got.LastPrice)
	assert.True(t, fixedNow.Equal(got.UpdatedAt))

	_, ok = cache.Get(ctx, "BNBUSDT")
	assert.False(t, ok)

	_, ok = cache.Get(ctx, "TRXUSDT")
	assert.False(t, ok)
}

func TestCache_RedisDown(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	rdb.err = errors.New("connection refused")
	cache := NewCache(rdb)

	cache.Put(ctx, domain.Ticker{Symbol: "BTCUSDT", LastPrice: "1", UpdatedAt: fixedNow})

	got, ok := cache.Get(ctx, "BTCUSDT")
	require.True(t, ok)
	assert.Equal(t, "1", got.LastPrice)

	_, ok = cache.Get(ctx, "ETHUSDT")
	assert.False(t, ok)
}
