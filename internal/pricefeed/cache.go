package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rentvest/internal/domain"
)

const (
	cacheKeyPrefix = "ticker:"
	cacheTTL       = time.Minute
)

// RedisClient is the part of *redis.Client the cache mirrors tickers through.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

type Cache struct {
	mu      sync.RWMutex
	tickers map[string]domain.Ticker
	redis   RedisClient
}

// NewCache keeps tickers in memory. A non-nil rdb additionally mirrors every
// update so other instances can serve them.
func NewCache(rdb RedisClient) *Cache {
	return &Cache{
		tickers: make(map[string]domain.Ticker),
		redis:   rdb,
	}
}

func (c *Cache) Put(ctx context.Context, ticker domain.Ticker) {
	c.mu.Lock()
	if cur, ok := c.tickers[ticker.Symbol]; ok && cur.UpdatedAt.After(ticker.UpdatedAt) {
		c.mu.Unlock()
		return
	}
	c.tickers[ticker.Symbol] = ticker
	c.mu.Unlock()

	if c.redis == nil {
		return
	}
	data, err := json.Marshal(ticker)
	if err != nil {
		zap.L().Error("Failed to encode ticker", zap.String("symbol", ticker.Symbol), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, cacheKeyPrefix+ticker.Symbol, data, cacheTTL).Err(); err != nil {
		zap.L().Warn("Failed to mirror ticker to redis", zap.String("symbol", ticker.Symbol), zap.Error(err))
	}
}

func (c *Cache) Get(ctx context.Context, symbol string) (domain.Ticker, bool) {
	c.mu.RLock()
	ticker, ok := c.tickers[symbol]
	c.mu.RUnlock()
	if ok || c.redis == nil {
		return ticker, ok
	}

	data, err := c.redis.Get(ctx, cacheKeyPrefix+symbol).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("Failed to read ticker from redis", zap.String("symbol", symbol), zap.Error(err))
		}
		return domain.Ticker{}, false
	}
	if err := json.Unmarshal(data, &ticker); err != nil {
		zap.L().Error("Failed to decode ticker", zap.String("symbol", symbol), zap.Error(err))
		return domain.Ticker{}, false
	}
	return ticker, true
}

// List returns the cached tickers in the order of symbols, skipping unknown ones.
func (c *Cache) List(ctx context.Context, symbols []string) []domain.Ticker {
	tickers := make([]domain.Ticker, 0, len(symbols))
	for _, symbol := range symbols {
		if ticker, ok := c.Get(ctx, symbol); ok {
			tickers = append(tickers, ticker)
		}
	}
	return tickers
}
