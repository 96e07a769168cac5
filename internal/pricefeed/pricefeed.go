package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/rentvest/internal/config"
	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/pkg/clients"
	"github.com/GlebRadaev/rentvest/pkg/metrics"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	tickerPath    = "/api/v3/ticker/24hr?symbol="
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

type tickerResponse struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
}

type Service struct {
	url            string
	streamURL      string
	symbols        []string
	client         clients.HTTPClientI
	cache          *Cache
	workerPool     WorkerPoolI
	dialer         *websocket.Dialer
	updateInterval time.Duration
	reconnectDelay time.Duration
	now            func() time.Time

	inFlight sync.Map
}

func New(cfg *config.Config, client clients.HTTPClientI, cache *Cache) *Service {
	return &Service{
		url:            cfg.PriceFeedAddress,
		streamURL:      cfg.PriceStreamAddress,
		symbols:        cfg.PriceSymbols,
		client:         client,
		cache:          cache,
		workerPool:     NewWorkerPool(4),
		dialer:         websocket.DefaultDialer,
		updateInterval: time.Second * 30,
		reconnectDelay: time.Second * 5,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Price feed started", zap.Strings("symbols", s.symbols))
	go s.run(ctx)
	if s.streamURL != "" {
		go s.stream(ctx)
	}
}

// Tickers returns the latest known ticker for every configured symbol.
func (s *Service) Tickers(ctx context.Context) []domain.Ticker {
	return s.cache.List(ctx, s.symbols)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	s.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping price feed")
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Service) poll(ctx context.Context) {
	var g errgroup.Group
	for _, symbol := range s.symbols {
		symbol := symbol

		if _, loaded := s.inFlight.LoadOrStore(symbol, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(symbol)
				err := s.handleSymbol(ctx, symbol)
				if err != nil {
					metrics.PriceFeedErrors.WithLabelValues("rest").Inc()
				}
				return err
			})
			if err != nil {
				s.inFlight.Delete(symbol)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error polling tickers", zap.Error(err))
	}
}

func (s *Service) handleSymbol(ctx context.Context, symbol string) error {
	url := s.url + tickerPath + symbol

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Get(url, nil)
		if err != nil {
			if attempt < maxRetries {
				if err := sleep(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("failed to fetch ticker %s after %d retries: %w", symbol, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return s.processTicker(ctx, symbol, respBody)
		case http.StatusTooManyRequests:
			if attempt == maxRetries {
				return fmt.Errorf("ticker %s still rate limited after %d retries", symbol, maxRetries)
			}
			if err := sleep(ctx, s.retryAfter(symbol, respHeaders, attempt)); err != nil {
				return err
			}
		default:
			zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("symbol", symbol))
			return fmt.Errorf("%w %d for %s", ErrUnexpectedStatus, statusCode, symbol)
		}
	}
	return nil
}

func (s *Service) processTicker(ctx context.Context, symbol string, respBody []byte) error {
	var response tickerResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Symbol != symbol {
		return fmt.Errorf("symbol mismatch: expected %s, got %s", symbol, response.Symbol)
	}
	if _, err := decimal.NewFromString(response.LastPrice); err != nil {
		return fmt.Errorf("invalid last price %q for %s: %w", response.LastPrice, symbol, err)
	}

	s.cache.Put(ctx, domain.Ticker{
		Symbol:    response.Symbol,
		LastPrice: response.LastPrice,
		ChangePct: response.PriceChangePercent,
		HighPrice: response.HighPrice,
		LowPrice:  response.LowPrice,
		Volume:    response.Volume,
		UpdatedAt: s.now(),
	})
	return nil
}

func (s *Service) retryAfter(symbol string, respHeaders http.Header, attempt int) time.Duration {
	retryAfter := retryInterval * time.Duration(attempt)

	if header := respHeaders.Get("Retry-After"); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("symbol", symbol),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	return retryAfter
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
