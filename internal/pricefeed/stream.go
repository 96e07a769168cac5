package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/rentvest/internal/domain"
	"github.com/GlebRadaev/rentvest/pkg/metrics"
)

const (
	streamPath = "/ws/!miniTicker@arr"
	readWait   = 60 * time.Second
)

// miniTicker is one entry of the exchange's all-market mini ticker stream.
type miniTicker struct {
	Symbol string `json:"s"`
	Close  string `json:"c"`
	Open   string `json:"o"`
	High   string `json:"h"`
	Low    string `json:"l"`
	Volume string `json:"v"`
}

func (s *Service) stream(ctx context.Context) {
	for {
		err := s.consume(ctx)
		if ctx.Err() != nil {
			zap.L().Info("Context canceled, closing price stream")
			return
		}
		metrics.PriceFeedErrors.WithLabelValues("stream").Inc()
		zap.L().Warn("Price stream disconnected, reconnecting", zap.Error(err), zap.Duration("delay", s.reconnectDelay))
		if err := sleep(ctx, s.reconnectDelay); err != nil {
			return
		}
	}
}

func (s *Service) consume(ctx context.Context) error {
	conn, _, err := s.dialer.DialContext(ctx, s.streamURL+streamPath, nil)
	if err != nil {
		return fmt.Errorf("dial price stream: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	wanted := make(map[string]struct{}, len(s.symbols))
	for _, symbol := range s.symbols {
		wanted[symbol] = struct{}{}
	}

	for {
		conn.SetReadDeadline(time.Now().Add(readWait))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read price stream: %w", err)
		}
		if err := s.applyMiniTickers(ctx, msg, wanted); err != nil {
			zap.L().Warn("Skipping malformed stream message", zap.Error(err))
		}
	}
}

func (s *Service) applyMiniTickers(ctx context.Context, msg []byte, wanted map[string]struct{}) error {
	var events []miniTicker
	if err := json.Unmarshal(msg, &events); err != nil {
		return fmt.Errorf("failed to parse mini tickers: %w", err)
	}

	now := s.now()
	for _, e := range events {
		if _, ok := wanted[e.Symbol]; !ok {
			continue
		}
		change, err := changePercent(e.Open, e.Close)
		if err != nil {
			return fmt.Errorf("ticker %s: %w", e.Symbol, err)
		}
		s.cache.Put(ctx, domain.Ticker{
			Symbol:    e.Symbol,
			LastPrice: e.Close,
			ChangePct: change,
			HighPrice: e.High,
			LowPrice:  e.Low,
			Volume:    e.Volume,
			UpdatedAt: now,
		})
	}
	return nil
}

// changePercent is the 24h change of close against open, in percent.
func changePercent(open, closePrice string) (string, error) {
	o, err := decimal.NewFromString(open)
	if err != nil {
		return "", fmt.Errorf("invalid open price %q: %w", open, err)
	}
	c, err := decimal.NewFromString(closePrice)
	if err != nil {
		return "", fmt.Errorf("invalid close price %q: %w", closePrice, err)
	}
	if o.IsZero() {
		return decimal.Zero.StringFixed(3), nil
	}
	return c.Sub(o).Div(o).Mul(decimal.NewFromInt(100)).StringFixed(3), nil
}
