package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/rentvest/pkg/metrics"
	"github.com/GlebRadaev/rentvest/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Counter is the subset of the redis client the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Limiter is a fixed-window limiter keyed by client IP. It lets requests
// through when redis is not configured or fails.
type Limiter struct {
	counter     Counter
	maxRequests int
	window      time.Duration
}

func New(counter Counter, maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		counter:     counter,
		maxRequests: maxRequests,
		window:      window,
	}
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.counter == nil || l.maxRequests <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		}

		key := "rl:" + strconv.FormatInt(int64(l.window.Seconds()), 10) + ":" + endpoint + ":" + clientIP(r)
		ctx := r.Context()

		val, err := l.counter.Incr(ctx, key).Result()
		if err != nil {
			zap.L().Warn("rate limiter unavailable", zap.Error(err))
			w.Header().Set("X-RateLimit-Error", "redis-error")
			next.ServeHTTP(w, r)
			return
		}
		if val == 1 {
			if err := l.counter.Expire(ctx, key, l.window).Err(); err != nil {
				zap.L().Warn("can't set rate limit window", zap.String("key", key), zap.Error(err))
			}
		}

		if val > int64(l.maxRequests) {
			metrics.RateLimitBlocked.WithLabelValues(endpoint).Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			utils.RespondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		metrics.RateLimitRequests.WithLabelValues(endpoint).Inc()
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
