// Package middleware provides the HTTP rate limiting middleware. The
// limiter is an explicit injected struct over a store interface, never a
// package-level singleton.
package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"praxis/internal/ratelimit/models"
)

// BucketStore is the consumer-side interface over sliding-window stores.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
}

// Limiter rate-limits requests per client IP.
type Limiter struct {
	store  BucketStore
	logger *slog.Logger
	limit  int
	window time.Duration
}

// NewLimiter builds a Limiter over the given store.
func NewLimiter(store BucketStore, logger *slog.Logger, limit int, window time.Duration) *Limiter {
	return &Limiter{store: store, logger: logger, limit: limit, window: window}
}

// Middleware enforces the limit. Store failures fail open: validation must
// stay available even when Redis is not.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		result, err := l.store.Allow(r.Context(), key, l.limit, l.window)
		if err != nil {
			l.logger.WarnContext(r.Context(), "rate limit check failed, failing open",
				"error", err,
				"key", key,
			)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"rate_limited","error_description":"too many requests"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the caller address, preferring X-Forwarded-For set by
// the reverse proxy in front of this service.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
