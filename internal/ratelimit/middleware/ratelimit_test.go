package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/ratelimit/models"
	"praxis/internal/ratelimit/store/bucket"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLimiter_Middleware(t *testing.T) {
	t.Run("allows requests under the limit", func(t *testing.T) {
		limiter := NewLimiter(bucket.NewInMemoryBucketStore(), discardLogger(), 2, time.Minute)
		handler := limiter.Middleware(okHandler())

		for i := 0; i < 2; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/intake/validate", nil))
			require.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("rejects requests over the limit with 429", func(t *testing.T) {
		limiter := NewLimiter(bucket.NewInMemoryBucketStore(), discardLogger(), 1, time.Minute)
		handler := limiter.Middleware(okHandler())

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/intake/validate", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/intake/validate", nil))
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))
		assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("keys on forwarded address", func(t *testing.T) {
		limiter := NewLimiter(bucket.NewInMemoryBucketStore(), discardLogger(), 1, time.Minute)
		handler := limiter.Middleware(okHandler())

		first := httptest.NewRequest(http.MethodPost, "/intake/validate", nil)
		first.Header.Set("X-Forwarded-For", "10.0.0.1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, first)
		require.Equal(t, http.StatusOK, rr.Code)

		second := httptest.NewRequest(http.MethodPost, "/intake/validate", nil)
		second.Header.Set("X-Forwarded-For", "10.0.0.2")
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, second)
		assert.Equal(t, http.StatusOK, rr.Code, "different client must not share the bucket")
	})

	t.Run("fails open when the store errors", func(t *testing.T) {
		limiter := NewLimiter(failingStore{}, discardLogger(), 1, time.Minute)
		handler := limiter.Middleware(okHandler())

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/intake/validate", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (*models.RateLimitResult, error) {
	return nil, errors.New("store unavailable")
}
