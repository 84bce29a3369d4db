package bucket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	testLimit  = 10
	testWindow = time.Minute
)

type InMemoryBucketStoreSuite struct {
	suite.Suite
	store *InMemoryBucketStore
	ctx   context.Context
}

func TestInMemoryBucketStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryBucketStoreSuite))
}

func (s *InMemoryBucketStoreSuite) SetupTest() {
	s.store = NewInMemoryBucketStore()
	s.ctx = context.Background()
}

func (s *InMemoryBucketStoreSuite) TestAllow() {
	s.Run("first request allowed", func() {
		result, err := s.store.Allow(s.ctx, "ip:allow:first", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit, result.Limit)
		s.Equal(testLimit-1, result.Remaining)
	})

	s.Run("requests up to limit allowed", func() {
		var last bool
		for range testLimit {
			result, err := s.store.Allow(s.ctx, "ip:allow:limit", testLimit, testWindow)
			s.Require().NoError(err)
			last = result.Allowed
		}
		s.True(last)
	})

	s.Run("request over limit denied with retry hint", func() {
		for range testLimit {
			_, err := s.store.Allow(s.ctx, "ip:allow:over", testLimit, testWindow)
			s.Require().NoError(err)
		}
		result, err := s.store.Allow(s.ctx, "ip:allow:over", testLimit, testWindow)
		s.Require().NoError(err)
		s.False(result.Allowed)
		s.Equal(0, result.Remaining)
		s.GreaterOrEqual(result.RetryAfter, 1)
	})

	s.Run("after window expires requests allowed", func() {
		_, err := s.store.Allow(s.ctx, "ip:allow:reset", testLimit, testWindow)
		s.Require().NoError(err)

		s.store.mu.Lock()
		if sw, exists := s.store.buckets["ip:allow:reset"]; exists {
			sw.timestamps = []time.Time{}
		}
		s.store.mu.Unlock()

		result, err := s.store.Allow(s.ctx, "ip:allow:reset", testLimit, testWindow)
		s.Require().NoError(err)
		s.True(result.Allowed)
		s.Equal(testLimit-1, result.Remaining)
	})

	s.Run("expired timestamps are evicted", func() {
		s.store.mu.Lock()
		s.store.buckets["ip:allow:stale"] = &slidingWindow{
			window:     testWindow,
			timestamps: []time.Time{time.Now().Add(-2 * testWindow)},
		}
		s.store.mu.Unlock()

		count, err := s.store.CurrentCount(s.ctx, "ip:allow:stale")
		s.Require().NoError(err)
		s.Equal(0, count)
	})
}

func (s *InMemoryBucketStoreSuite) TestReset() {
	for range 5 {
		_, err := s.store.Allow(s.ctx, "ip:reset", testLimit, testWindow)
		s.Require().NoError(err)
	}

	s.Require().NoError(s.store.Reset(s.ctx, "ip:reset"))

	count, err := s.store.CurrentCount(s.ctx, "ip:reset")
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *InMemoryBucketStoreSuite) TestKeysAreIndependent() {
	for range testLimit {
		_, err := s.store.Allow(s.ctx, "ip:a", testLimit, testWindow)
		s.Require().NoError(err)
	}

	result, err := s.store.Allow(s.ctx, "ip:b", testLimit, testWindow)
	s.Require().NoError(err)
	s.True(result.Allowed)
}
