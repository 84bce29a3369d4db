package store

import (
	"context"
	"sync"

	"praxis/internal/audit/models"
)

// defaultCapacity bounds the in-memory trail so an unattended instance
// cannot grow without limit.
const defaultCapacity = 10000

// InMemoryStore keeps the most recent events in a bounded ring.
type InMemoryStore struct {
	mu       sync.RWMutex
	events   []models.Event
	capacity int
}

// NewInMemoryStore creates an in-memory audit store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{capacity: defaultCapacity}
}

// Append records an event, evicting the oldest entry when full.
func (s *InMemoryStore) Append(_ context.Context, event models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) > s.capacity {
		s.events = s.events[len(s.events)-s.capacity:]
	}
	return nil
}

// ListRecent returns up to limit events, newest first.
func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.events)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Event, 0, n)
	for i := len(s.events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.events[i])
	}
	return out, nil
}
