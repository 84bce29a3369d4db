package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praxis/internal/audit/models"
	id "praxis/pkg/domain"
)

func event(kind models.EventKind, at time.Time) models.Event {
	return models.Event{
		ID:        id.NewAuditEventID(),
		Kind:      kind,
		MaskedCNP: "608********00",
		At:        at,
	}
}

func TestInMemoryStore_AppendAndList(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	base := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(ctx, event(models.KindValidationAccepted, base.Add(time.Duration(i)*time.Second))))
	}

	t.Run("newest first", func(t *testing.T) {
		events, err := s.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 5)
		assert.True(t, events[0].At.After(events[4].At))
	})

	t.Run("limit respected", func(t *testing.T) {
		events, err := s.ListRecent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		events, err := s.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})
}

func TestInMemoryStore_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	s.capacity = 3

	for i := 0; i < 5; i++ {
		e := event(models.KindValidationRejected, time.Now())
		e.Detail = fmt.Sprintf("event-%d", i)
		require.NoError(t, s.Append(ctx, e))
	}

	events, err := s.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "event-4", events[0].Detail)
	assert.Equal(t, "event-2", events[2].Detail)
}
