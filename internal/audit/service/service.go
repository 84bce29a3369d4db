// Package service records and lists audit events.
package service

import (
	"context"
	"log/slog"
	"time"

	"praxis/internal/audit/models"
	"praxis/internal/audit/store"
	id "praxis/pkg/domain"
	dErrors "praxis/pkg/domain-errors"
)

// Clock abstracts time.Now for testability.
type Clock func() time.Time

// Service appends events to the audit trail and serves the admin listing.
type Service struct {
	store  store.Store
	logger *slog.Logger
	clock  Clock
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock function for testability.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New creates an audit service.
func New(st store.Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: st, logger: logger, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Record appends one event, masking the identifier before it is stored.
// Append failures are logged and swallowed: the audit trail is best-effort
// and must never fail the operation it describes.
func (s *Service) Record(ctx context.Context, kind models.EventKind, cnp, detail string) {
	event := models.Event{
		ID:        id.NewAuditEventID(),
		Kind:      kind,
		MaskedCNP: models.MaskCNP(cnp),
		Detail:    detail,
		At:        s.clock(),
	}
	if err := s.store.Append(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "audit append failed",
			"error", err,
			"kind", string(kind),
		)
	}
}

// ListRecent returns the newest events, capped at 500 per request.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]models.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	events, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list audit events")
	}
	return events, nil
}
