// Package service runs identifier analysis for the intake endpoints,
// wrapping the pure engine with auditing, metrics and batch execution.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	auditmodels "praxis/internal/audit/models"
	auditservice "praxis/internal/audit/service"
	"praxis/internal/intake/metrics"
	"praxis/pkg/cnp"
	dErrors "praxis/pkg/domain-errors"
)

const (
	// MaxBatchSize bounds one batch request. Larger uploads must be split
	// by the caller.
	MaxBatchSize = 5000

	batchWorkers = 16
)

// Clock abstracts time.Now for testability.
type Clock func() time.Time

// Service validates identifiers on behalf of the intake endpoints. The
// engine itself is pure; everything operational (audit trail, metrics,
// concurrency) lives here.
type Service struct {
	analyzer *cnp.Analyzer
	audit    *auditservice.Service
	logger   *slog.Logger
	metrics  *metrics.Metrics
	clock    Clock
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

// New creates an intake service.
func New(
	analyzer *cnp.Analyzer,
	audit *auditservice.Service,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		analyzer: analyzer,
		audit:    audit,
		logger:   logger,
		metrics:  m,
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Validate analyzes one identifier. Failures are data in the returned
// result, never a Go error; callers can surface the result as-is.
func (s *Service) Validate(ctx context.Context, raw string) cnp.Result {
	start := s.clock()
	result := s.analyzer.Analyze(raw)
	s.metrics.ObserveValidate(start)
	s.metrics.IncrementOutcome(outcomeLabel(result))

	if result.Valid {
		s.audit.Record(ctx, auditmodels.KindValidationAccepted, cnp.Sanitize(raw), result.Description)
	} else {
		s.audit.Record(ctx, auditmodels.KindValidationRejected, cnp.Sanitize(raw), string(result.Kind))
	}
	return result
}

// ValidateBatch analyzes up to MaxBatchSize identifiers concurrently.
// Results are returned in input order. Per-entry outcomes land in the
// metrics; the audit trail gets one summary event per batch rather than
// one per entry.
func (s *Service) ValidateBatch(ctx context.Context, raws []string) ([]cnp.Result, error) {
	if len(raws) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "batch must contain at least one entry")
	}
	if len(raws) > MaxBatchSize {
		return nil, dErrors.Newf(dErrors.CodeBadRequest, "batch exceeds %d entries", MaxBatchSize)
	}
	s.metrics.ObserveBatchSize(len(raws))

	results := make([]cnp.Result, len(raws))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, raw := range raws {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.analyzer.Analyze(raw)
			s.metrics.IncrementOutcome(outcomeLabel(results[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "batch validation aborted")
	}

	accepted := 0
	for _, r := range results {
		if r.Valid {
			accepted++
		}
	}
	rejected := len(results) - accepted
	kind := auditmodels.KindValidationAccepted
	if rejected > 0 {
		kind = auditmodels.KindValidationRejected
	}
	s.audit.Record(ctx, kind, "", fmt.Sprintf("batch of %d: %d accepted, %d rejected", len(results), accepted, rejected))

	return results, nil
}

// Format returns the display grouping of an identifier. The input must
// sanitize to exactly 13 digits.
func (s *Service) Format(raw string) (string, error) {
	digits := cnp.Sanitize(raw)
	if len(digits) != 13 {
		return "", dErrors.New(dErrors.CodeValidation, "must have exactly 13 digits")
	}
	return cnp.Format(digits), nil
}

func outcomeLabel(r cnp.Result) string {
	if r.Valid {
		return metrics.OutcomeValid
	}
	return string(r.Kind)
}
