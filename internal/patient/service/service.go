// Package service implements patient registration and lookup on top of the
// CNP analyzer and the patient store.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	auditmodels "praxis/internal/audit/models"
	auditservice "praxis/internal/audit/service"
	"praxis/internal/patient/metrics"
	"praxis/internal/patient/models"
	"praxis/internal/patient/store"
	"praxis/pkg/cnp"
	id "praxis/pkg/domain"
	dErrors "praxis/pkg/domain-errors"
)

// Clock abstracts time.Now for testability.
type Clock func() time.Time

// Service owns the patient registration flow. The analyzer decides whether
// an identifier is acceptable; the service never re-implements validation.
type Service struct {
	store    store.Store
	analyzer *cnp.Analyzer
	audit    *auditservice.Service
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
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

// New creates a patient service.
func New(
	st store.Store,
	analyzer *cnp.Analyzer,
	audit *auditservice.Service,
	logger *slog.Logger,
	m *metrics.Metrics,
	opts ...Option,
) *Service {
	s := &Service{
		store:    st,
		analyzer: analyzer,
		audit:    audit,
		logger:   logger,
		metrics:  m,
		tracer:   otel.Tracer("praxis/internal/patient"),
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Register validates the identifier, decodes its demographics and persists
// the record. The decoded fields are stored alongside the raw CNP so later
// consumers never re-derive them.
func (s *Service) Register(ctx context.Context, req models.RegisterPatientRequest) (models.Patient, error) {
	ctx, span := s.tracer.Start(ctx, "patient.Register")
	defer span.End()
	start := s.clock()

	if err := req.Validate(); err != nil {
		return models.Patient{}, err
	}

	result := s.analyzer.Analyze(req.CNP)
	if !result.Valid {
		span.SetAttributes(attribute.String("cnp.failure_kind", string(result.Kind)))
		s.audit.Record(ctx, auditmodels.KindValidationRejected, cnp.Sanitize(req.CNP), string(result.Kind))
		return models.Patient{}, dErrors.New(dErrors.CodeValidation, result.Message)
	}

	patient := models.Patient{
		ID:        id.NewPatientID(),
		CNP:       cnp.Sanitize(req.CNP),
		FullName:  req.FullName,
		BirthDate: result.BirthDate,
		Sex:       result.Sex,
		County:    result.County,
		Century:   result.Century,
		CreatedAt: s.clock(),
	}

	if err := s.store.Save(ctx, patient); err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			return models.Patient{}, err
		}
		s.logger.ErrorContext(ctx, "patient save failed",
			"error", err,
			"patient_id", patient.ID.String(),
		)
		return models.Patient{}, dErrors.Wrap(err, dErrors.CodeInternal, "save patient")
	}

	s.audit.Record(ctx, auditmodels.KindPatientRegistered, patient.CNP, patient.ID.String())
	s.metrics.IncrementRegistered()
	s.metrics.ObserveRegister(start)
	return patient, nil
}

// GetByID returns one patient record.
func (s *Service) GetByID(ctx context.Context, patientID id.PatientID) (models.Patient, error) {
	ctx, span := s.tracer.Start(ctx, "patient.GetByID")
	defer span.End()
	return s.store.FindByID(ctx, patientID)
}

// List returns patients, optionally filtered by county name.
func (s *Service) List(ctx context.Context, county string, limit int) ([]models.Patient, error) {
	ctx, span := s.tracer.Start(ctx, "patient.List")
	defer span.End()
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.store.List(ctx, county, limit)
}
