// Package handler exposes the patient registration and lookup endpoints.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"praxis/internal/patient/models"
	"praxis/internal/platform/middleware"
	id "praxis/pkg/domain"
	dErrors "praxis/pkg/domain-errors"
	"praxis/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks

// Service defines the interface for patient operations.
type Service interface {
	Register(ctx context.Context, req models.RegisterPatientRequest) (models.Patient, error)
	GetByID(ctx context.Context, patientID id.PatientID) (models.Patient, error)
	List(ctx context.Context, county string, limit int) ([]models.Patient, error)
}

// Handler handles patient-related endpoints.
type Handler struct {
	patients Service
	logger   *slog.Logger
}

// New creates a new patient Handler.
func New(patients Service, logger *slog.Logger) *Handler {
	return &Handler{patients: patients, logger: logger}
}

// Register registers the patient routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	patientRouter := chi.NewRouter()
	patientRouter.Use(middleware.Timeout(30 * time.Second))
	patientRouter.Use(middleware.ContentTypeJSON)
	patientRouter.Post("/", h.handleRegister)
	patientRouter.Get("/{id}", h.handleGet)
	patientRouter.Get("/", h.handleList)

	r.Mount("/patients", patientRouter)
}

// handleRegister validates and persists a new patient record.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid register patient request",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	patient, err := h.patients.Register(ctx, req)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "patient registration failed",
				"request_id", requestID,
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, models.ToResponse(patient))
}

// handleGet returns one patient by record ID.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	patientID, err := id.ParsePatientID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	patient, err := h.patients.GetByID(r.Context(), patientID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.ToResponse(patient))
}

// handleList returns patients, optionally filtered by county.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	patients, err := h.patients.List(r.Context(), r.URL.Query().Get("county"), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "patient listing failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	responses := make([]models.PatientResponse, 0, len(patients))
	for _, p := range patients {
		responses = append(responses, models.ToResponse(p))
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"patients": responses,
		"count":    len(responses),
	})
}
