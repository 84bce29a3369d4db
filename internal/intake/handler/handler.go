// Package handler exposes the identifier validation endpoints used by
// intake forms.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"praxis/internal/platform/middleware"
	"praxis/pkg/cnp"
	dErrors "praxis/pkg/domain-errors"
	"praxis/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks

// Service defines the interface for intake validation operations.
type Service interface {
	Validate(ctx context.Context, raw string) cnp.Result
	ValidateBatch(ctx context.Context, raws []string) ([]cnp.Result, error)
	Format(raw string) (string, error)
}

// Handler handles intake validation endpoints.
type Handler struct {
	intake Service
	logger *slog.Logger
}

// New creates a new intake Handler.
func New(intake Service, logger *slog.Logger) *Handler {
	return &Handler{intake: intake, logger: logger}
}

// Register registers the intake routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	intakeRouter := chi.NewRouter()
	intakeRouter.Use(middleware.Timeout(30 * time.Second))
	intakeRouter.Post("/validate", h.handleValidate)
	intakeRouter.Post("/validate/batch", h.handleValidateBatch)
	intakeRouter.Get("/format", h.handleFormat)

	r.Mount("/intake", intakeRouter)
}

type validateRequest struct {
	CNP string `json:"cnp"`
}

type batchRequest struct {
	CNPs []string `json:"cnps"`
}

// handleValidate analyzes one identifier and returns the full result.
// Invalid identifiers are a 200 with valid=false: rejection is the
// endpoint's product, not a transport failure.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, h.intake.Validate(r.Context(), req.CNP))
}

// handleValidateBatch analyzes a list of identifiers, preserving order.
func (h *Handler) handleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	results, err := h.intake.ValidateBatch(ctx, req.CNPs)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "batch validation failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

// handleFormat returns the display grouping of an identifier.
func (h *Handler) handleFormat(w http.ResponseWriter, r *http.Request) {
	formatted, err := h.intake.Format(r.URL.Query().Get("cnp"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"formatted": formatted})
}
