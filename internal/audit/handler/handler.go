// Package handler exposes the admin audit listing.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	auditservice "praxis/internal/audit/service"
	"praxis/internal/platform/middleware"
	"praxis/pkg/platform/httputil"
)

// Handler serves the admin audit endpoints.
type Handler struct {
	audit         *auditservice.Service
	logger        *slog.Logger
	jwtSigningKey string
}

// New creates an audit Handler.
func New(audit *auditservice.Service, logger *slog.Logger, jwtSigningKey string) *Handler {
	return &Handler{audit: audit, logger: logger, jwtSigningKey: jwtSigningKey}
}

// Register mounts the admin audit routes with the admin auth middleware.
func (h *Handler) Register(r chi.Router) {
	admin := chi.NewRouter()
	admin.Use(middleware.Timeout(10 * time.Second))
	admin.Use(middleware.RequireAdmin(h.jwtSigningKey, h.logger))
	admin.Get("/audit", h.handleList)

	r.Mount("/admin", admin)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	events, err := h.audit.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "audit listing failed",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"events": events,
		"count":  len(events),
	})
}
