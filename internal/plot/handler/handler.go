package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kleingarten/internal/audit"
	"kleingarten/internal/platform/metrics"
	"kleingarten/internal/platform/middleware"
	plotModel "kleingarten/internal/plot/models"
	"kleingarten/internal/transport/http/shared"
	id "kleingarten/pkg/domain"
	dErrors "kleingarten/pkg/domain-errors"
)

// Service defines the interface for plot lifecycle operations.
type Service interface {
	CreatePlot(ctx context.Context, req plotModel.CreatePlotRequest) (*plotModel.Plot, error)
	GetPlot(ctx context.Context, plotID id.PlotID) (*plotModel.Plot, error)
	AssignPlot(ctx context.Context, req plotModel.AssignPlotRequest) (*plotModel.Plot, error)
	UpdatePlot(ctx context.Context, req plotModel.UpdatePlotRequest) (*plotModel.Plot, error)
	DeletePlot(ctx context.Context, req plotModel.DeletePlotRequest) (*plotModel.DeletionResult, error)
	Statistics(ctx context.Context, districtID *id.DistrictID) (*plotModel.PlotStatistics, error)
}

// AuditLog exposes the per-plot audit trail.
type AuditLog interface {
	List(ctx context.Context, plotID id.PlotID) ([]audit.Event, error)
}

// Handler handles plot-related endpoints.
type Handler struct {
	logger    *slog.Logger
	plots     Service
	auditLog  AuditLog
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

// New creates a new plot Handler. auditLog may be nil; the audit route is
// only registered when a log is wired.
func New(
	plots Service,
	auditLog AuditLog,
	logger *slog.Logger,
	m *metrics.Metrics,
	validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		plots:     plots,
		auditLog:  auditLog,
		metrics:   m,
		validator: validator,
	}
}

// Register registers the plot routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	plotRouter := chi.NewRouter()
	plotRouter.Use(middleware.Recovery(h.logger))
	plotRouter.Use(middleware.RequestID)
	plotRouter.Use(middleware.RequestTime)
	plotRouter.Use(middleware.Logger(h.logger))
	plotRouter.Use(middleware.Timeout(30 * time.Second))
	plotRouter.Use(middleware.ContentTypeJSON)
	if h.metrics != nil {
		plotRouter.Use(middleware.Latency(h.metrics.RequestDuration))
	}
	plotRouter.Use(middleware.RequireAuth(h.validator, h.logger))

	plotRouter.Post("/plots", h.handleCreatePlot)
	plotRouter.Get("/plots/statistics", h.handleStatistics)
	plotRouter.Get("/plots/{plotID}", h.handleGetPlot)
	plotRouter.Patch("/plots/{plotID}", h.handleUpdatePlot)
	plotRouter.Delete("/plots/{plotID}", h.handleDeletePlot)
	plotRouter.Post("/plots/{plotID}/assign", h.handleAssignPlot)
	if h.auditLog != nil {
		plotRouter.Get("/plots/{plotID}/audit", h.handleAuditTrail)
	}

	r.Mount("/", plotRouter)
}

func (h *Handler) handleCreatePlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req plotModel.CreatePlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warn(ctx, "invalid create plot request", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	plot, err := h.plots.CreatePlot(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, "create plot failed", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, plot)
}

func (h *Handler) handleGetPlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plotID, err := id.ParsePlotID(chi.URLParam(r, "plotID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	plot, err := h.plots.GetPlot(ctx, plotID)
	if err != nil {
		h.writeServiceError(ctx, w, "get plot failed", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, plot)
}

func (h *Handler) handleAssignPlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plotID, err := id.ParsePlotID(chi.URLParam(r, "plotID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var req plotModel.AssignPlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warn(ctx, "invalid assign plot request", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.PlotID = plotID

	plot, err := h.plots.AssignPlot(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, "assign plot failed", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, plot)
}

func (h *Handler) handleUpdatePlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plotID, err := id.ParsePlotID(chi.URLParam(r, "plotID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	var req plotModel.UpdatePlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warn(ctx, "invalid update plot request", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.PlotID = plotID

	plot, err := h.plots.UpdatePlot(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, "update plot failed", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, plot)
}

func (h *Handler) handleDeletePlot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plotID, err := id.ParsePlotID(chi.URLParam(r, "plotID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	// The body is optional: a bare DELETE hard-deletes when safe.
	var req plotModel.DeletePlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.warn(ctx, "invalid delete plot request", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	req.PlotID = plotID

	result, err := h.plots.DeletePlot(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, "delete plot failed", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var districtID *id.DistrictID
	if raw := r.URL.Query().Get("district_id"); raw != "" {
		parsed, err := id.ParseDistrictID(raw)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		districtID = &parsed
	}

	stats, err := h.plots.Statistics(ctx, districtID)
	if err != nil {
		h.writeServiceError(ctx, w, "statistics failed", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	plotID, err := id.ParsePlotID(chi.URLParam(r, "plotID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	events, err := h.auditLog.List(ctx, plotID)
	if err != nil {
		h.writeServiceError(ctx, w, "audit trail lookup failed", err)
		return
	}
	if events == nil {
		events = []audit.Event{}
	}

	shared.WriteJSON(w, http.StatusOK, events)
}

// writeServiceError renders a service error, logging expected business
// rejections at warn and everything else at error. The service already
// collapses infrastructure detail into safe messages.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInternal, dErrors.CodeTimeout:
		h.logger.ErrorContext(ctx, msg,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	default:
		h.warn(ctx, msg, err)
	}
	shared.WriteError(w, err)
}

func (h *Handler) warn(ctx context.Context, msg string, err error) {
	h.logger.WarnContext(ctx, msg,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
}
