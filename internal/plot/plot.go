package plot

import (
	"log/slog"

	"kleingarten/internal/platform/metrics"
	"kleingarten/internal/platform/middleware"
	"kleingarten/internal/plot/handler"
	"kleingarten/internal/plot/service"
)

// Service exposes the plot lifecycle and assignment engine.
type Service = service.Service

// Handler wires HTTP endpoints to the plot service.
type Handler = handler.Handler

// NewService constructs the plot service with required dependencies.
func NewService(plots service.PlotStore, districts service.DistrictStore, applicants service.ApplicantRegistry, opts ...service.Option) (*Service, error) {
	return service.New(plots, districts, applicants, opts...)
}

// NewHandler constructs an HTTP handler for the plot routes.
func NewHandler(s *Service, auditLog handler.AuditLog, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return handler.New(s, auditLog, logger, m, validator)
}
