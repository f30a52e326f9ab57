package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	applicantmodels "kleingarten/internal/applicant/models"
	"kleingarten/internal/audit"
	districtmodels "kleingarten/internal/district/models"
	"kleingarten/internal/plot/metrics"
	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
	dErrors "kleingarten/pkg/domain-errors"
	"kleingarten/pkg/platform/sentinel"
)

// PlotStore is the persistence boundary for plots. Implementations must
// exclude soft-deleted rows from every read and signal a stale version on
// write with sentinel.ErrConflict.
type PlotStore interface {
	Create(ctx context.Context, plot *models.Plot) error
	FindByID(ctx context.Context, plotID id.PlotID) (*models.Plot, error)
	Update(ctx context.Context, plot *models.Plot) error
	Remove(ctx context.Context, plot *models.Plot) error
	ListAvailableByDistrict(ctx context.Context, districtID id.DistrictID) ([]*models.Plot, error)
	List(ctx context.Context, districtID *id.DistrictID) ([]*models.Plot, error)
}

// DistrictStore is the district registry consumed by the engine.
type DistrictStore interface {
	FindByID(ctx context.Context, districtID id.DistrictID) (*districtmodels.District, error)
	List(ctx context.Context) ([]*districtmodels.District, error)
	IncrementPlotCount(ctx context.Context, districtID id.DistrictID) error
	DecrementPlotCount(ctx context.Context, districtID id.DistrictID) error
}

// ApplicantRegistry exposes existence and status checks for assignment
// targets. Read-only from this engine's perspective.
type ApplicantRegistry interface {
	PersonExists(ctx context.Context, personID id.PersonID) (bool, error)
	ApplicationStatus(ctx context.Context, applicationID id.ApplicationID) (applicantmodels.ApplicationStatus, error)
	CountByPlot(ctx context.Context, plotID id.PlotID) (int, error)
}

// AuditPublisher records plot lifecycle events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// StatsCache caches derived statistics. All methods are best-effort from the
// service's point of view.
type StatsCache interface {
	Get(ctx context.Context, districtID *id.DistrictID) (*models.PlotStatistics, error)
	Set(ctx context.Context, districtID *id.DistrictID, stats *models.PlotStatistics) error
	Invalidate(ctx context.Context, districtID id.DistrictID) error
}

// StoreTx runs fn inside one logical transaction. Every store call made with
// the ctx passed to fn joins that transaction; commit happens exactly once
// after fn returns nil, rollback otherwise.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// inMemoryStoreTx is the default transaction scope for wiring against
// in-memory stores: there is nothing to commit or roll back, so fn runs
// directly.
type inMemoryStoreTx struct{}

func (inMemoryStoreTx) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// Service is the plot lifecycle and assignment engine. Commands load
// entities, validate against the status machine and the district capacity
// gate, mutate in-memory state, and persist inside a single transaction.
type Service struct {
	plots      PlotStore
	districts  DistrictStore
	applicants ApplicantRegistry
	tx         StoreTx
	logger     *slog.Logger
	metrics    *metrics.Metrics
	audit      AuditPublisher
	statsCache StatsCache
	tracer     trace.Tracer
}

// Option configures optional service collaborators.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.audit = publisher }
}

func WithStatsCache(cache StatsCache) Option {
	return func(s *Service) { s.statsCache = cache }
}

func WithTx(tx StoreTx) Option {
	return func(s *Service) { s.tx = tx }
}

// New constructs the engine. The three stores are required; everything else
// defaults to a quiet no-op collaborator.
func New(plots PlotStore, districts DistrictStore, applicants ApplicantRegistry, opts ...Option) (*Service, error) {
	if plots == nil {
		return nil, errors.New("plot store is required")
	}
	if districts == nil {
		return nil, errors.New("district store is required")
	}
	if applicants == nil {
		return nil, errors.New("applicant registry is required")
	}
	s := &Service{
		plots:      plots,
		districts:  districts,
		applicants: applicants,
		tx:         inMemoryStoreTx{},
		logger:     slog.Default(),
		tracer:     otel.Tracer("kleingarten/plot"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetPlot loads one plot for the read path.
func (s *Service) GetPlot(ctx context.Context, plotID id.PlotID) (*models.Plot, error) {
	plot, err := s.plots.FindByID(ctx, plotID)
	if err != nil {
		return nil, s.wrapPlotErr(ctx, err, "load plot")
	}
	return plot, nil
}

// wrapPlotErr translates store sentinels into coded domain errors. Unknown
// errors are logged with context and collapse to a generic internal failure
// so technical detail never crosses the engine boundary.
func (s *Service) wrapPlotErr(ctx context.Context, err error, op string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "plot not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, "plot was modified concurrently; retry with fresh data")
	default:
		s.logger.ErrorContext(ctx, "plot store failure", "op", op, "error", err)
		return dErrors.Wrap(err, dErrors.CodeInternal, "operation failed, try again")
	}
}

func (s *Service) wrapDistrictErr(ctx context.Context, err error, op string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "district not found")
	}
	s.logger.ErrorContext(ctx, "district store failure", "op", op, "error", err)
	return dErrors.Wrap(err, dErrors.CodeInternal, "operation failed, try again")
}

func (s *Service) registryFailure(ctx context.Context, err error, op string) error {
	s.logger.ErrorContext(ctx, "applicant registry failure", "op", op, "error", err)
	return dErrors.Wrap(err, dErrors.CodeInternal, "operation failed, try again")
}

func (s *Service) ruleViolation(command string, reason string) error {
	if s.metrics != nil {
		s.metrics.RuleViolations.WithLabelValues(command).Inc()
	}
	return dErrors.New(dErrors.CodeValidation, reason)
}

func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}

func (s *Service) invalidateStats(ctx context.Context, districtID id.DistrictID) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Invalidate(ctx, districtID); err != nil {
		s.logger.WarnContext(ctx, "stats cache invalidation failed", "district_id", districtID, "error", err)
	}
}
