package service

import (
	"context"
	"errors"
	"fmt"

	"kleingarten/internal/audit"
	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
	dErrors "kleingarten/pkg/domain-errors"
	"kleingarten/pkg/platform/sentinel"
	"kleingarten/pkg/requestcontext"
)

// CreatePlot registers a new plot in the available state and bumps the
// owning district's plot counter inside the same transaction.
func (s *Service) CreatePlot(ctx context.Context, req models.CreatePlotRequest) (*models.Plot, error) {
	ctx, span := s.tracer.Start(ctx, "plot.Create")
	defer span.End()

	now := requestcontext.Now(ctx)
	actor := requestcontext.Actor(ctx)

	district, err := s.districts.FindByID(ctx, req.DistrictID)
	if err != nil {
		return nil, s.wrapDistrictErr(ctx, err, "load district")
	}
	if !district.CanAcceptNewPlots() {
		return nil, s.ruleViolation("create", fmt.Sprintf(
			"district %q is not accepting new plots (status %s)", district.Name, district.Status))
	}
	if req.Priority < 0 {
		return nil, s.ruleViolation("create", "priority must not be negative")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, s.ruleViolation("create", "price must not be negative")
	}

	plot, err := models.NewPlot(id.NewPlotID(), req.DistrictID, req.Number, req.Area, now, actor)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, dErrors.MessageOf(err))
	}
	plot.Price = req.Price
	plot.SpecialFeatures = req.SpecialFeatures
	plot.HasWater = req.HasWater
	plot.HasElectricity = req.HasElectricity
	plot.Priority = req.Priority

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.plots.Create(txCtx, plot); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Newf(dErrors.CodeConflict,
					"plot number %q is already in use in this district", plot.Number)
			}
			return s.wrapPlotErr(txCtx, err, "create plot")
		}
		if err := s.districts.IncrementPlotCount(txCtx, plot.DistrictID); err != nil {
			return s.wrapDistrictErr(txCtx, err, "increment plot count")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PlotsCreated.Inc()
	}
	districtID := plot.DistrictID
	s.emitAudit(ctx, audit.Event{
		Action:     audit.EventPlotCreated,
		PlotID:     plot.ID,
		DistrictID: &districtID,
	})
	s.invalidateStats(ctx, plot.DistrictID)
	s.logger.InfoContext(ctx, "plot created",
		"plot_id", plot.ID, "district_id", plot.DistrictID, "number", plot.Number)
	return plot, nil
}
