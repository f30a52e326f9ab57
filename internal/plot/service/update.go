package service

import (
	"context"
	"strings"

	"kleingarten/internal/audit"
	"kleingarten/internal/plot/models"
	"kleingarten/pkg/requestcontext"
)

// UpdatePlot applies a partial update to the mutable plot attributes. Nil
// request fields are left unchanged. Writes go through the plot's version
// token, so a concurrent writer surfaces as a conflict.
func (s *Service) UpdatePlot(ctx context.Context, req models.UpdatePlotRequest) (*models.Plot, error) {
	ctx, span := s.tracer.Start(ctx, "plot.Update")
	defer span.End()

	now := requestcontext.Now(ctx)
	actor := requestcontext.Actor(ctx)

	var updated *models.Plot
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plot, err := s.plots.FindByID(txCtx, req.PlotID)
		if err != nil {
			return s.wrapPlotErr(txCtx, err, "load plot")
		}
		if violations := validateUpdate(plot, req); len(violations) > 0 {
			return s.ruleViolation("update", strings.Join(violations, "; "))
		}

		if req.Area != nil {
			plot.Area = *req.Area
		}
		if req.Price != nil {
			plot.Price = req.Price
		}
		if req.Notes != nil {
			plot.AppendNote(now, *req.Notes)
		}
		if req.SpecialFeatures != nil {
			plot.SpecialFeatures = *req.SpecialFeatures
		}
		if req.HasWater != nil {
			plot.HasWater = *req.HasWater
		}
		if req.HasElectricity != nil {
			plot.HasElectricity = *req.HasElectricity
		}
		if req.Priority != nil {
			plot.Priority = *req.Priority
		}
		plot.Touch(now, actor)

		if err := s.plots.Update(txCtx, plot); err != nil {
			return s.wrapPlotErr(txCtx, err, "save plot")
		}
		updated = plot
		return nil
	})
	if err != nil {
		return nil, err
	}

	districtID := updated.DistrictID
	s.emitAudit(ctx, audit.Event{
		Action:     audit.EventPlotUpdated,
		PlotID:     updated.ID,
		DistrictID: &districtID,
	})
	s.invalidateStats(ctx, updated.DistrictID)
	return updated, nil
}
