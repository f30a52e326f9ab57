package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kleingarten/internal/audit"
	"kleingarten/internal/plot/models"
	dErrors "kleingarten/pkg/domain-errors"
	"kleingarten/pkg/requestcontext"
)

// DeletePlot removes a plot outright when nothing links to it, or retires it
// in place when linked applications exist and the caller forces the
// deletion. With TransferExistingAssignments the current assignment moves to
// the closest available plot of the same district first; if no candidate
// exists the whole request fails and the plot is left untouched. All
// mutations of one deletion share a single transaction.
func (s *Service) DeletePlot(ctx context.Context, req models.DeletePlotRequest) (*models.DeletionResult, error) {
	ctx, span := s.tracer.Start(ctx, "plot.Delete")
	defer span.End()
	if s.metrics != nil {
		defer s.metrics.ObserveDelete(time.Now())
	}

	now := requestcontext.Now(ctx)
	actor := req.DeletedBy
	if actor == "" {
		actor = requestcontext.Actor(ctx)
	}

	var (
		result *models.DeletionResult
		events []audit.Event
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plot, err := s.plots.FindByID(txCtx, req.PlotID)
		if err != nil {
			return s.wrapPlotErr(txCtx, err, "load plot")
		}
		linked, err := s.applicants.CountByPlot(txCtx, plot.ID)
		if err != nil {
			return s.registryFailure(txCtx, err, "linked application count")
		}
		if violations := validateDeletion(plot, linked, req); len(violations) > 0 {
			return s.ruleViolation("delete", strings.Join(violations, "; "))
		}

		districtID := plot.DistrictID
		var transferredTo *models.Plot
		if req.TransferExistingAssignments && plot.Status == models.PlotStatusAssigned {
			transferredTo, err = s.transferAssignment(txCtx, plot, now, actor)
			if err != nil {
				return err
			}
			targetID := transferredTo.ID
			events = append(events, audit.Event{
				Action:     audit.EventPlotTransferred,
				PlotID:     targetID,
				DistrictID: &districtID,
				Reason:     fmt.Sprintf("assignment transferred from plot %s", plot.Number),
			})
		}

		if linked > 0 {
			// ForceDelete is guaranteed here; the validator rejected the
			// non-forced case.
			if err := plot.CanDecommission(); err != nil {
				return s.ruleViolation("delete", dErrors.MessageOf(err))
			}
			plot.ApplyDecommission(now, actor)
			if req.DeletionReason != "" {
				plot.AppendNote(now, "decommissioned: "+req.DeletionReason)
			}
			if err := s.plots.Update(txCtx, plot); err != nil {
				return s.wrapPlotErr(txCtx, err, "save plot")
			}
			result = &models.DeletionResult{
				Outcome:       models.DeletionOutcomeDecommissioned,
				Plot:          plot,
				TransferredTo: transferredTo,
			}
			events = append(events, audit.Event{
				Action:     audit.EventPlotDecommissioned,
				PlotID:     plot.ID,
				DistrictID: &districtID,
				Actor:      actor,
				Reason:     req.DeletionReason,
			})
			return nil
		}

		if err := s.plots.Remove(txCtx, plot); err != nil {
			return s.wrapPlotErr(txCtx, err, "remove plot")
		}
		if err := s.districts.DecrementPlotCount(txCtx, plot.DistrictID); err != nil {
			return s.wrapDistrictErr(txCtx, err, "decrement plot count")
		}
		result = &models.DeletionResult{
			Outcome:          models.DeletionOutcomeHardDeleted,
			Plot:             plot,
			TransferredTo:    transferredTo,
			DistrictAdjusted: true,
		}
		events = append(events, audit.Event{
			Action:     audit.EventPlotDeleted,
			PlotID:     plot.ID,
			DistrictID: &districtID,
			Actor:      actor,
			Reason:     req.DeletionReason,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PlotsDeleted.WithLabelValues(string(result.Outcome)).Inc()
	}
	for _, event := range events {
		s.emitAudit(ctx, event)
	}
	s.invalidateStats(ctx, result.Plot.DistrictID)
	s.logger.InfoContext(ctx, "plot deleted",
		"plot_id", result.Plot.ID, "outcome", result.Outcome, "transferred", result.TransferredTo != nil)
	return result, nil
}

// transferAssignment moves the source plot's assignment to the closest
// available same-district plot. Failing to find a candidate fails the whole
// deletion so no partial transfer can occur.
func (s *Service) transferAssignment(ctx context.Context, source *models.Plot, now time.Time, actor string) (*models.Plot, error) {
	candidates, err := s.plots.ListAvailableByDistrict(ctx, source.DistrictID)
	if err != nil {
		return nil, s.wrapPlotErr(ctx, err, "transfer candidate lookup")
	}
	target := pickTransferTarget(source, candidates)
	if target == nil {
		return nil, s.ruleViolation("delete", "no suitable alternative plot found for the assignment transfer")
	}
	target.ApplyAssignment(*source.AssignedOn, now, actor)
	target.AppendNote(now, fmt.Sprintf("assignment transferred from plot %s", source.Number))
	if err := s.plots.Update(ctx, target); err != nil {
		return nil, s.wrapPlotErr(ctx, err, "save transfer target")
	}
	return target, nil
}
