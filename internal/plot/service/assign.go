package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kleingarten/internal/audit"
	"kleingarten/internal/plot/models"
	dErrors "kleingarten/pkg/domain-errors"
	"kleingarten/pkg/platform/sentinel"
	"kleingarten/pkg/requestcontext"
)

// AssignPlot grants a plot to exactly one of a person or an application.
// With ReserveRelatedPlots set, up to two neighbouring available plots of
// the same district and priority are reserved alongside; reservation
// failures are logged and never fail the assignment itself.
func (s *Service) AssignPlot(ctx context.Context, req models.AssignPlotRequest) (*models.Plot, error) {
	ctx, span := s.tracer.Start(ctx, "plot.Assign")
	defer span.End()
	if s.metrics != nil {
		defer s.metrics.ObserveAssign(time.Now())
	}

	now := requestcontext.Now(ctx)
	actor := requestcontext.Actor(ctx)

	var (
		assigned *models.Plot
		reserved []*models.Plot
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		plot, err := s.plots.FindByID(txCtx, req.PlotID)
		if err != nil {
			return s.wrapPlotErr(txCtx, err, "load plot")
		}
		district, err := s.districts.FindByID(txCtx, plot.DistrictID)
		if err != nil {
			return s.wrapDistrictErr(txCtx, err, "load district")
		}
		facts, err := s.resolveAssignmentTarget(txCtx, req)
		if err != nil {
			return err
		}
		if violations := validateAssignment(plot, district, facts, req.ForceAssignment); len(violations) > 0 {
			return s.ruleViolation("assign", strings.Join(violations, "; "))
		}

		if req.PriorityOverride != nil {
			plot.Priority = *req.PriorityOverride
		}
		assignedOn := now
		if req.AssignmentDate != nil {
			assignedOn = *req.AssignmentDate
		}
		plot.ApplyAssignment(assignedOn, now, actor)
		if req.AssignmentNotes != "" {
			plot.AppendNote(now, req.AssignmentNotes)
		}
		if err := s.plots.Update(txCtx, plot); err != nil {
			return s.wrapPlotErr(txCtx, err, "save plot")
		}

		if req.ReserveRelatedPlots {
			reserved = s.reserveRelated(txCtx, plot, now, actor)
		}
		assigned = plot
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PlotsAssigned.Inc()
		for range reserved {
			s.metrics.RelatedReserved.Inc()
		}
	}
	districtID := assigned.DistrictID
	s.emitAudit(ctx, audit.Event{
		Action:     audit.EventPlotAssigned,
		PlotID:     assigned.ID,
		DistrictID: &districtID,
	})
	for _, r := range reserved {
		s.emitAudit(ctx, audit.Event{
			Action:     audit.EventPlotReserved,
			PlotID:     r.ID,
			DistrictID: &districtID,
			Reason:     fmt.Sprintf("related to plot %s", assigned.Number),
		})
	}
	s.invalidateStats(ctx, assigned.DistrictID)
	s.logger.InfoContext(ctx, "plot assigned",
		"plot_id", assigned.ID, "district_id", assigned.DistrictID, "related_reserved", len(reserved))
	return assigned, nil
}

// resolveAssignmentTarget looks up the supplied target in the applicant
// registry. A missing target is a not-found failure; an ambiguous request
// (none or both identifiers) is left for the validator to report.
func (s *Service) resolveAssignmentTarget(ctx context.Context, req models.AssignPlotRequest) (assignmentFacts, error) {
	facts := assignmentFacts{
		personSupplied:      req.PersonID != nil,
		applicationSupplied: req.ApplicationID != nil,
	}
	if facts.personSupplied == facts.applicationSupplied {
		return facts, nil
	}
	if facts.personSupplied {
		exists, err := s.applicants.PersonExists(ctx, *req.PersonID)
		if err != nil {
			return facts, s.registryFailure(ctx, err, "person lookup")
		}
		if !exists {
			return facts, dErrors.New(dErrors.CodeNotFound, "person not found")
		}
		return facts, nil
	}
	status, err := s.applicants.ApplicationStatus(ctx, *req.ApplicationID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return facts, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return facts, s.registryFailure(ctx, err, "application lookup")
	}
	facts.applicationStatus = status
	return facts, nil
}

// reserveRelated reserves up to two available same-district plots that share
// the assigned plot's priority and pass the relatedness check. Candidates
// are taken in store order without further ranking. Any failure here is
// logged and swallowed.
func (s *Service) reserveRelated(ctx context.Context, assigned *models.Plot, now time.Time, actor string) []*models.Plot {
	candidates, err := s.plots.ListAvailableByDistrict(ctx, assigned.DistrictID)
	if err != nil {
		s.logger.WarnContext(ctx, "related plot lookup failed",
			"district_id", assigned.DistrictID, "error", err)
		return nil
	}
	var reserved []*models.Plot
	for _, candidate := range candidates {
		if len(reserved) == maxRelatedReservations {
			break
		}
		if candidate.ID == assigned.ID || candidate.Priority != assigned.Priority {
			continue
		}
		if !isRelated(assigned, candidate) {
			continue
		}
		if err := candidate.CanReserve(); err != nil {
			continue
		}
		candidate.ApplyReservation(now, actor)
		candidate.AppendNote(now, fmt.Sprintf("reserved as related to plot %s", assigned.Number))
		if err := s.plots.Update(ctx, candidate); err != nil {
			s.logger.WarnContext(ctx, "related plot reservation failed",
				"plot_id", candidate.ID, "error", err)
			break
		}
		reserved = append(reserved, candidate)
	}
	return reserved
}
