package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	applicantmodels "kleingarten/internal/applicant/models"
	districtmodels "kleingarten/internal/district/models"
	"kleingarten/internal/plot/models"
	dErrors "kleingarten/pkg/domain-errors"
)

// Plausibility bands for the update command. These catch data-entry mistakes,
// not physical impossibilities.
var (
	minPlausibleArea = decimal.NewFromInt(50)
	maxPlausibleArea = decimal.NewFromInt(2000)
	minPricePerSqm   = decimal.RequireFromString("0.50")
	maxPricePerSqm   = decimal.NewFromInt(50)
)

// assignmentFacts carries the registry lookups the assignment validator
// needs. The command resolves them up front so the validator stays pure.
type assignmentFacts struct {
	personSupplied      bool
	applicationSupplied bool
	applicationStatus   applicantmodels.ApplicationStatus
}

// validateAssignment checks every assignment precondition and returns the
// full list of violations so the caller sees them all at once.
func validateAssignment(plot *models.Plot, district *districtmodels.District, facts assignmentFacts, force bool) []string {
	var violations []string
	if err := plot.CanAssign(force); err != nil {
		violations = append(violations, dErrors.MessageOf(err))
	}
	if !district.CanAcceptNewPlots() {
		violations = append(violations, fmt.Sprintf(
			"district %q is not accepting new assignments (status %s)", district.Name, district.Status))
	}
	switch {
	case facts.personSupplied == facts.applicationSupplied:
		violations = append(violations, "exactly one of personId or applicationId must be supplied")
	case facts.applicationSupplied && !facts.applicationStatus.Assignable():
		violations = append(violations, fmt.Sprintf(
			"application is not in an assignable status (%s)", facts.applicationStatus))
	}
	return violations
}

// validateUpdate checks the plausibility bands for a partial update against
// the merged state of the plot and the request.
func validateUpdate(plot *models.Plot, req models.UpdatePlotRequest) []string {
	var violations []string
	if req.Area != nil {
		switch {
		case !req.Area.IsPositive():
			violations = append(violations, "area must be positive")
		case req.Area.LessThan(minPlausibleArea) || req.Area.GreaterThan(maxPlausibleArea):
			violations = append(violations, fmt.Sprintf(
				"area %s m² is outside the plausible range (%s-%s m²)", req.Area, minPlausibleArea, maxPlausibleArea))
		}
	}
	if req.Price != nil && req.Price.IsNegative() {
		violations = append(violations, "price must not be negative")
	}
	if req.Area != nil || req.Price != nil {
		area := plot.Area
		if req.Area != nil {
			area = *req.Area
		}
		price := plot.Price
		if req.Price != nil {
			price = req.Price
		}
		if price != nil && area.IsPositive() && !price.IsNegative() {
			perSqm := price.Div(area)
			if perSqm.LessThan(minPricePerSqm) || perSqm.GreaterThan(maxPricePerSqm) {
				violations = append(violations, fmt.Sprintf(
					"price per m² (%s) is outside the plausible range (%s-%s)",
					perSqm.Round(2), minPricePerSqm, maxPricePerSqm))
			}
		}
	}
	if req.Priority != nil && *req.Priority < 0 {
		violations = append(violations, "priority must not be negative")
	}
	return violations
}

// validateDeletion evaluates the deletion decision table without mutating
// anything.
func validateDeletion(plot *models.Plot, linkedApplications int, req models.DeletePlotRequest) []string {
	var violations []string
	if (plot.Status == models.PlotStatusAssigned || plot.Status == models.PlotStatusReserved) && req.DeletionReason == "" {
		violations = append(violations, "a deletion reason is required for an assigned or reserved plot")
	}
	if plot.Status == models.PlotStatusAssigned && !req.TransferExistingAssignments && !req.ForceDelete {
		violations = append(violations, "plot is currently assigned; transfer the assignment or use forceDelete")
	}
	if linkedApplications > 0 && !req.ForceDelete {
		violations = append(violations, fmt.Sprintf(
			"cannot delete: %d linked application(s) exist; use forceDelete to decommission instead", linkedApplications))
	}
	return violations
}
