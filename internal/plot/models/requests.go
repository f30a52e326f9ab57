package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "kleingarten/pkg/domain"
)

// CreatePlotRequest creates a plot in the available state.
type CreatePlotRequest struct {
	DistrictID      id.DistrictID    `json:"district_id"`
	Number          string           `json:"number"`
	Area            decimal.Decimal  `json:"area"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	SpecialFeatures string           `json:"special_features,omitempty"`
	HasWater        bool             `json:"has_water"`
	HasElectricity  bool             `json:"has_electricity"`
	Priority        int              `json:"priority"`
}

// AssignPlotRequest grants a plot to exactly one of a person or an
// application. PlotID comes from the URL, not the body.
type AssignPlotRequest struct {
	PlotID              id.PlotID         `json:"-"`
	PersonID            *id.PersonID      `json:"person_id,omitempty"`
	ApplicationID       *id.ApplicationID `json:"application_id,omitempty"`
	AssignmentDate      *time.Time        `json:"assignment_date,omitempty"`
	AssignmentNotes     string            `json:"assignment_notes,omitempty"`
	PriorityOverride    *int              `json:"priority_override,omitempty"`
	ForceAssignment     bool              `json:"force_assignment"`
	ReserveRelatedPlots bool              `json:"reserve_related_plots"`
}

// UpdatePlotRequest mutates mutable plot attributes. Nil fields are left
// unchanged (partial update).
type UpdatePlotRequest struct {
	PlotID          id.PlotID        `json:"-"`
	Area            *decimal.Decimal `json:"area,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	SpecialFeatures *string          `json:"special_features,omitempty"`
	HasWater        *bool            `json:"has_water,omitempty"`
	HasElectricity  *bool            `json:"has_electricity,omitempty"`
	Priority        *int             `json:"priority,omitempty"`
}

// DeletePlotRequest removes a plot outright when safe, or decommissions it
// in place when linked records exist.
type DeletePlotRequest struct {
	PlotID                      id.PlotID `json:"-"`
	DeletedBy                   string    `json:"deleted_by,omitempty"`
	ForceDelete                 bool      `json:"force_delete"`
	DeletionReason              string    `json:"deletion_reason,omitempty"`
	TransferExistingAssignments bool      `json:"transfer_existing_assignments"`
}

// DeletionOutcome says which branch of the deletion decision table ran.
type DeletionOutcome string

const (
	// DeletionOutcomeHardDeleted means the plot was removed and the district
	// counter decremented.
	DeletionOutcomeHardDeleted DeletionOutcome = "hard_deleted"
	// DeletionOutcomeDecommissioned means the plot was retired in place with
	// its history preserved.
	DeletionOutcomeDecommissioned DeletionOutcome = "decommissioned"
)

// DeletionResult reports what the deletion command did.
type DeletionResult struct {
	Outcome          DeletionOutcome `json:"outcome"`
	Plot             *Plot           `json:"plot,omitempty"`
	TransferredTo    *Plot           `json:"transferred_to,omitempty"`
	DistrictAdjusted bool            `json:"district_adjusted"`
}
