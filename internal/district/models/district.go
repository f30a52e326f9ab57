package models

import (
	"time"

	id "kleingarten/pkg/domain"
)

// DistrictStatus is the lifecycle state of a district.
type DistrictStatus string

const (
	DistrictStatusActive             DistrictStatus = "active"
	DistrictStatusInactive           DistrictStatus = "inactive"
	DistrictStatusSuspended          DistrictStatus = "suspended"
	DistrictStatusUnderRestructuring DistrictStatus = "under_restructuring"
	DistrictStatusArchived           DistrictStatus = "archived"
)

// Valid reports whether the status is one of the known district states.
func (s DistrictStatus) Valid() bool {
	switch s {
	case DistrictStatusActive, DistrictStatusInactive, DistrictStatusSuspended,
		DistrictStatusUnderRestructuring, DistrictStatusArchived:
		return true
	}
	return false
}

// District is a capacity-bounded container of plots (Bezirk).
//
// Invariants:
//   - PlotCount never goes below zero
//   - PlotCount changes only on hard plot add/remove, never on status-only
//     transitions, and only inside the same transaction as the plot mutation
//
// Districts are created and renamed by an external process; this engine only
// touches the plot counter and reads the capacity-relevant status.
type District struct {
	ID        id.DistrictID  `json:"id"`
	Name      string         `json:"name"`
	Status    DistrictStatus `json:"status"`
	PlotCount int            `json:"plot_count"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// CanAcceptNewPlots is the capacity gate: a district accepts new plots and
// new assignments only while active or under restructuring.
func (d *District) CanAcceptNewPlots() bool {
	return d.Status == DistrictStatusActive || d.Status == DistrictStatusUnderRestructuring
}
