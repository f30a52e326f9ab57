package models

// PlotStatus is the lifecycle state of a plot. Decommissioned is terminal.
type PlotStatus string

const (
	PlotStatusAvailable        PlotStatus = "available"
	PlotStatusReserved         PlotStatus = "reserved"
	PlotStatusAssigned         PlotStatus = "assigned"
	PlotStatusUnderDevelopment PlotStatus = "under_development"
	PlotStatusPendingApproval  PlotStatus = "pending_approval"
	PlotStatusUnavailable      PlotStatus = "unavailable"
	PlotStatusDecommissioned   PlotStatus = "decommissioned"
)

// allowedTransitions is the legal-transition table of the status machine.
// Decommissioning is handled separately: every non-terminal status may
// decommission.
var allowedTransitions = map[PlotStatus][]PlotStatus{
	PlotStatusAvailable:        {PlotStatusReserved, PlotStatusAssigned, PlotStatusUnderDevelopment, PlotStatusPendingApproval, PlotStatusUnavailable},
	PlotStatusReserved:         {PlotStatusAssigned, PlotStatusAvailable},
	PlotStatusAssigned:         {PlotStatusAvailable, PlotStatusUnavailable},
	PlotStatusUnderDevelopment: {PlotStatusAvailable, PlotStatusPendingApproval},
	PlotStatusPendingApproval:  {PlotStatusAvailable, PlotStatusUnavailable},
	PlotStatusUnavailable:      {PlotStatusAvailable},
	PlotStatusDecommissioned:   {},
}

// Valid reports whether the status is one of the seven known states.
func (s PlotStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are possible.
func (s PlotStatus) Terminal() bool {
	return s == PlotStatusDecommissioned
}

// CanTransitionTo reports whether the machine allows moving to target.
func (s PlotStatus) CanTransitionTo(target PlotStatus) bool {
	if target == PlotStatusDecommissioned {
		return !s.Terminal()
	}
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// AvailableForAssignment reports whether an assignment may start from this
// status without forcing.
func (s PlotStatus) AvailableForAssignment() bool {
	return s == PlotStatusAvailable || s == PlotStatusReserved
}
