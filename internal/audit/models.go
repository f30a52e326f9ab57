package audit

import (
	"time"

	"github.com/google/uuid"

	id "kleingarten/pkg/domain"
)

// Action names for plot lifecycle events.
const (
	EventPlotCreated        = "plot_created"
	EventPlotAssigned       = "plot_assigned"
	EventPlotUpdated        = "plot_updated"
	EventPlotReserved       = "plot_reserved"
	EventPlotTransferred    = "plot_transferred"
	EventPlotDeleted        = "plot_deleted"
	EventPlotDecommissioned = "plot_decommissioned"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Action     string         `json:"action"`
	PlotID     id.PlotID      `json:"plot_id"`
	DistrictID *id.DistrictID `json:"district_id,omitempty"`
	// Actor is the acting user, stored verbatim from the request context.
	Actor     string `json:"actor,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
