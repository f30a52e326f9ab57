package audit

import (
	"context"

	"github.com/google/uuid"

	id "kleingarten/pkg/domain"
	"kleingarten/pkg/requestcontext"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

// Emit stamps missing metadata from the request context and appends the
// event. The caller decides whether a failure is fatal for its operation.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.Timestamp.IsZero() {
		base.Timestamp = requestcontext.Now(ctx)
	}
	if base.Actor == "" {
		base.Actor = requestcontext.Actor(ctx)
	}
	if base.RequestID == "" {
		base.RequestID = requestcontext.RequestID(ctx)
	}
	return p.store.Append(ctx, base)
}

// List returns the audit trail for one plot.
func (p *Publisher) List(ctx context.Context, plotID id.PlotID) ([]Event, error) {
	return p.store.ListByPlot(ctx, plotID)
}
