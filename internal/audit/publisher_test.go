package audit

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "kleingarten/pkg/domain"
	"kleingarten/pkg/requestcontext"
)

func TestPublisherStampsContextValues(t *testing.T) {
	store := NewInMemoryStore()
	publisher := NewPublisher(store)

	fixed := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)
	ctx = requestcontext.WithActor(ctx, "verwalter")
	ctx = requestcontext.WithRequestID(ctx, "req-123")

	plotID := id.NewPlotID()
	require.NoError(t, publisher.Emit(ctx, Event{Action: EventPlotAssigned, PlotID: plotID}))

	events, err := store.ListByPlot(ctx, plotID)
	require.NoError(t, err)
	require.Len(t, events, 1)

	event := events[0]
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, fixed, event.Timestamp)
	assert.Equal(t, "verwalter", event.Actor)
	assert.Equal(t, "req-123", event.RequestID)
	assert.Equal(t, EventPlotAssigned, event.Action)
}

func TestPublisherKeepsExplicitActor(t *testing.T) {
	store := NewInMemoryStore()
	publisher := NewPublisher(store)
	ctx := requestcontext.WithActor(context.Background(), "middleware-actor")

	plotID := id.NewPlotID()
	require.NoError(t, publisher.Emit(ctx, Event{
		Action: EventPlotDeleted,
		PlotID: plotID,
		Actor:  "explicit-actor",
	}))

	events, err := store.ListByPlot(ctx, plotID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "explicit-actor", events[0].Actor)
}

func TestInMemoryStoreFiltersByPlot(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	target := id.NewPlotID()
	other := id.NewPlotID()
	require.NoError(t, store.Append(ctx, Event{Action: EventPlotCreated, PlotID: target}))
	require.NoError(t, store.Append(ctx, Event{Action: EventPlotCreated, PlotID: other}))
	require.NoError(t, store.Append(ctx, Event{Action: EventPlotUpdated, PlotID: target}))

	events, err := store.ListByPlot(ctx, target)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Len(t, store.All(), 3)
}
