//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"kleingarten/internal/audit"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/testutil/containers"
)

type OutboxSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *audit.PostgresStore
}

func TestOutboxSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OutboxSuite))
}

func (s *OutboxSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = audit.NewPostgres(s.postgres.DB)
}

func (s *OutboxSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "audit_outbox"))
}

func (s *OutboxSuite) TestAppendAndListByPlot() {
	ctx := context.Background()
	plotID := id.NewPlotID()

	first := audit.Event{
		Timestamp: time.Now().UTC(),
		Action:    audit.EventPlotCreated,
		PlotID:    plotID,
		Actor:     "m.schreiber",
	}
	s.Require().NoError(s.store.Append(ctx, first))
	time.Sleep(5 * time.Millisecond)
	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Timestamp: time.Now().UTC(),
		Action:    audit.EventPlotAssigned,
		PlotID:    plotID,
		Actor:     "m.schreiber",
	}))
	s.Require().NoError(s.store.Append(ctx, audit.Event{
		Action: audit.EventPlotCreated,
		PlotID: id.NewPlotID(),
	}))

	events, err := s.store.ListByPlot(ctx, plotID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(audit.EventPlotCreated, events[0].Action)
	s.Equal(audit.EventPlotAssigned, events[1].Action)
	s.Equal("m.schreiber", events[0].Actor)
}

func (s *OutboxSuite) TestUnpublishedBatchAndMarkPublished() {
	ctx := context.Background()
	plotID := id.NewPlotID()

	for range 5 {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Action: audit.EventPlotUpdated,
			PlotID: plotID,
		}))
	}

	batch, err := s.store.UnpublishedBatch(ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(batch, 3)

	ids := make([]uuid.UUID, 0, len(batch))
	for _, entry := range batch {
		s.Equal(audit.EventPlotUpdated, entry.Action)
		s.NotEmpty(entry.Payload)
		ids = append(ids, entry.ID)
	}
	s.Require().NoError(s.store.MarkPublished(ctx, ids))

	remaining, err := s.store.UnpublishedBatch(ctx, 10)
	s.Require().NoError(err)
	s.Len(remaining, 2)

	// Published rows stay readable as the plot's audit trail.
	events, err := s.store.ListByPlot(ctx, plotID)
	s.Require().NoError(err)
	s.Len(events, 5)
}

func (s *OutboxSuite) TestMarkPublishedWithNoIDsIsNoop() {
	s.NoError(s.store.MarkPublished(context.Background(), nil))
}
