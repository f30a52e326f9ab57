package plot

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
)

type PlotStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *PlotStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestPlotStoreSuite(t *testing.T) {
	suite.Run(t, new(PlotStoreSuite))
}

func (s *PlotStoreSuite) newPlot(districtID id.DistrictID, number string, area int64) *models.Plot {
	plot, err := models.NewPlot(id.NewPlotID(), districtID, number,
		decimal.NewFromInt(area), time.Now(), "test")
	s.Require().NoError(err)
	return plot
}

// TestCreationAndLookups verifies the store creates and retrieves plots.
func (s *PlotStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds plot by ID", func() {
		plot := s.newPlot(id.NewDistrictID(), "A-1", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))
		s.Equal(int64(1), plot.Version)

		found, err := s.store.FindByID(s.ctx, plot.ID)
		s.Require().NoError(err)
		s.Equal(plot.Number, found.Number)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindByID(s.ctx, id.NewPlotID())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("handed-out plots are clones", func() {
		plot := s.newPlot(id.NewDistrictID(), "A-2", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))

		found, err := s.store.FindByID(s.ctx, plot.ID)
		s.Require().NoError(err)
		found.Number = "TAMPERED"

		again, err := s.store.FindByID(s.ctx, plot.ID)
		s.Require().NoError(err)
		s.Equal("A-2", again.Number)
	})
}

// TestNumberUniqueness verifies per-district case-normalized uniqueness.
func (s *PlotStoreSuite) TestNumberUniqueness() {
	s.Run("rejects duplicate number in the same district", func() {
		districtID := id.NewDistrictID()
		s.Require().NoError(s.store.Create(s.ctx, s.newPlot(districtID, "B-1", 300)))

		err := s.store.Create(s.ctx, s.newPlot(districtID, "b-1", 280))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("allows the same number in another district", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newPlot(id.NewDistrictID(), "B-2", 300)))
		s.NoError(s.store.Create(s.ctx, s.newPlot(id.NewDistrictID(), "B-2", 300)))
	})

	s.Run("frees the number after removal", func() {
		districtID := id.NewDistrictID()
		plot := s.newPlot(districtID, "B-3", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))
		s.Require().NoError(s.store.Remove(s.ctx, plot))

		s.NoError(s.store.Create(s.ctx, s.newPlot(districtID, "B-3", 300)))
	})
}

// TestOptimisticConcurrency verifies the version token guards every write.
func (s *PlotStoreSuite) TestOptimisticConcurrency() {
	s.Run("update bumps the version", func() {
		plot := s.newPlot(id.NewDistrictID(), "C-1", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))

		plot.Priority = 7
		s.Require().NoError(s.store.Update(s.ctx, plot))
		s.Equal(int64(2), plot.Version)
	})

	s.Run("stale version conflicts", func() {
		plot := s.newPlot(id.NewDistrictID(), "C-2", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))

		first, err := s.store.FindByID(s.ctx, plot.ID)
		s.Require().NoError(err)
		second, err := s.store.FindByID(s.ctx, plot.ID)
		s.Require().NoError(err)

		first.Priority = 1
		s.Require().NoError(s.store.Update(s.ctx, first))

		second.Priority = 2
		s.Require().ErrorIs(s.store.Update(s.ctx, second), sentinel.ErrConflict)
	})

	s.Run("stale version blocks removal", func() {
		plot := s.newPlot(id.NewDistrictID(), "C-3", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))

		stale := plot.Clone()
		plot.Priority = 5
		s.Require().NoError(s.store.Update(s.ctx, plot))

		s.Require().ErrorIs(s.store.Remove(s.ctx, stale), sentinel.ErrConflict)
	})

	s.Run("rejects writes that break entity invariants", func() {
		plot := s.newPlot(id.NewDistrictID(), "C-4", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))

		plot.Status = models.PlotStatusAssigned // AssignedOn left nil
		s.Error(s.store.Update(s.ctx, plot))
	})
}

// TestSoftDelete verifies removed plots disappear from every read path.
func (s *PlotStoreSuite) TestSoftDelete() {
	s.Run("removed plot is invisible to reads", func() {
		districtID := id.NewDistrictID()
		plot := s.newPlot(districtID, "D-1", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))
		s.Require().NoError(s.store.Remove(s.ctx, plot))

		_, err := s.store.FindByID(s.ctx, plot.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)

		listed, err := s.store.List(s.ctx, &districtID)
		s.Require().NoError(err)
		s.Empty(listed)
	})

	s.Run("double removal is not found", func() {
		plot := s.newPlot(id.NewDistrictID(), "D-2", 300)
		s.Require().NoError(s.store.Create(s.ctx, plot))
		s.Require().NoError(s.store.Remove(s.ctx, plot))
		s.ErrorIs(s.store.Remove(s.ctx, plot), sentinel.ErrNotFound)
	})
}

// TestListings verifies the candidate scans the commands rely on.
func (s *PlotStoreSuite) TestListings() {
	s.Run("available listing filters by district and status, ordered by number", func() {
		districtID := id.NewDistrictID()
		other := id.NewDistrictID()

		second := s.newPlot(districtID, "E-2", 300)
		first := s.newPlot(districtID, "E-1", 300)
		reserved := s.newPlot(districtID, "E-3", 300)
		s.Require().NoError(s.store.Create(s.ctx, second))
		s.Require().NoError(s.store.Create(s.ctx, first))
		s.Require().NoError(s.store.Create(s.ctx, reserved))
		s.Require().NoError(s.store.Create(s.ctx, s.newPlot(other, "E-4", 300)))

		reserved.ApplyReservation(time.Now(), "test")
		s.Require().NoError(s.store.Update(s.ctx, reserved))

		available, err := s.store.ListAvailableByDistrict(s.ctx, districtID)
		s.Require().NoError(err)
		s.Require().Len(available, 2)
		s.Equal("E-1", available[0].Number)
		s.Equal("E-2", available[1].Number)
	})

	s.Run("nil district lists everything", func() {
		store := NewInMemory()
		s.Require().NoError(store.Create(s.ctx, s.newPlot(id.NewDistrictID(), "F-1", 300)))
		s.Require().NoError(store.Create(s.ctx, s.newPlot(id.NewDistrictID(), "F-2", 300)))

		all, err := store.List(s.ctx, nil)
		s.Require().NoError(err)
		s.Len(all, 2)
	})
}
