package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "kleingarten/pkg/domain"
)

var testNow = time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)

func newTestPlot(t *testing.T, number string) *Plot {
	t.Helper()
	plot, err := NewPlot(id.NewPlotID(), id.NewDistrictID(), number, decimal.NewFromInt(300), testNow, "test")
	require.NoError(t, err)
	return plot
}

func TestNewPlot(t *testing.T) {
	t.Run("normalizes the number", func(t *testing.T) {
		plot := newTestPlot(t, "  a-101 ")
		assert.Equal(t, "A-101", plot.Number)
		assert.Equal(t, PlotStatusAvailable, plot.Status)
		assert.NoError(t, plot.CheckInvariants())
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := NewPlot(id.NewPlotID(), id.NewDistrictID(), "   ", decimal.NewFromInt(300), testNow, "test")
		assert.Error(t, err)
	})

	t.Run("rejects overlong number", func(t *testing.T) {
		_, err := NewPlot(id.NewPlotID(), id.NewDistrictID(), "A-12345678901234567890", decimal.NewFromInt(300), testNow, "test")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive area", func(t *testing.T) {
		_, err := NewPlot(id.NewPlotID(), id.NewDistrictID(), "A-1", decimal.Zero, testNow, "test")
		assert.Error(t, err)
	})
}

func TestStatusMachine(t *testing.T) {
	t.Run("available and reserved may assign", func(t *testing.T) {
		assert.True(t, PlotStatusAvailable.AvailableForAssignment())
		assert.True(t, PlotStatusReserved.AvailableForAssignment())
		assert.False(t, PlotStatusUnavailable.AvailableForAssignment())
		assert.False(t, PlotStatusAssigned.AvailableForAssignment())
	})

	t.Run("every non-terminal status may decommission", func(t *testing.T) {
		for _, status := range []PlotStatus{
			PlotStatusAvailable, PlotStatusReserved, PlotStatusAssigned,
			PlotStatusUnderDevelopment, PlotStatusPendingApproval, PlotStatusUnavailable,
		} {
			assert.True(t, status.CanTransitionTo(PlotStatusDecommissioned), "from %s", status)
		}
		assert.False(t, PlotStatusDecommissioned.CanTransitionTo(PlotStatusDecommissioned))
	})

	t.Run("decommissioned allows nothing", func(t *testing.T) {
		for _, target := range []PlotStatus{
			PlotStatusAvailable, PlotStatusReserved, PlotStatusAssigned, PlotStatusUnavailable,
		} {
			assert.False(t, PlotStatusDecommissioned.CanTransitionTo(target), "to %s", target)
		}
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		assert.False(t, PlotStatus("nonsense").Valid())
		assert.True(t, PlotStatusAvailable.Valid())
	})
}

func TestAssignment(t *testing.T) {
	t.Run("sets assigned on and keeps the invariant", func(t *testing.T) {
		plot := newTestPlot(t, "A-1")
		on := testNow.AddDate(0, -1, 0)
		require.NoError(t, plot.Assign(on, false, testNow, "test"))

		assert.Equal(t, PlotStatusAssigned, plot.Status)
		require.NotNil(t, plot.AssignedOn)
		assert.Equal(t, on, *plot.AssignedOn)
		assert.NoError(t, plot.CheckInvariants())
	})

	t.Run("unavailable requires force", func(t *testing.T) {
		plot := newTestPlot(t, "A-2")
		plot.Status = PlotStatusUnavailable

		assert.Error(t, plot.CanAssign(false))
		assert.NoError(t, plot.CanAssign(true))
	})

	t.Run("force never resurrects a decommissioned plot", func(t *testing.T) {
		plot := newTestPlot(t, "A-3")
		plot.ApplyDecommission(testNow, "test")
		assert.Error(t, plot.CanAssign(true))
	})

	t.Run("decommission clears assigned on", func(t *testing.T) {
		plot := newTestPlot(t, "A-4")
		require.NoError(t, plot.Assign(testNow, false, testNow, "test"))
		require.NoError(t, plot.CanDecommission())
		plot.ApplyDecommission(testNow, "test")

		assert.Nil(t, plot.AssignedOn)
		assert.NoError(t, plot.CheckInvariants())
	})
}

func TestAppendNote(t *testing.T) {
	plot := newTestPlot(t, "B-1")

	plot.AppendNote(testNow, "first entry")
	assert.Equal(t, "[2024-05-17] first entry", plot.Notes)

	plot.AppendNote(testNow.AddDate(0, 0, 1), "second entry")
	assert.Equal(t, "[2024-05-17] first entry\n[2024-05-18] second entry", plot.Notes)

	plot.AppendNote(testNow, "   ")
	assert.Equal(t, "[2024-05-17] first entry\n[2024-05-18] second entry", plot.Notes)
}

func TestNumericSuffix(t *testing.T) {
	cases := []struct {
		number string
		suffix int
		ok     bool
	}{
		{"A-103", 103, true},
		{"17", 17, true},
		{"B2-05", 5, true},
		{"GARTEN", 0, false},
	}
	for _, tc := range cases {
		plot := newTestPlot(t, tc.number)
		suffix, ok := plot.NumericSuffix()
		assert.Equal(t, tc.ok, ok, tc.number)
		assert.Equal(t, tc.suffix, suffix, tc.number)
	}
}

func TestCheckInvariants(t *testing.T) {
	plot := newTestPlot(t, "C-1")

	plot.Status = PlotStatusAssigned
	assert.Error(t, plot.CheckInvariants(), "assigned without assigned on")

	plot.AssignedOn = &testNow
	assert.NoError(t, plot.CheckInvariants())

	plot.Status = PlotStatusAvailable
	assert.Error(t, plot.CheckInvariants(), "assigned on without assigned status")

	plot.AssignedOn = nil
	negative := decimal.NewFromInt(-1)
	plot.Price = &negative
	assert.Error(t, plot.CheckInvariants(), "negative price")
}

func TestClone(t *testing.T) {
	plot := newTestPlot(t, "D-1")
	price := decimal.NewFromInt(1200)
	plot.Price = &price
	require.NoError(t, plot.Assign(testNow, false, testNow, "test"))

	clone := plot.Clone()
	*clone.Price = decimal.NewFromInt(9999)
	*clone.AssignedOn = testNow.AddDate(1, 0, 0)

	assert.True(t, plot.Price.Equal(price))
	assert.Equal(t, testNow, *plot.AssignedOn)
}
