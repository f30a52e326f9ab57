package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	districtmodels "kleingarten/internal/district/models"
	"kleingarten/internal/plot/models"
	"kleingarten/internal/plot/service/mocks"
	id "kleingarten/pkg/domain"
	dErrors "kleingarten/pkg/domain-errors"
	"kleingarten/pkg/platform/sentinel"
	"kleingarten/pkg/requestcontext"
)

// =============================================================================
// Failure Path Test Suite
// =============================================================================
// Justification for mocks: infrastructure failures (store outages, stale
// version tokens, broken audit sinks) cannot be provoked from the in-memory
// stores. These tests pin the error translation policy: sentinels become
// coded domain errors, unknown errors collapse to a generic internal failure,
// and best-effort collaborators never fail a command.

type FailurePathSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockPlots      *mocks.MockPlotStore
	mockDistricts  *mocks.MockDistrictStore
	mockApplicants *mocks.MockApplicantRegistry
	mockAudit      *mocks.MockAuditPublisher
	service        *Service
}

func TestFailurePathSuite(t *testing.T) {
	suite.Run(t, new(FailurePathSuite))
}

func (s *FailurePathSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlots = mocks.NewMockPlotStore(s.ctrl)
	s.mockDistricts = mocks.NewMockDistrictStore(s.ctrl)
	s.mockApplicants = mocks.NewMockApplicantRegistry(s.ctrl)
	s.mockAudit = mocks.NewMockAuditPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var err error
	s.service, err = New(
		s.mockPlots,
		s.mockDistricts,
		s.mockApplicants,
		WithLogger(logger),
		WithAuditPublisher(s.mockAudit),
	)
	s.Require().NoError(err)
}

func (s *FailurePathSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FailurePathSuite) availablePlot(districtID id.DistrictID) *models.Plot {
	now := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	plot, err := models.NewPlot(id.NewPlotID(), districtID, "A-1", decimal.NewFromInt(300), now, "seed")
	s.Require().NoError(err)
	plot.Version = 1
	return plot
}

func (s *FailurePathSuite) activeDistrict(districtID id.DistrictID) *districtmodels.District {
	return &districtmodels.District{ID: districtID, Name: "Nord", Status: districtmodels.DistrictStatusActive}
}

func (s *FailurePathSuite) TestStoreOutageIsGeneric() {
	ctx := context.Background()
	s.mockPlots.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := s.service.GetPlot(ctx, id.NewPlotID())
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Equal("operation failed, try again", dErrors.MessageOf(err))
	s.NotContains(dErrors.MessageOf(err), "tcp")
}

func (s *FailurePathSuite) TestStaleVersionSurfacesConflict() {
	ctx := context.Background()
	districtID := id.NewDistrictID()
	plot := s.availablePlot(districtID)
	personID := id.NewPersonID()

	s.mockPlots.EXPECT().FindByID(gomock.Any(), plot.ID).Return(plot, nil)
	s.mockDistricts.EXPECT().FindByID(gomock.Any(), districtID).Return(s.activeDistrict(districtID), nil)
	s.mockApplicants.EXPECT().PersonExists(gomock.Any(), personID).Return(true, nil)
	s.mockPlots.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict)

	_, err := s.service.AssignPlot(ctx, models.AssignPlotRequest{PlotID: plot.ID, PersonID: &personID})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Contains(dErrors.MessageOf(err), "retry")
}

func (s *FailurePathSuite) TestRelatedLookupFailureNeverFailsAssignment() {
	ctx := context.Background()
	districtID := id.NewDistrictID()
	plot := s.availablePlot(districtID)
	personID := id.NewPersonID()

	s.mockPlots.EXPECT().FindByID(gomock.Any(), plot.ID).Return(plot, nil)
	s.mockDistricts.EXPECT().FindByID(gomock.Any(), districtID).Return(s.activeDistrict(districtID), nil)
	s.mockApplicants.EXPECT().PersonExists(gomock.Any(), personID).Return(true, nil)
	s.mockPlots.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPlots.EXPECT().ListAvailableByDistrict(gomock.Any(), districtID).Return(nil, errors.New("query timeout"))
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	assigned, err := s.service.AssignPlot(ctx, models.AssignPlotRequest{
		PlotID:              plot.ID,
		PersonID:            &personID,
		ReserveRelatedPlots: true,
	})
	s.Require().NoError(err)
	s.Equal(models.PlotStatusAssigned, assigned.Status)
}

func (s *FailurePathSuite) TestAuditFailureNeverFailsCommand() {
	ctx := context.Background()
	districtID := id.NewDistrictID()
	plot := s.availablePlot(districtID)
	personID := id.NewPersonID()

	s.mockPlots.EXPECT().FindByID(gomock.Any(), plot.ID).Return(plot, nil)
	s.mockDistricts.EXPECT().FindByID(gomock.Any(), districtID).Return(s.activeDistrict(districtID), nil)
	s.mockApplicants.EXPECT().PersonExists(gomock.Any(), personID).Return(true, nil)
	s.mockPlots.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("outbox full"))

	_, err := s.service.AssignPlot(ctx, models.AssignPlotRequest{PlotID: plot.ID, PersonID: &personID})
	s.NoError(err)
}

func (s *FailurePathSuite) TestStatsCacheHitSkipsStores() {
	ctx := context.Background()
	cache := mocks.NewMockStatsCache(s.ctrl)
	service, err := New(s.mockPlots, s.mockDistricts, s.mockApplicants, WithStatsCache(cache))
	s.Require().NoError(err)

	cached := &models.PlotStatistics{Total: 42}
	cache.EXPECT().Get(gomock.Any(), gomock.Nil()).Return(cached, nil)

	stats, err := service.Statistics(ctx, nil)
	s.Require().NoError(err)
	s.Equal(42, stats.Total)
}

func (s *FailurePathSuite) TestStatsCacheFailureFallsBackToStores() {
	ctx := context.Background()
	cache := mocks.NewMockStatsCache(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service, err := New(s.mockPlots, s.mockDistricts, s.mockApplicants,
		WithLogger(logger), WithStatsCache(cache))
	s.Require().NoError(err)

	cache.EXPECT().Get(gomock.Any(), gomock.Nil()).Return(nil, errors.New("redis down"))
	s.mockPlots.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, nil)
	s.mockDistricts.EXPECT().List(gomock.Any()).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Nil(), gomock.Any()).Return(errors.New("redis down"))

	stats, err := service.Statistics(ctx, nil)
	s.Require().NoError(err)
	s.Equal(0, stats.Total)
}

// The assignment date defaults to the request-scoped clock, which the
// context carries so workers and tests can pin it.
func (s *FailurePathSuite) TestAssignmentDateDefaultsToRequestTime() {
	fixed := time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)
	districtID := id.NewDistrictID()
	plot := s.availablePlot(districtID)
	personID := id.NewPersonID()

	s.mockPlots.EXPECT().FindByID(gomock.Any(), plot.ID).Return(plot, nil)
	s.mockDistricts.EXPECT().FindByID(gomock.Any(), districtID).Return(s.activeDistrict(districtID), nil)
	s.mockApplicants.EXPECT().PersonExists(gomock.Any(), personID).Return(true, nil)
	s.mockPlots.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	s.mockAudit.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

	assigned, err := s.service.AssignPlot(ctx, models.AssignPlotRequest{PlotID: plot.ID, PersonID: &personID})
	s.Require().NoError(err)
	s.Require().NotNil(assigned.AssignedOn)
	s.Equal(fixed, *assigned.AssignedOn)
}
