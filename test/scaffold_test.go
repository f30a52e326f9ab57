package test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applicantModel "kleingarten/internal/applicant/models"
	applicantstore "kleingarten/internal/applicant/store"
	"kleingarten/internal/audit"
	districtModel "kleingarten/internal/district/models"
	districtstore "kleingarten/internal/district/store"
	jwttoken "kleingarten/internal/jwt_token"
	"kleingarten/internal/plot"
	plotModel "kleingarten/internal/plot/models"
	"kleingarten/internal/plot/service"
	plotstore "kleingarten/internal/plot/store/plot"
	httptransport "kleingarten/internal/transport/http"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/testutil"
)

type stack struct {
	router     http.Handler
	token      string
	districtID id.DistrictID
	personID   id.PersonID
}

// newStack assembles the whole HTTP surface on in-memory stores, the same
// wiring cmd/server uses without postgres.
func newStack(t *testing.T) *stack {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Now().UTC()

	districts := districtstore.NewInMemory()
	districtID := id.NewDistrictID()
	require.NoError(t, districts.Seed(t.Context(), &districtModel.District{
		ID:        districtID,
		Name:      "Bezirk Nord",
		Status:    districtModel.DistrictStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	applicants := applicantstore.NewInMemory()
	personID := id.NewPersonID()
	require.NoError(t, applicants.SeedPerson(t.Context(), &applicantModel.Person{
		ID:       personID,
		FullName: "Erika Vogel",
	}))

	publisher := audit.NewPublisher(audit.NewInMemoryStore())
	svc, err := plot.NewService(plotstore.NewInMemory(), districts, applicants,
		service.WithLogger(logger),
		service.WithAuditPublisher(publisher),
	)
	require.NoError(t, err)

	jwtService := jwttoken.NewJWTService("e2e-secret", "kleingarten", "kleingarten-api")
	token, err := jwtService.GenerateAccessToken("e.vogel", "verwalter", time.Hour)
	require.NoError(t, err)

	handler := plot.NewHandler(svc, publisher, logger, nil, jwtService)
	return &stack{
		router:     httptransport.NewRouter(handler, nil),
		token:      "Bearer " + token,
		districtID: districtID,
		personID:   personID,
	}
}

func (s *stack) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	req := testutil.NewJSONRequest(t, method, path, body)
	req.Header.Set("Authorization", s.token)
	return testutil.DoRequest(s.router, req).Result()
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestPlotLifecycleOverHTTP(t *testing.T) {
	testutil.Given(t, "the assembled HTTP surface", func(t *testing.T) {
		s := newStack(t)

		testutil.When(t, "a client calls without a token", func(t *testing.T) {
			req := testutil.NewRequest(t, http.MethodGet, "/plots/statistics")
			rec := testutil.DoRequest(s.router, req)

			testutil.Then(t, "the request is rejected", func(t *testing.T) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			})
		})

		testutil.When(t, "an administrator walks a plot through its lifecycle", func(t *testing.T) {
			resp := s.do(t, http.MethodPost, "/plots", plotModel.CreatePlotRequest{
				DistrictID: s.districtID,
				Number:     "A-101",
				Area:       decimal.NewFromInt(320),
				HasWater:   true,
			})
			require.Equal(t, http.StatusCreated, resp.StatusCode)
			created := decode[plotModel.Plot](t, resp)
			require.Equal(t, plotModel.PlotStatusAvailable, created.Status)

			resp = s.do(t, http.MethodPost, "/plots/"+created.ID.String()+"/assign",
				plotModel.AssignPlotRequest{PersonID: &s.personID})
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assigned := decode[plotModel.Plot](t, resp)

			testutil.Then(t, "the plot is assigned with a dated stamp", func(t *testing.T) {
				assert.Equal(t, plotModel.PlotStatusAssigned, assigned.Status)
				assert.NotNil(t, assigned.AssignedOn)
			})

			testutil.Then(t, "statistics reflect the assignment", func(t *testing.T) {
				resp := s.do(t, http.MethodGet, "/plots/statistics", nil)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				stats := decode[plotModel.PlotStatistics](t, resp)
				assert.Equal(t, 1, stats.Total)
				assert.Equal(t, 1, stats.ByStatus[plotModel.PlotStatusAssigned])
				assert.InDelta(t, 100.0, stats.AssignedPercent, 0.001)
			})

			testutil.Then(t, "the audit trail names the acting user", func(t *testing.T) {
				resp := s.do(t, http.MethodGet, "/plots/"+created.ID.String()+"/audit", nil)
				require.Equal(t, http.StatusOK, resp.StatusCode)
				events := decode[[]audit.Event](t, resp)
				require.Len(t, events, 2)
				assert.Equal(t, audit.EventPlotCreated, events[0].Action)
				assert.Equal(t, audit.EventPlotAssigned, events[1].Action)
				assert.Equal(t, "e.vogel", events[1].Actor)
			})
		})

		testutil.When(t, "probing the operational endpoints", func(t *testing.T) {
			req := testutil.NewRequest(t, http.MethodGet, "/healthz")
			rec := testutil.DoRequest(s.router, req)

			testutil.Then(t, "the service reports healthy", func(t *testing.T) {
				assert.Equal(t, http.StatusOK, rec.Code)
			})
		})
	})
}
