package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	districtmodels "kleingarten/internal/district/models"
	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
)

// Statistics derives counts, area and price aggregates, utility breakdowns,
// and per-district occupancy from current plot state, optionally scoped to
// one district. Read-only. Served from the cache when one is configured.
func (s *Service) Statistics(ctx context.Context, districtID *id.DistrictID) (*models.PlotStatistics, error) {
	ctx, span := s.tracer.Start(ctx, "plot.Statistics")
	defer span.End()
	if s.metrics != nil {
		defer s.metrics.ObserveStatistics(time.Now())
	}

	if s.statsCache != nil {
		cached, err := s.statsCache.Get(ctx, districtID)
		if err != nil {
			s.logger.WarnContext(ctx, "stats cache read failed", "error", err)
		}
		if cached != nil {
			if s.metrics != nil {
				s.metrics.StatsCacheHits.Inc()
			}
			return cached, nil
		}
		if s.metrics != nil {
			s.metrics.StatsCacheMisses.Inc()
		}
	}

	var (
		plots     []*models.Plot
		districts []*districtmodels.District
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plots, err = s.plots.List(gctx, districtID)
		if err != nil {
			return s.wrapPlotErr(gctx, err, "list plots")
		}
		return nil
	})
	g.Go(func() error {
		if districtID != nil {
			district, err := s.districts.FindByID(gctx, *districtID)
			if err != nil {
				return s.wrapDistrictErr(gctx, err, "load district")
			}
			districts = []*districtmodels.District{district}
			return nil
		}
		var err error
		districts, err = s.districts.List(gctx)
		if err != nil {
			return s.wrapDistrictErr(gctx, err, "list districts")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := aggregate(plots, districts, districtID)
	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, districtID, stats); err != nil {
			s.logger.WarnContext(ctx, "stats cache write failed", "error", err)
		}
	}
	return stats, nil
}

// aggregate folds the plot snapshot into a statistics projection. Every
// ratio falls back to 0 when its denominator is 0.
func aggregate(plots []*models.Plot, districts []*districtmodels.District, scope *id.DistrictID) *models.PlotStatistics {
	stats := &models.PlotStatistics{
		ByStatus:        make(map[models.PlotStatus]int),
		ScopeDistrictID: scope,
	}

	occupancy := make([]models.DistrictOccupancy, 0, len(districts))
	index := make(map[id.DistrictID]int, len(districts))
	for _, d := range districts {
		index[d.ID] = len(occupancy)
		occupancy = append(occupancy, models.DistrictOccupancy{DistrictID: d.ID, Name: d.Name})
	}

	var (
		areaSum  decimal.Decimal
		priceSum decimal.Decimal
		minArea  decimal.Decimal
		maxArea  decimal.Decimal
	)
	for _, p := range plots {
		stats.Total++
		stats.ByStatus[p.Status]++

		areaSum = areaSum.Add(p.Area)
		if stats.Total == 1 || p.Area.LessThan(minArea) {
			minArea = p.Area
		}
		if p.Area.GreaterThan(maxArea) {
			maxArea = p.Area
		}
		if p.Price != nil {
			stats.Price.Priced++
			priceSum = priceSum.Add(*p.Price)
		}

		switch {
		case p.HasWater && p.HasElectricity:
			stats.Utilities.Both++
			stats.Utilities.Water++
			stats.Utilities.Electricity++
		case p.HasWater:
			stats.Utilities.Water++
		case p.HasElectricity:
			stats.Utilities.Electricity++
		default:
			stats.Utilities.Neither++
		}

		if i, ok := index[p.DistrictID]; ok {
			occupancy[i].Total++
			switch p.Status {
			case models.PlotStatusAssigned:
				occupancy[i].Assigned++
			case models.PlotStatusReserved:
				occupancy[i].Reserved++
			case models.PlotStatusAvailable:
				occupancy[i].Available++
			}
		}
	}

	stats.Area = models.AreaAggregates{Total: areaSum, Min: minArea, Max: maxArea}
	if stats.Total > 0 {
		stats.Area.Average = areaSum.Div(decimal.NewFromInt(int64(stats.Total))).Round(2)
		stats.AvailablePercent = percent(stats.ByStatus[models.PlotStatusAvailable], stats.Total)
		stats.AssignedPercent = percent(stats.ByStatus[models.PlotStatusAssigned], stats.Total)
		occupied := stats.ByStatus[models.PlotStatusAssigned] + stats.ByStatus[models.PlotStatusReserved]
		stats.OverallOccupancy = float64(occupied) / float64(stats.Total)
	}
	stats.Price.Total = priceSum
	if stats.Price.Priced > 0 {
		stats.Price.Average = priceSum.Div(decimal.NewFromInt(int64(stats.Price.Priced))).Round(2)
	}
	for i := range occupancy {
		if occupancy[i].Total > 0 {
			occupancy[i].Occupancy = float64(occupancy[i].Assigned+occupancy[i].Reserved) / float64(occupancy[i].Total)
		}
	}
	stats.Districts = occupancy
	return stats
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
