package models

import (
	"github.com/shopspring/decimal"

	id "kleingarten/pkg/domain"
)

// AreaAggregates summarizes plot areas in square meters.
type AreaAggregates struct {
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
}

// PriceAggregates summarizes plot prices. Only plots with a price contribute.
type PriceAggregates struct {
	Priced  int             `json:"priced"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

// UtilityCounts breaks plots down by utility access.
type UtilityCounts struct {
	Water       int `json:"water"`
	Electricity int `json:"electricity"`
	Both        int `json:"both"`
	Neither     int `json:"neither"`
}

// DistrictOccupancy is the per-district distribution.
// Occupancy = (assigned + reserved) / total; zero when total is zero.
type DistrictOccupancy struct {
	DistrictID id.DistrictID `json:"district_id"`
	Name       string        `json:"name"`
	Total      int           `json:"total"`
	Assigned   int           `json:"assigned"`
	Reserved   int           `json:"reserved"`
	Available  int           `json:"available"`
	Occupancy  float64       `json:"occupancy"`
}

// PlotStatistics is a read-only snapshot derived from current plot state.
// Every percentage is 0 when its denominator is 0.
type PlotStatistics struct {
	Total            int                 `json:"total"`
	ByStatus         map[PlotStatus]int  `json:"by_status"`
	AvailablePercent float64             `json:"available_percent"`
	AssignedPercent  float64             `json:"assigned_percent"`
	Area             AreaAggregates      `json:"area"`
	Price            PriceAggregates     `json:"price"`
	Utilities        UtilityCounts       `json:"utilities"`
	Districts        []DistrictOccupancy `json:"districts"`
	OverallOccupancy float64             `json:"overall_occupancy"`
	ScopeDistrictID  *id.DistrictID      `json:"scope_district_id,omitempty"`
}
