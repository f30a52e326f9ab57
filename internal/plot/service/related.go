package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"kleingarten/internal/plot/models"
)

// Relatedness and transfer thresholds. Tunable policy, kept at the values the
// allocation rules were introduced with.
const (
	relatedSuffixDistance  = 2
	maxRelatedReservations = 2
)

var (
	relatedAreaDistance  = decimal.NewFromInt(50)
	transferAreaDistance = decimal.NewFromInt(100)
)

// isRelated decides whether candidate is a neighbour of the just-assigned
// plot. Plots whose numeric suffix differs by at most 2 are related;
// otherwise a plot counts as related when both utility flags match and its
// area is within 50 m².
func isRelated(assigned, candidate *models.Plot) bool {
	if as, ok := assigned.NumericSuffix(); ok {
		if cs, ok := candidate.NumericSuffix(); ok {
			diff := as - cs
			if diff < 0 {
				diff = -diff
			}
			if diff <= relatedSuffixDistance {
				return true
			}
		}
	}
	if candidate.HasWater == assigned.HasWater && candidate.HasElectricity == assigned.HasElectricity {
		return candidate.Area.Sub(assigned.Area).Abs().LessThanOrEqual(relatedAreaDistance)
	}
	return false
}

// pickTransferTarget selects the replacement plot for an assignment
// transfer: candidates within 100 m² of the source's area, ranked by
// absolute area difference, then by lowest priority.
func pickTransferTarget(source *models.Plot, candidates []*models.Plot) *models.Plot {
	pool := make([]*models.Plot, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == source.ID {
			continue
		}
		if c.Area.Sub(source.Area).Abs().LessThanOrEqual(transferAreaDistance) {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	sort.SliceStable(pool, func(i, j int) bool {
		di := pool[i].Area.Sub(source.Area).Abs()
		dj := pool[j].Area.Sub(source.Area).Abs()
		if !di.Equal(dj) {
			return di.LessThan(dj)
		}
		return pool[i].Priority < pool[j].Priority
	})
	return pool[0]
}
