package store

import (
	"context"
	"sync"

	"kleingarten/internal/district/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded district store for unit tests and local
// development. Entities are cloned on the way in and out so callers cannot
// mutate stored state behind the store's back.
type InMemory struct {
	mu        sync.RWMutex
	districts map[id.DistrictID]*models.District
}

// NewInMemory constructs an empty in-memory district store.
func NewInMemory() *InMemory {
	return &InMemory{districts: make(map[id.DistrictID]*models.District)}
}

// Seed inserts or replaces a district. Districts are owned by an external
// process; the engine only reads them and moves the plot counter.
func (s *InMemory) Seed(_ context.Context, district *models.District) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *district
	s.districts[district.ID] = &clone
	return nil
}

func (s *InMemory) FindByID(_ context.Context, districtID id.DistrictID) (*models.District, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	district, ok := s.districts[districtID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	clone := *district
	return &clone, nil
}

func (s *InMemory) List(_ context.Context) ([]*models.District, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*models.District, 0, len(s.districts))
	for _, district := range s.districts {
		clone := *district
		result = append(result, &clone)
	}
	return result, nil
}

// IncrementPlotCount bumps the denormalized plot counter by one.
func (s *InMemory) IncrementPlotCount(_ context.Context, districtID id.DistrictID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	district, ok := s.districts[districtID]
	if !ok {
		return sentinel.ErrNotFound
	}
	district.PlotCount++
	return nil
}

// DecrementPlotCount lowers the denormalized plot counter by one. The counter
// never goes below zero.
func (s *InMemory) DecrementPlotCount(_ context.Context, districtID id.DistrictID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	district, ok := s.districts[districtID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if district.PlotCount > 0 {
		district.PlotCount--
	}
	return nil
}
