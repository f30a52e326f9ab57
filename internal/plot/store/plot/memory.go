package plot

import (
	"context"
	"sort"
	"sync"

	"kleingarten/internal/plot/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
)

type numberKey struct {
	district id.DistrictID
	number   string
}

// InMemory is a mutex-guarded plot store for unit tests and local
// development. It enforces the same contracts as the Postgres store:
// (district, number) uniqueness among non-deleted plots, soft-delete
// exclusion on every read, and optimistic concurrency via the version field.
type InMemory struct {
	mu      sync.RWMutex
	plots   map[id.PlotID]*models.Plot
	numbers map[numberKey]id.PlotID
}

// NewInMemory constructs an empty in-memory plot store.
func NewInMemory() *InMemory {
	return &InMemory{
		plots:   make(map[id.PlotID]*models.Plot),
		numbers: make(map[numberKey]id.PlotID),
	}
}

func (s *InMemory) Create(_ context.Context, plot *models.Plot) error {
	if err := plot.CheckInvariants(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := numberKey{district: plot.DistrictID, number: models.NormalizeNumber(plot.Number)}
	if _, taken := s.numbers[key]; taken {
		return sentinel.ErrConflict
	}
	if _, exists := s.plots[plot.ID]; exists {
		return sentinel.ErrConflict
	}

	stored := plot.Clone()
	stored.Version = 1
	s.plots[plot.ID] = stored
	s.numbers[key] = plot.ID
	plot.Version = stored.Version
	return nil
}

func (s *InMemory) FindByID(_ context.Context, plotID id.PlotID) (*models.Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.plots[plotID]
	if !ok || stored.Deleted {
		return nil, sentinel.ErrNotFound
	}
	return stored.Clone(), nil
}

// Update persists a mutated plot under its optimistic-concurrency token.
// A stale version yields sentinel.ErrConflict so the service can surface a
// retryable conflict.
func (s *InMemory) Update(_ context.Context, plot *models.Plot) error {
	if err := plot.CheckInvariants(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.plots[plot.ID]
	if !ok || stored.Deleted {
		return sentinel.ErrNotFound
	}
	if stored.Version != plot.Version {
		return sentinel.ErrConflict
	}

	next := plot.Clone()
	next.Version = stored.Version + 1
	s.plots[plot.ID] = next
	plot.Version = next.Version
	return nil
}

// Remove soft-deletes the plot. Reads no longer see it; the row stays for
// referential integrity.
func (s *InMemory) Remove(_ context.Context, plot *models.Plot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.plots[plot.ID]
	if !ok || stored.Deleted {
		return sentinel.ErrNotFound
	}
	if stored.Version != plot.Version {
		return sentinel.ErrConflict
	}

	stored.Deleted = true
	stored.Version++
	delete(s.numbers, numberKey{district: stored.DistrictID, number: models.NormalizeNumber(stored.Number)})
	return nil
}

// ListAvailableByDistrict returns non-deleted available plots of one
// district, ordered by number for deterministic candidate scans.
func (s *InMemory) ListAvailableByDistrict(_ context.Context, districtID id.DistrictID) ([]*models.Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Plot
	for _, stored := range s.plots {
		if stored.Deleted || stored.DistrictID != districtID || stored.Status != models.PlotStatusAvailable {
			continue
		}
		result = append(result, stored.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

// List returns all non-deleted plots, optionally scoped to one district.
func (s *InMemory) List(_ context.Context, districtID *id.DistrictID) ([]*models.Plot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Plot
	for _, stored := range s.plots {
		if stored.Deleted {
			continue
		}
		if districtID != nil && stored.DistrictID != *districtID {
			continue
		}
		result = append(result, stored.Clone())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}
