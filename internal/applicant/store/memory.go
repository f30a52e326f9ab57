package store

import (
	"context"
	"sync"

	"kleingarten/internal/applicant/models"
	id "kleingarten/pkg/domain"
	"kleingarten/pkg/platform/sentinel"
)

// InMemory is a mutex-guarded applicant registry for unit tests and local
// development.
type InMemory struct {
	mu           sync.RWMutex
	persons      map[id.PersonID]*models.Person
	applications map[id.ApplicationID]*models.Application
}

// NewInMemory constructs an empty in-memory applicant registry.
func NewInMemory() *InMemory {
	return &InMemory{
		persons:      make(map[id.PersonID]*models.Person),
		applications: make(map[id.ApplicationID]*models.Application),
	}
}

// SeedPerson inserts or replaces a person.
func (s *InMemory) SeedPerson(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *person
	s.persons[person.ID] = &clone
	return nil
}

// SeedApplication inserts or replaces an application.
func (s *InMemory) SeedApplication(_ context.Context, application *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *application
	s.applications[application.ID] = &clone
	return nil
}

// PersonExists reports whether a person is registered.
func (s *InMemory) PersonExists(_ context.Context, personID id.PersonID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.persons[personID]
	return ok, nil
}

// ApplicationStatus returns the workflow status of an application, or
// sentinel.ErrNotFound when it does not exist.
func (s *InMemory) ApplicationStatus(_ context.Context, applicationID id.ApplicationID) (models.ApplicationStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	application, ok := s.applications[applicationID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return application.Status, nil
}

// CountByPlot counts applications linked to the given plot.
func (s *InMemory) CountByPlot(_ context.Context, plotID id.PlotID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, application := range s.applications {
		if application.PlotID != nil && *application.PlotID == plotID {
			count++
		}
	}
	return count, nil
}
