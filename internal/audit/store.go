package audit

import (
	"context"
	"sync"

	id "kleingarten/pkg/domain"
)

// Store persists audit events. The Postgres implementation writes to the
// outbox table; the relay publishes outbox rows to Kafka.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByPlot(ctx context.Context, plotID id.PlotID) ([]Event, error)
}

// InMemoryStore keeps events in a slice for unit tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByPlot(_ context.Context, plotID id.PlotID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []Event
	for _, event := range s.events {
		if event.PlotID == plotID {
			result = append(result, event)
		}
	}
	return result, nil
}

// All returns every captured event; test helper.
func (s *InMemoryStore) All() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event(nil), s.events...)
}
