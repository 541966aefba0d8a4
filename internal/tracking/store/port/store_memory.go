package port

import (
	"context"
	"sort"
	"sync"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
)

// InMemoryStore keeps ports in a map. Ports are immutable, so pointers are
// shared with callers.
type InMemoryStore struct {
	mu    sync.RWMutex
	ports map[id.PortID]*models.Port
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{ports: make(map[id.PortID]*models.Port)}
}

// FindAll returns ports ordered by name, then id.
func (s *InMemoryStore) FindAll(_ context.Context) ([]*models.Port, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Port, 0, len(s.ports))
	for _, p := range s.ports {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, portID id.PortID) (*models.Port, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.ports[portID]; ok {
		return p, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Save(_ context.Context, port *models.Port) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ports[port.ID()] = port
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, port *models.Port) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ports[port.ID()]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.ports, port.ID())
	return nil
}
