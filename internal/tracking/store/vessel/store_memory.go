package vessel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
)

// InMemoryStore keeps vessel snapshots in a map. Vessels are mutable, so
// Save and the finders copy them; callers never share state with the store.
type InMemoryStore struct {
	mu      sync.RWMutex
	vessels map[id.VesselID]*models.Vessel
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{vessels: make(map[id.VesselID]*models.Vessel)}
}

// FindAll returns vessels ordered by name, then id.
func (s *InMemoryStore) FindAll(_ context.Context) ([]*models.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Vessel, 0, len(s.vessels))
	for _, v := range s.vessels {
		c, err := snapshot(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, vesselID id.VesselID) (*models.Vessel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vessels[vesselID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return snapshot(v)
}

// Save stores a copy of the vessel. The last save wins.
func (s *InMemoryStore) Save(_ context.Context, vessel *models.Vessel) error {
	c, err := snapshot(vessel)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vessels[c.ID()] = c
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, vessel *models.Vessel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.vessels[vessel.ID()]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.vessels, vessel.ID())
	return nil
}

func snapshot(v *models.Vessel) (*models.Vessel, error) {
	c, err := models.LoadVessel(v.ID(), v.Name(), v.Ownership(), v.Status(), v.Year(),
		v.CurrentStop(), v.PreviousStops(), v.NextStops())
	if err != nil {
		return nil, fmt.Errorf("copy vessel %s: %w", v.ID(), err)
	}
	return c, nil
}
