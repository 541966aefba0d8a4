package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/sentinel"
)

const (
	itineraryTimeout     = 5 * time.Second
	itineraryConcurrency = 8
)

// ItineraryStop is one stop with the port it references. Port is nil when the
// port no longer exists.
type ItineraryStop struct {
	Stop   *models.Stop
	Status models.StopStatus
	Port   *models.Port
}

// Itinerary lists every stop of a vessel in order: previous, current, next.
type Itinerary struct {
	Vessel *models.Vessel
	Stops  []ItineraryStop
}

// DescribeItinerary resolves the ports of every stop of a vessel.
type DescribeItinerary struct {
	vessels VesselStore
	ports   PortStore
	deps
}

func NewDescribeItinerary(vessels VesselStore, ports PortStore, opts ...Option) *DescribeItinerary {
	return &DescribeItinerary{vessels: vessels, ports: ports, deps: newDeps(opts)}
}

func (uc *DescribeItinerary) Execute(ctx context.Context, vesselID id.VesselID) (*Itinerary, error) {
	defer uc.observe("describe_itinerary", time.Now())

	vessel, err := loadVessel(ctx, uc.vessels, vesselID)
	if err != nil {
		return nil, err
	}

	stops := vessel.Stops()
	ports, err := uc.resolvePorts(ctx, stops)
	if err != nil {
		return nil, err
	}

	out := &Itinerary{Vessel: vessel, Stops: make([]ItineraryStop, len(stops))}
	for i, stop := range stops {
		out.Stops[i] = ItineraryStop{
			Stop:   stop,
			Status: stop.Status(),
			Port:   ports[stop.PortID()],
		}
	}
	return out, nil
}

// resolvePorts looks up each distinct port once, with bounded parallelism.
// Missing ports are left out of the result.
func (uc *DescribeItinerary) resolvePorts(ctx context.Context, stops []*models.Stop) (map[id.PortID]*models.Port, error) {
	ctx, cancel := context.WithTimeout(ctx, itineraryTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(itineraryConcurrency)

	var mu sync.Mutex
	resolved := make(map[id.PortID]*models.Port)
	seen := make(map[id.PortID]struct{})

	for _, stop := range stops {
		portID := stop.PortID()
		if _, ok := seen[portID]; ok {
			continue
		}
		seen[portID] = struct{}{}

		g.Go(func() error {
			port, err := uc.ports.FindByID(ctx, portID)
			if errors.Is(err, sentinel.ErrNotFound) {
				if uc.logger != nil {
					uc.logger.DebugContext(ctx, "itinerary port missing", "port_id", portID)
				}
				return nil
			}
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load port")
			}
			mu.Lock()
			resolved[portID] = port
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}
