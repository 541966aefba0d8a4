package service

import (
	"context"
	"time"

	"shiptrack/internal/tracking/metrics"
	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/requestcontext"
)

// DockVessel parks a sailing vessel at its next stop.
type DockVessel struct {
	vessels VesselStore
	deps
}

func NewDockVessel(vessels VesselStore, opts ...Option) *DockVessel {
	return &DockVessel{vessels: vessels, deps: newDeps(opts)}
}

func (uc *DockVessel) Execute(ctx context.Context, vesselID id.VesselID) error {
	defer uc.observe("dock_vessel", time.Now())

	vessel, err := loadVessel(ctx, uc.vessels, vesselID)
	if err != nil {
		return err
	}
	if err := vessel.Dock(requestcontext.Now(ctx)); err != nil {
		uc.transitionRejected(metrics.KindDock)
		return err
	}
	if err := saveVessel(ctx, uc.vessels, vessel); err != nil {
		return err
	}

	uc.logAudit(ctx, "vessel_docked",
		"vessel_id", vessel.ID(),
		"port_id", vessel.LastPortID())
	uc.transitionApplied(metrics.KindDock)
	return nil
}

// UndockVessel sets a parked vessel sailing.
type UndockVessel struct {
	vessels VesselStore
	deps
}

func NewUndockVessel(vessels VesselStore, opts ...Option) *UndockVessel {
	return &UndockVessel{vessels: vessels, deps: newDeps(opts)}
}

func (uc *UndockVessel) Execute(ctx context.Context, vesselID id.VesselID) error {
	defer uc.observe("undock_vessel", time.Now())

	vessel, err := loadVessel(ctx, uc.vessels, vesselID)
	if err != nil {
		return err
	}
	if err := vessel.Undock(requestcontext.Now(ctx)); err != nil {
		uc.transitionRejected(metrics.KindUndock)
		return err
	}
	if err := saveVessel(ctx, uc.vessels, vessel); err != nil {
		return err
	}

	uc.logAudit(ctx, "vessel_undocked",
		"vessel_id", vessel.ID(),
		"port_id", vessel.LastPortID())
	uc.transitionApplied(metrics.KindUndock)
	return nil
}

// ReplaceNextStops swaps a vessel's planned itinerary for a new list of ports.
// Ports are weak references and are not looked up.
type ReplaceNextStops struct {
	vessels VesselStore
	deps
}

func NewReplaceNextStops(vessels VesselStore, opts ...Option) *ReplaceNextStops {
	return &ReplaceNextStops{vessels: vessels, deps: newDeps(opts)}
}

func (uc *ReplaceNextStops) Execute(ctx context.Context, vesselID id.VesselID, nextPortIDs []id.PortID) error {
	defer uc.observe("replace_next_stops", time.Now())

	vessel, err := loadVessel(ctx, uc.vessels, vesselID)
	if err != nil {
		return err
	}

	stops := make([]*models.Stop, 0, len(nextPortIDs))
	for _, portID := range nextPortIDs {
		stop, err := models.NewStop(portID)
		if err != nil {
			return err
		}
		stops = append(stops, stop)
	}

	if err := vessel.ReplaceAllNextStops(stops); err != nil {
		uc.transitionRejected(metrics.KindReplaceNextStops)
		return err
	}
	if err := saveVessel(ctx, uc.vessels, vessel); err != nil {
		return err
	}

	uc.logAudit(ctx, "vessel_next_stops_replaced",
		"vessel_id", vessel.ID(),
		"next_stops", len(stops))
	uc.transitionApplied(metrics.KindReplaceNextStops)
	return nil
}
