package service

import (
	"context"
	"time"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/requestcontext"
)

// CreateVessel builds a vessel parked at its origin port and saves it.
// The origin port is a weak reference and is not looked up.
type CreateVessel struct {
	vessels VesselStore
	deps
}

func NewCreateVessel(vessels VesselStore, opts ...Option) *CreateVessel {
	return &CreateVessel{vessels: vessels, deps: newDeps(opts)}
}

func (uc *CreateVessel) Execute(ctx context.Context, name, ownership string, year int, portID id.PortID) (*models.Vessel, error) {
	defer uc.observe("create_vessel", time.Now())

	vessel, err := models.NewVessel(name, ownership, year, portID, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := saveVessel(ctx, uc.vessels, vessel); err != nil {
		return nil, err
	}

	uc.logAudit(ctx, "vessel_created",
		"vessel_id", vessel.ID(),
		"port_id", portID)
	if uc.metrics != nil {
		uc.metrics.IncrementVesselCreated()
	}
	return vessel, nil
}

// GetVessel returns one vessel with its stops.
type GetVessel struct {
	vessels VesselStore
}

func NewGetVessel(vessels VesselStore) *GetVessel {
	return &GetVessel{vessels: vessels}
}

func (uc *GetVessel) Execute(ctx context.Context, vesselID id.VesselID) (*models.Vessel, error) {
	return loadVessel(ctx, uc.vessels, vesselID)
}

// ListVessels returns every vessel.
type ListVessels struct {
	vessels VesselStore
}

func NewListVessels(vessels VesselStore) *ListVessels {
	return &ListVessels{vessels: vessels}
}

func (uc *ListVessels) Execute(ctx context.Context) ([]*models.Vessel, error) {
	vessels, err := uc.vessels.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list vessels")
	}
	return vessels, nil
}

// DeleteVessel removes a vessel and its stops.
type DeleteVessel struct {
	vessels VesselStore
	deps
}

func NewDeleteVessel(vessels VesselStore, opts ...Option) *DeleteVessel {
	return &DeleteVessel{vessels: vessels, deps: newDeps(opts)}
}

func (uc *DeleteVessel) Execute(ctx context.Context, vesselID id.VesselID) error {
	defer uc.observe("delete_vessel", time.Now())

	vessel, err := loadVessel(ctx, uc.vessels, vesselID)
	if err != nil {
		return err
	}
	if err := uc.vessels.Delete(ctx, vessel); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete vessel")
	}

	uc.logAudit(ctx, "vessel_deleted", "vessel_id", vessel.ID())
	if uc.metrics != nil {
		uc.metrics.IncrementVesselDeleted()
	}
	return nil
}
