package service

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/sentinel"
)

// CreatePort builds a port and saves it.
type CreatePort struct {
	ports PortStore
	deps
}

func NewCreatePort(ports PortStore, opts ...Option) *CreatePort {
	return &CreatePort{ports: ports, deps: newDeps(opts)}
}

func (uc *CreatePort) Execute(ctx context.Context, name string, capacity int, country, city string, coordinates *models.Coordinates) (*models.Port, error) {
	defer uc.observe("create_port", time.Now())

	port, err := models.NewPort(name, capacity, country, city, coordinates)
	if err != nil {
		return nil, err
	}
	if err := uc.ports.Save(ctx, port); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save port")
	}

	uc.logAudit(ctx, "port_created", "port_id", port.ID())
	if uc.metrics != nil {
		uc.metrics.IncrementPortCreated()
	}
	return port, nil
}

// GetPort returns one port.
type GetPort struct {
	ports PortStore
}

func NewGetPort(ports PortStore) *GetPort {
	return &GetPort{ports: ports}
}

func (uc *GetPort) Execute(ctx context.Context, portID id.PortID) (*models.Port, error) {
	return loadPort(ctx, uc.ports, portID)
}

// ListPorts returns every port.
type ListPorts struct {
	ports PortStore
}

func NewListPorts(ports PortStore) *ListPorts {
	return &ListPorts{ports: ports}
}

func (uc *ListPorts) Execute(ctx context.Context) ([]*models.Port, error) {
	ports, err := uc.ports.FindAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list ports")
	}
	return ports, nil
}

// DeletePort removes a port. Stores that enforce references refuse while
// vessel stops still point at it.
type DeletePort struct {
	ports PortStore
	deps
}

func NewDeletePort(ports PortStore, opts ...Option) *DeletePort {
	return &DeletePort{ports: ports, deps: newDeps(opts)}
}

func (uc *DeletePort) Execute(ctx context.Context, portID id.PortID) error {
	defer uc.observe("delete_port", time.Now())

	port, err := loadPort(ctx, uc.ports, portID)
	if err != nil {
		return err
	}
	if err := uc.ports.Delete(ctx, port); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.Wrap(err, dErrors.CodeConflict, "port is referenced by vessel stops")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete port")
	}

	uc.logAudit(ctx, "port_deleted", "port_id", port.ID())
	if uc.metrics != nil {
		uc.metrics.IncrementPortDeleted()
	}
	return nil
}
