// Package service holds the tracking use cases. Each use case loads one
// aggregate, applies at most one domain mutation and saves the result.
// Invariants live in the models; use cases only orchestrate and translate
// store failures into domain errors.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiptrack/internal/tracking/metrics"
	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
	"shiptrack/pkg/platform/sentinel"
	"shiptrack/pkg/requestcontext"
)

// PortStore persists ports. FindByID returns sentinel.ErrNotFound when absent.
type PortStore interface {
	FindAll(ctx context.Context) ([]*models.Port, error)
	FindByID(ctx context.Context, portID id.PortID) (*models.Port, error)
	Save(ctx context.Context, port *models.Port) error
	Delete(ctx context.Context, port *models.Port) error
}

// VesselStore persists vessels together with their stops.
// FindByID returns sentinel.ErrNotFound when absent.
type VesselStore interface {
	FindAll(ctx context.Context) ([]*models.Vessel, error)
	FindByID(ctx context.Context, vesselID id.VesselID) (*models.Vessel, error)
	Save(ctx context.Context, vessel *models.Vessel) error
	Delete(ctx context.Context, vessel *models.Vessel) error
}

// Option configures the ambient dependencies shared by every use case.
type Option func(d *deps)

func WithLogger(logger *slog.Logger) Option {
	return func(d *deps) {
		d.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(d *deps) {
		d.metrics = m
	}
}

type deps struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newDeps(opts []Option) deps {
	var d deps
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func (d deps) logAudit(ctx context.Context, event string, attributes ...any) {
	if d.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	d.logger.InfoContext(ctx, event, args...)
}

func (d deps) observe(useCase string, start time.Time) {
	if d.metrics != nil {
		d.metrics.ObserveUseCase(useCase, start)
	}
}

func (d deps) transitionApplied(kind string) {
	if d.metrics != nil {
		d.metrics.IncrementTransition(kind)
	}
}

func (d deps) transitionRejected(kind string) {
	if d.metrics != nil {
		d.metrics.IncrementRejected(kind)
	}
}

func loadPort(ctx context.Context, ports PortStore, portID id.PortID) (*models.Port, error) {
	port, err := ports.FindByID(ctx, portID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "port not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load port")
	}
	return port, nil
}

func loadVessel(ctx context.Context, vessels VesselStore, vesselID id.VesselID) (*models.Vessel, error) {
	vessel, err := vessels.FindByID(ctx, vesselID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "vessel not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load vessel")
	}
	return vessel, nil
}

func saveVessel(ctx context.Context, vessels VesselStore, vessel *models.Vessel) error {
	if err := vessels.Save(ctx, vessel); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return dErrors.Wrap(err, dErrors.CodeConflict, "stop references an unknown port")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save vessel")
	}
	return nil
}
