package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transition kinds used as label values.
const (
	KindDock             = "dock"
	KindUndock           = "undock"
	KindReplaceNextStops = "replace_next_stops"
)

// Metrics provides observability for the tracking module.
// Tracks port/vessel lifecycle counts, vessel movements and use case durations.
type Metrics struct {
	PortsCreated        prometheus.Counter
	PortsDeleted        prometheus.Counter
	VesselsCreated      prometheus.Counter
	VesselsDeleted      prometheus.Counter
	Transitions         *prometheus.CounterVec
	TransitionsRejected *prometheus.CounterVec
	UseCaseDuration     *prometheus.HistogramVec
}

// New registers the tracking metrics with reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PortsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "shiptrack_ports_created_total",
			Help: "Total number of ports created",
		}),
		PortsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "shiptrack_ports_deleted_total",
			Help: "Total number of ports deleted",
		}),
		VesselsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "shiptrack_vessels_created_total",
			Help: "Total number of vessels created",
		}),
		VesselsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "shiptrack_vessels_deleted_total",
			Help: "Total number of vessels deleted",
		}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shiptrack_vessel_transitions_total",
			Help: "Vessel itinerary transitions applied, by kind",
		}, []string{"kind"}),
		TransitionsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shiptrack_vessel_transitions_rejected_total",
			Help: "Vessel itinerary transitions rejected by the domain model, by kind",
		}, []string{"kind"}),
		UseCaseDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shiptrack_use_case_duration_seconds",
			Help:    "Duration of tracking use cases including storage round trips",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"use_case"}),
	}
}

func (m *Metrics) IncrementPortCreated()   { m.PortsCreated.Inc() }
func (m *Metrics) IncrementPortDeleted()   { m.PortsDeleted.Inc() }
func (m *Metrics) IncrementVesselCreated() { m.VesselsCreated.Inc() }
func (m *Metrics) IncrementVesselDeleted() { m.VesselsDeleted.Inc() }

// IncrementTransition records an applied dock, undock or itinerary replacement.
func (m *Metrics) IncrementTransition(kind string) {
	m.Transitions.WithLabelValues(kind).Inc()
}

// IncrementRejected records a transition refused by the vessel state machine.
func (m *Metrics) IncrementRejected(kind string) {
	m.TransitionsRejected.WithLabelValues(kind).Inc()
}

// ObserveUseCase records the duration of a use case.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveUseCase(useCase string, start time.Time) {
	m.UseCaseDuration.WithLabelValues(useCase).Observe(time.Since(start).Seconds())
}
