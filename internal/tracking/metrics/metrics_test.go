package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementPortCreated()
	m.IncrementPortCreated()
	m.IncrementVesselDeleted()
	m.IncrementTransition(KindDock)
	m.IncrementRejected(KindUndock)
	m.ObserveUseCase("dock_vessel", time.Now())

	assert.InDelta(t, 2, testutil.ToFloat64(m.PortsCreated), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.PortsDeleted), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.VesselsDeleted), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Transitions.WithLabelValues(KindDock)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.Transitions.WithLabelValues(KindUndock)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TransitionsRejected.WithLabelValues(KindUndock)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.UseCaseDuration))
}

func TestNew_SeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
