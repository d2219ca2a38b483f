package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestBackendCallCounter(t *testing.T) {
	counter := metricsSingleton().backendCallTotal.WithLabelValues("search", "ok")
	before := counterValue(t, counter)

	ObserveBackendCall("search", "ok", 15*time.Millisecond)
	ObserveBackendCall("search", "ok", 20*time.Millisecond)

	assert.Equal(t, before+2, counterValue(t, counter))
}

func TestStaleResponseCounter(t *testing.T) {
	before := counterValue(t, metricsSingleton().staleResponses)
	IncStaleResponse()
	assert.Equal(t, before+1, counterValue(t, metricsSingleton().staleResponses))
}

func TestActiveSessionsGauge(t *testing.T) {
	SetActiveSessions(3)
	assert.Equal(t, float64(3), gaugeValue(t, metricsSingleton().activeSessions))
	SetActiveSessions(0)
	assert.Equal(t, float64(0), gaugeValue(t, metricsSingleton().activeSessions))
}
