package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	m.DispatchOutcome("pathao", "dispatched")
	m.DispatchOutcome("pathao", "dispatched")
	m.CourierRetry("steadfast")
	m.StatusCheck("pathao", "ok")

	require.Equal(t, 2.0, testutil.ToFloat64(m.dispatchOutcomes.WithLabelValues("pathao", "dispatched")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.courierRetries.WithLabelValues("steadfast")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.statusChecks.WithLabelValues("pathao", "ok")))
}

func TestMetrics_DoubleRegisterFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.DispatchOutcome("x", "y")
	m.CourierRetry("x")
	m.StatusCheck("x", "y")
	m.HTTPRequest("GET", "/", "200")
}
