package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport_FiltersByNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()

	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      MetricNameStoreOperationsTotal,
		Help:      HelpTextStoreOperationsTotal,
	}, []string{LabelOperation, LabelKey, LabelStatus})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      MetricNameStoreOperationDuration,
		Help:      HelpTextStoreOperationDuration,
	})
	other := prometheus.NewCounter(prometheus.CounterOpts{Name: "unrelated_total", Help: "x"})
	reg.MustRegister(ops, latency, other)

	ops.WithLabelValues(OperationWrite, "gameKey", StatusOK).Add(2)
	latency.Observe(0.5)
	other.Inc()

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, `cardbuilder_store_operations_total{key="gameKey",operation="write",status="ok"} 2`)
	assert.Contains(t, out, "cardbuilder_store_operation_duration_seconds count=1 sum=0.5")
	assert.NotContains(t, out, "unrelated_total")
}
