package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store Metrics
var (
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameStoreOperationsTotal,
			Help:      HelpTextStoreOperationsTotal,
		},
		[]string{LabelOperation, LabelKey, LabelStatus},
	)

	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameStoreOperationDuration,
			Help:      HelpTextStoreOperationDuration,
			Buckets:   StoreLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	StoreDecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameStoreDecodeFailures,
			Help:      HelpTextStoreDecodeFailures,
		},
		[]string{LabelKey},
	)
)

// Repository Metrics
var (
	GameNotFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameGameNotFound,
			Help:      HelpTextGameNotFound,
		},
		[]string{LabelOperation},
	)

	GamesPersisted = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameGamesPersisted,
			Help:      HelpTextGamesPersisted,
		},
	)

	PlayersGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNamePlayersGenerated,
			Help:      HelpTextPlayersGenerated,
		},
	)
)
