package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the backend boundary.
// Pass to the client and evictor; nil disables recording.
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	SessionEvictions    prometheus.Counter
	NormalizerFallbacks *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics with the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RequestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mallclient",
				Name:      "requests_total",
				Help:      "Total number of backend requests by outcome",
			},
			[]string{"method", "outcome"}, // outcome=ok/business_error/transport_error/unauthenticated
		),
		RequestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mallclient",
				Name:      "request_duration_seconds",
				Help:      "Backend request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		SessionEvictions: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: "mallclient",
				Name:      "session_evictions_total",
				Help:      "Total sessions evicted after an authentication failure",
			},
		),
		NormalizerFallbacks: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mallclient",
				Name:      "normalizer_fallbacks_total",
				Help:      "Total read responses degraded to an empty result",
			},
			[]string{"endpoint"},
		),
	}
}
