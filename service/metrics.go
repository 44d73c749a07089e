package service

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector exports request counters and latencies for every Service
// it is attached to. Safe for concurrent use; one collector may be shared by
// multiple services.
type MetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorsTotal     *prometheus.CounterVec
}

// NewMetricsCollector registers the collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry registers the collector on the supplied
// registerer; use a private registry in tests.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "httpservice_requests_total",
				Help: "Total number of requests dispatched, by service, method and status code",
			},
			[]string{"service", "method", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "httpservice_request_duration_seconds",
				Help:    "Request duration in seconds, by service and method",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "httpservice_errors_total",
				Help: "Total number of responses wrapped into service errors",
			},
			[]string{"service", "method"},
		),
	}
}

func (m *MetricsCollector) record(service, method string, statusCode int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(service, method, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(service, method).Observe(duration.Seconds())
}

func (m *MetricsCollector) recordError(service, method string) {
	m.errorsTotal.WithLabelValues(service, method).Inc()
}
