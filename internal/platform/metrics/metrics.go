// Package metrics holds process-level Prometheus metrics. Per-feature
// metrics live next to their feature.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level metrics shared by all routes.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers the process-level metrics.
func New() *Metrics {
	return &Metrics{
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kleingarten_http_request_duration_seconds",
			Help:    "HTTP request duration by method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}
