// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/yigit/registrar/internal/pkg/idalloc"
)

const namespace = "registrar"

var (
	identifiersAllocated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identifiers_allocated_total",
		Help:      "Identifiers allocated on record creation, by kind.",
	}, []string{"kind"})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// IdentifierAllocated counts one allocation of kind
func IdentifierAllocated(kind idalloc.Kind) {
	identifiersAllocated.WithLabelValues(string(kind)).Inc()
}

// IdentifiersAllocated returns the counter for kind. Used by tests.
func IdentifiersAllocated(kind idalloc.Kind) prometheus.Counter {
	return identifiersAllocated.WithLabelValues(string(kind))
}

// ObserveRequest records one served HTTP request
func ObserveRequest(route, method string, status int, seconds float64) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method).Observe(seconds)
}
