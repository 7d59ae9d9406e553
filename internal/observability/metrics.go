package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracker_api",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "path", "status"})

	upstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tracker_api",
		Subsystem: "nutrition",
		Name:      "upstream_requests_total",
		Help:      "Calls to the external nutrition API, by operation and outcome.",
	}, []string{"operation", "outcome"})

	upstreamDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tracker_api",
		Subsystem: "nutrition",
		Name:      "upstream_duration_seconds",
		Help:      "Latency of external nutrition API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, upstreamRequestsTotal, upstreamDuration)
}

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(method, path, status string) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordUpstreamCall records one call to the external nutrition API.
// outcome is "success" or "error".
func RecordUpstreamCall(operation, outcome string, elapsed time.Duration) {
	upstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
