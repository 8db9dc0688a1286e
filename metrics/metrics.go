// Package metrics provides Prometheus metrics for the Ghost Content API client
// and the MCP server built on it. It tracks tool calls, Content API calls,
// raw HTTP requests and response sizes.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "ghost_content"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// APIRequestsTotal counts Content API calls
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total Content API calls by resource, method and status",
	}, []string{"resource", "method", "status"})

	// APILatency measures Content API call latency
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "Content API call latency by resource and method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"resource", "method"})

	// APIErrors counts Content API failures by error kind
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "Content API errors by resource, method and error kind",
	}, []string{"resource", "method", "kind"})

	// HTTPRequestsTotal counts HTTP transport requests
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by method and status",
	}, []string{"method", "status"})

	// HTTPRequestDuration measures HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency distribution",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method"})

	// ResponseSize tracks decoded response body sizes
	ResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "response_size_bytes",
		Help:      "Content API response size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"resource"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	RequestsTotal.WithLabelValues(tool, statusLabel(success)).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a Content API call. errorKind is empty on success.
func RecordAPICall(resource, method string, duration float64, success bool, errorKind string) {
	APIRequestsTotal.WithLabelValues(resource, method, statusLabel(success)).Inc()
	APILatency.WithLabelValues(resource, method).Observe(duration)
	if errorKind != "" {
		APIErrors.WithLabelValues(resource, method, errorKind).Inc()
	}
}

// RecordHTTPRequest records a request made by the HTTP transport.
// A statusCode of 0 means the request never produced a response.
func RecordHTTPRequest(method string, statusCode int, duration float64) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	HTTPRequestsTotal.WithLabelValues(method, status).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(duration)
}

// RecordResponseSize records the size of a response body for a resource
func RecordResponseSize(resource string, size int) {
	ResponseSize.WithLabelValues(resource).Observe(float64(size))
}

func statusLabel(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
