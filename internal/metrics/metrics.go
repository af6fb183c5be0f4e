// Package metrics holds the Prometheus instruments exposed at GET /metrics.
//
//	clubhub_http_requests_total          counter: requests by method/route/status
//	clubhub_http_request_duration_seconds histogram: latency by method/route
//	clubhub_store_operations_total       counter: writes by kind/op/result
//	clubhub_form_validation_failures_total counter: rejected saves by form
//	clubhub_decode_fallbacks_total       counter: nested fields replaced by defaults
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clubhub_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "route", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "clubhub_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route"})

// StoreOperations counts data service writes.
var StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clubhub_store_operations_total",
	Help: "Data service writes by entity kind, operation and result.",
}, []string{"kind", "op", "result"})

var FormValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clubhub_form_validation_failures_total",
	Help: "Saves blocked by validation, by form.",
}, []string{"form"})

// DecodeFallbacks counts nested fields that could not be parsed on load.
var DecodeFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clubhub_decode_fallbacks_total",
	Help: "Nested sub-records replaced by their empty default on load.",
}, []string{"kind", "field"})

func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one finished HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
