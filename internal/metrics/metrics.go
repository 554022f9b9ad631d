// Package metrics holds the Prometheus collectors exported on /metrics.
//
// Collectors are registered on a caller-supplied registry so tests can
// build independent instances.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "order_keeper"

// Authorization outcomes recorded by AuthDecision.
const (
	DecisionPublic        = "public"
	DecisionAllowed       = "allowed"
	DecisionUnauthorized  = "unauthorized"
	DecisionForbidden     = "forbidden"
	DecisionUpstreamError = "upstream_error"
)

type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	authDecisions       *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		authDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_decisions_total",
			Help:      "Authorization decisions by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.authDecisions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RequestStarted() {
	m.httpInFlight.Inc()
}

// RequestFinished records a completed request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *Metrics) RequestFinished(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.httpInFlight.Dec()
	m.httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	m.httpRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

func (m *Metrics) AuthDecision(outcome string) {
	m.authDecisions.WithLabelValues(outcome).Inc()
}
