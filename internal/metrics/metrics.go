// Package metrics provides Prometheus metrics for rollcall.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rollcall"

// HTTP metrics
var (
	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks concurrent HTTP requests.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)
)

// Upstream service metrics
var (
	// UpstreamRequestsTotal counts calls to the activity service by
	// operation (list, login, signup, unregister) and outcome
	// (success, rejected, error).
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total requests to the activity service",
		},
		[]string{"operation", "outcome"},
	)

	// RefreshesTotal counts roster refreshes by outcome.
	RefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "roster",
			Name:      "refreshes_total",
			Help:      "Total roster snapshot refreshes",
		},
		[]string{"outcome"},
	)

	// LoginsTotal counts teacher login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total teacher login attempts",
		},
		[]string{"outcome"},
	)

	// NoticesTotal counts transient notices shown by severity.
	NoticesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "notices_total",
			Help:      "Total transient notices shown",
		},
		[]string{"severity"},
	)
)
