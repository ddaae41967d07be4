// Package metrics holds the prometheus collectors shared across the service.
// They are registered on the default registry, which the HTTP server exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pylintd"

// DefaultBuckets provides a common set of histogram buckets in seconds. The
// upper buckets cover slow pylint runs on large files.
var DefaultBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// LintDuration observes pylint run durations by outcome (ok, timeout, failed, unavailable).
	LintDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lint_duration_seconds",
		Help:      "Duration of pylint runs.",
		Buckets:   DefaultBuckets,
	}, []string{"outcome"})

	// LintCacheHits counts reports served from the in-memory cache.
	LintCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lint_cache_hits_total",
		Help:      "Reports served from the cache without running pylint.",
	})

	// TCPConnections counts handled TCP connections by result (ok, error).
	TCPConnections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tcp_connections_total",
		Help:      "Handled TCP lint connections.",
	}, []string{"result"})

	// TCPActiveConnections is the number of TCP connections currently open.
	TCPActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tcp_active_connections",
		Help:      "Open TCP lint connections.",
	})
)
