// Package metrics holds the prometheus instrumentation of the grapher service.
//
// Metrics exposed:
//   - coverage_graph_chart_builds_total: counter of chart builds by outcome
//   - coverage_graph_chart_build_duration_seconds: histogram of chart build durations
//   - coverage_graph_skipped_points_total: counter of points dropped by skip-zero axes
//   - coverage_graph_rate_limited_requests_total: counter of requests rejected by the rate limiter
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors, all registered on the same registry
type Metrics struct {
	registry      *prometheus.Registry
	ChartBuilds   *prometheus.CounterVec
	BuildDuration prometheus.Histogram
	SkippedPoints prometheus.Counter
	RateLimited   prometheus.Counter
}

// New creates the collectors and registers them on the provided registry
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ChartBuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "coverage_graph_chart_builds_total",
			Help: "Total number of chart builds by outcome",
		}, []string{"outcome"}),

		BuildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "coverage_graph_chart_build_duration_seconds",
			Help:    "Duration of chart builds",
			Buckets: prometheus.DefBuckets,
		}),

		SkippedPoints: factory.NewCounter(prometheus.CounterOpts{
			Name: "coverage_graph_skipped_points_total",
			Help: "Total number of points dropped by skip-zero axes",
		}),

		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "coverage_graph_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		}),
	}
}

// ObserveBuild records one chart build
func (m *Metrics) ObserveBuild(outcome string, duration time.Duration, skippedPoints int) {
	m.ChartBuilds.WithLabelValues(outcome).Inc()
	m.BuildDuration.Observe(duration.Seconds())
	if skippedPoints > 0 {
		m.SkippedPoints.Add(float64(skippedPoints))
	}
}

// RecordRateLimited records one rejected request
func (m *Metrics) RecordRateLimited() {
	m.RateLimited.Inc()
}

// Handler returns the HTTP handler exposing the registry contents
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// IsInterfaceNil returns true if there is no value under the interface
func (m *Metrics) IsInterfaceNil() bool {
	return m == nil
}
