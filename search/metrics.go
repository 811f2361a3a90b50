// Package search provides the reachability checking engine for statespace-go.
package search

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics provides Prometheus-compatible metrics collection for
// reachability checks in production environments.
//
// Metrics exposed (all namespaced with "statespace_"):
//
// 1. frontier_depth (gauge): Number of states waiting in the frontier.
// Labels: run_id, search_order.
// Use: Watch frontier growth and compare disciplines.
//
// 2. visited_states (gauge): Number of states expanded so far in a check.
// Labels: run_id, search_order.
// Use: Track exploration progress for long checks.
//
// 3. expanded_total (counter): Cumulative states expanded across checks.
// Labels: run_id, search_order.
// Use: Measure total exploration work.
//
// 4. rejected_total (counter): States rejected by the invariant.
// Labels: run_id, search_order.
// Use: Gauge how aggressively the invariant prunes the space.
//
// 5. duplicates_total (counter): States suppressed by duplicate detection.
// Labels: run_id, search_order.
// Use: Measure how cyclic the state space is.
//
// 6. check_duration_ms (histogram): Wall-clock duration of Check calls.
// Labels: search_order, outcome (found/exhausted/limit/canceled).
// Buckets: [1, 5, 10, 50, 100, 500, 1000, 5000, 10000].
// Use: P50/P95/P99 latency analysis per discipline.
//
// 7. solution_length (histogram): Length of reconstructed paths.
// Labels: search_order.
// Buckets: [2, 5, 10, 20, 50, 100, 200].
// Use: Compare path quality across disciplines.
//
// Usage:
//
//	registry := prometheus.NewRegistry()
//	metrics := search.NewPrometheusMetrics(registry)
//
//	space := search.New(initial, successors, invariant, search.Options{
//	    Metrics: metrics,
//	})
//
//	// Expose via HTTP for Prometheus scraping:
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
//
// Thread-safe: the underlying Prometheus collectors handle concurrent
// updates.
type PrometheusMetrics struct {
	// Gauge metrics (current value observations).
	frontierDepth *prometheus.GaugeVec
	visitedStates *prometheus.GaugeVec

	// Counter metrics (cumulative totals).
	expanded   *prometheus.CounterVec
	rejected   *prometheus.CounterVec
	duplicates *prometheus.CounterVec

	// Histogram metrics (distribution observations).
	checkDuration  *prometheus.HistogramVec
	solutionLength *prometheus.HistogramVec

	// Registry holds all registered metrics.
	registry prometheus.Registerer

	// Mutex protects the enabled flag.
	mu sync.RWMutex

	// enabled controls whether metrics are recorded.
	enabled bool
}

// NewPrometheusMetrics creates and registers all check metrics with the
// provided Prometheus registry.
//
// Parameters:
//   - registry: Prometheus registry to register metrics with (nil uses
//     prometheus.DefaultRegisterer)
//
// All metrics are registered with namespace "statespace". Histograms use
// buckets sized for puzzle-scale checks (1ms to 10s, paths of 2 to 200
// states).
//
// Example:
//
//	// Use custom registry (recommended for isolation).
//	registry := prometheus.NewRegistry()
//	metrics := search.NewPrometheusMetrics(registry)
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	pm := &PrometheusMetrics{
		registry: registry,
		enabled:  true,
	}

	pm.frontierDepth = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "statespace",
		Name:      "frontier_depth",
		Help:      "Number of discovered but unexpanded states waiting in the frontier",
	}, []string{"run_id", "search_order"})

	pm.visitedStates = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "statespace",
		Name:      "visited_states",
		Help:      "Number of states expanded so far in the current check",
	}, []string{"run_id", "search_order"})

	pm.expanded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statespace",
		Name:      "expanded_total",
		Help:      "Cumulative count of states popped from the frontier and expanded",
	}, []string{"run_id", "search_order"})

	pm.rejected = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statespace",
		Name:      "rejected_total",
		Help:      "Cumulative count of generated states rejected by the invariant",
	}, []string{"run_id", "search_order"})

	pm.duplicates = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statespace",
		Name:      "duplicates_total",
		Help:      "Cumulative count of generated states suppressed by duplicate detection",
	}, []string{"run_id", "search_order"})

	pm.checkDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "statespace",
		Name:      "check_duration_ms",
		Help:      "Wall-clock duration of Check calls in milliseconds",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000}, // 1ms to 10s
	}, []string{"search_order", "outcome"}) // outcome: found, exhausted, limit, canceled

	pm.solutionLength = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "statespace",
		Name:      "solution_length",
		Help:      "Number of states in reconstructed paths, initial and goal inclusive",
		Buckets:   []float64{2, 5, 10, 20, 50, 100, 200},
	}, []string{"search_order"})

	return pm
}

// ObserveExpansion records one expansion: it increments expanded_total and
// updates the frontier_depth and visited_states gauges.
//
// Parameters:
//   - runID: Unique check identifier.
//   - order: Pop discipline name (Order.String()).
//   - frontierDepth: States waiting after the expansion.
//   - visited: States expanded so far, including this one.
func (pm *PrometheusMetrics) ObserveExpansion(runID, order string, frontierDepth, visited int) {
	if !pm.enabled {
		return
	}

	pm.frontierDepth.WithLabelValues(runID, order).Set(float64(frontierDepth))
	pm.visitedStates.WithLabelValues(runID, order).Set(float64(visited))
	pm.expanded.WithLabelValues(runID, order).Inc()
}

// ObserveCheck records the completion of a Check call.
//
// This adds the check's rejection and duplicate counts to their totals and
// observes the wall-clock duration under the outcome label.
//
// Parameters:
//   - runID: Unique check identifier.
//   - order: Pop discipline name (Order.String()).
//   - outcome: Terminal outcome ("found", "exhausted", "limit", "canceled").
//   - stats: Work summary for the check.
func (pm *PrometheusMetrics) ObserveCheck(runID, order, outcome string, stats Stats) {
	if !pm.enabled {
		return
	}

	pm.rejected.WithLabelValues(runID, order).Add(float64(stats.Rejected))
	pm.duplicates.WithLabelValues(runID, order).Add(float64(stats.Duplicates))
	pm.checkDuration.WithLabelValues(order, outcome).Observe(float64(stats.Duration.Milliseconds()))
}

// ObserveSolution records the length of a reconstructed path.
//
// Parameters:
//   - order: Pop discipline name (Order.String()).
//   - length: Number of states in the path.
func (pm *PrometheusMetrics) ObserveSolution(order string, length int) {
	if !pm.enabled {
		return
	}

	pm.solutionLength.WithLabelValues(order).Observe(float64(length))
}

// Disable temporarily disables metric recording (useful for testing).
func (pm *PrometheusMetrics) Disable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = false
}

// Enable re-enables metric recording after Disable().
func (pm *PrometheusMetrics) Enable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = true
}

// Reset clears the gauge series (useful for testing).
// This does not unregister metrics from the registry.
func (pm *PrometheusMetrics) Reset() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.frontierDepth.Reset()
	pm.visitedStates.Reset()
	// Note: Counters and histograms are cumulative and keep their
	// observations.
}
