// Package metrics provides Prometheus metrics for the rinkside analytics service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the rinkside service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core Pipeline Metrics
	gameLoads          prometheus.Counter
	gameLoadErrors     prometheus.Counter
	staleLoadsDropped  prometheus.Counter
	eventsLoaded       prometheus.Gauge
	eventsFiltered     prometheus.Gauge
	malformedRecords   prometheus.Counter
	classifyLatency    prometheus.Histogram
	filterRecomputes   prometheus.Counter
	filterLatency      prometheus.Histogram
	aggregationLatency prometheus.Histogram

	// Upstream Feed Metrics
	feedRequests       *prometheus.CounterVec
	feedRequestLatency *prometheus.HistogramVec
	feedErrors         *prometheus.CounterVec

	// Timeline Metrics
	timelineTicks    prometheus.Counter
	timelinePosition prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorsByComponent *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rinkside",
		subsystem:        "faceoff",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // metrics initialization is one long declaration
	auto := promauto.With(m.registry)

	// Core Pipeline Metrics
	m.gameLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "game_loads_total",
		Help:      "Total number of completed game selections",
	})

	m.gameLoadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "game_load_errors_total",
		Help:      "Total number of game selections that failed upstream",
	})

	m.staleLoadsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stale_loads_dropped_total",
		Help:      "Total number of fetch results discarded because a newer selection superseded them",
	})

	m.eventsLoaded = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_loaded",
		Help:      "Number of classified events held for the current game",
	})

	m.eventsFiltered = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_filtered",
		Help:      "Number of events passing the current filter state",
	})

	m.malformedRecords = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "malformed_records_total",
		Help:      "Total number of feed records with unusable fields absorbed into fallbacks",
	})

	m.classifyLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "classify_latency_milliseconds",
		Help:      "Histogram of event classification latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.filterRecomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filter_recomputes_total",
		Help:      "Total number of full filter passes over the event set",
	})

	m.filterLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "filter_latency_milliseconds",
		Help:      "Filter pass latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.aggregationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_latency_milliseconds",
		Help:      "Aggregate recompute latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Upstream Feed Metrics
	m.feedRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "feed_requests_total",
			Help:      "Total number of upstream feed requests by resource",
		},
		[]string{"resource"},
	)

	m.feedRequestLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "feed_request_latency_milliseconds",
			Help:      "Upstream feed request latency in milliseconds by resource",
			Buckets:   m.histogramBuckets,
		},
		[]string{"resource"},
	)

	m.feedErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "feed_errors_total",
			Help:      "Total number of upstream feed failures by resource",
		},
		[]string{"resource"},
	)

	// Timeline Metrics
	m.timelineTicks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "timeline_ticks_total",
		Help:      "Total number of playback ticks applied to the time window",
	})

	m.timelinePosition = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "timeline_position_pct",
		Help:      "Current playback position as a percentage of the selected window",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorsByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordGameLoad increments the completed game selections counter.
func RecordGameLoad() {
	globalManager.gameLoads.Inc()
}

// RecordGameLoadError increments the failed game selections counter.
func RecordGameLoadError() {
	globalManager.gameLoadErrors.Inc()
}

// RecordStaleLoadDropped increments the superseded-fetch counter.
func RecordStaleLoadDropped() {
	globalManager.staleLoadsDropped.Inc()
}

// UpdateEventsLoaded sets the classified event count for the current game.
func UpdateEventsLoaded(count int) {
	globalManager.eventsLoaded.Set(float64(count))
}

// UpdateEventsFiltered sets the count of events passing the current filter.
func UpdateEventsFiltered(count int) {
	globalManager.eventsFiltered.Set(float64(count))
}

// RecordMalformedRecord increments the absorbed-malformed-record counter.
func RecordMalformedRecord() {
	globalManager.malformedRecords.Inc()
}

// RecordClassifyLatency records classification latency in milliseconds.
func RecordClassifyLatency(latencyMs float64) {
	globalManager.classifyLatency.Observe(latencyMs)
}

// RecordFilterRecompute increments the filter pass counter.
func RecordFilterRecompute() {
	globalManager.filterRecomputes.Inc()
}

// RecordFilterLatency records filter pass latency in milliseconds.
func RecordFilterLatency(latencyMs float64) {
	globalManager.filterLatency.Observe(latencyMs)
}

// RecordAggregationLatency records aggregate recompute latency in milliseconds.
func RecordAggregationLatency(latencyMs float64) {
	globalManager.aggregationLatency.Observe(latencyMs)
}

// Upstream Feed Metrics Functions.

// RecordFeedRequest records an upstream request for the given resource.
func RecordFeedRequest(resource string) {
	globalManager.feedRequests.WithLabelValues(resource).Inc()
}

// RecordFeedRequestLatency records upstream request latency for the given resource.
func RecordFeedRequestLatency(resource string, latencyMs float64) {
	globalManager.feedRequestLatency.WithLabelValues(resource).Observe(latencyMs)
}

// RecordFeedError records an upstream failure for the given resource.
func RecordFeedError(resource string) {
	globalManager.feedErrors.WithLabelValues(resource).Inc()
}

// Timeline Metrics Functions.

// RecordTimelineTick increments the playback tick counter.
func RecordTimelineTick() {
	globalManager.timelineTicks.Inc()
}

// UpdateTimelinePosition sets the playback position percentage.
func UpdateTimelinePosition(pct float64) {
	globalManager.timelinePosition.Set(pct)
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
