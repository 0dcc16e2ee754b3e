package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// gRPC client metrics (distance worker calls)
	GRPCCalls    *prometheus.CounterVec
	GRPCDuration *prometheus.HistogramVec
	GRPCErrors   *prometheus.CounterVec

	// Download proxy metrics
	DownloadsTotal *prometheus.CounterVec
	DownloadBytes  prometheus.Counter

	// Database metrics
	DBQueries      *prometheus.CounterVec
	DBQueryLatency *prometheus.HistogramVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics returns the process-wide metrics collector. Collectors
// register with the default Prometheus registry, so the set is built
// once and shared.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = newMetrics()
	})
	return metrics
}

func newMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oteldemo_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oteldemo_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oteldemo_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method", "path"},
		),

		GRPCCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oteldemo_grpc_calls_total",
				Help: "Total number of distance worker gRPC calls",
			},
			[]string{"method", "status"},
		),
		GRPCDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oteldemo_grpc_duration_seconds",
				Help:    "Distance worker gRPC call duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method"},
		),
		GRPCErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oteldemo_grpc_errors_total",
				Help: "Total number of distance worker gRPC errors",
			},
			[]string{"method", "kind"},
		),

		DownloadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oteldemo_downloads_total",
				Help: "Total number of proxied CSV downloads",
			},
			[]string{"status"},
		),
		DownloadBytes: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "oteldemo_download_bytes_total",
				Help: "Total bytes streamed through the download proxy",
			},
		),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oteldemo_db_queries_total",
				Help: "Total number of database queries",
			},
			[]string{"operation", "status"},
		),
		DBQueryLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oteldemo_db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"operation"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "oteldemo_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime continuously updates the uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordGRPCCall records a distance worker call
func (m *Metrics) RecordGRPCCall(method, status string, duration time.Duration) {
	m.GRPCCalls.WithLabelValues(method, status).Inc()
	m.GRPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordGRPCError records a distance worker error by kind
func (m *Metrics) RecordGRPCError(method, kind string) {
	m.GRPCErrors.WithLabelValues(method, kind).Inc()
}

// RecordDownload records a proxied download outcome
func (m *Metrics) RecordDownload(status string, bytes int64) {
	m.DownloadsTotal.WithLabelValues(status).Inc()
	if bytes > 0 {
		m.DownloadBytes.Add(float64(bytes))
	}
}

// RecordDBQuery records a database query
func (m *Metrics) RecordDBQuery(operation, status string, duration time.Duration) {
	m.DBQueries.WithLabelValues(operation, status).Inc()
	m.DBQueryLatency.WithLabelValues(operation).Observe(duration.Seconds())
}
