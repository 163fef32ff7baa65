package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Dataset metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"status"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows loaded per dataset",
		},
		[]string{"dataset"},
	)

	FilteredRows = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_filtered_rows",
			Help:    "Number of rows left after date filtering",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"dataset"},
	)

	// Presentation metrics
	ChartRenderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chart_render_duration_seconds",
			Help:    "Chart render duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chart", "status"},
	)

	AssetWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asset_warnings_total",
			Help: "Total number of optional assets that failed to load",
		},
		[]string{"asset"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordDatasetLoad records the outcome of the one-shot dataset load
func RecordDatasetLoad(err error) {
	DatasetLoadsTotal.WithLabelValues(statusOf(err)).Inc()
}

// RecordChartRender records chart render metrics
func RecordChartRender(chart string, err error, duration time.Duration) {
	ChartRenderDuration.WithLabelValues(chart, statusOf(err)).Observe(duration.Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
