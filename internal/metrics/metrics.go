package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "formatd_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "formatd_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "formatd_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	DBSizeBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "formatd_db_size_bytes",
			Help: "Size of the SQLite database file in bytes",
		},
	)
)

// Format registry metrics
var (
	FormatRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_format_renders_total",
			Help: "Total number of named format renders by key and status",
		},
		[]string{"key", "status"},
	)

	FormatRegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_format_registrations_total",
			Help: "Total number of format registrations by status",
		},
		[]string{"status"},
	)

	RegistryFormats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "formatd_registry_formats",
			Help: "Number of formats currently registered",
		},
	)

	StoredFormats = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "formatd_stored_formats",
			Help: "Number of formats persisted in the database",
		},
	)
)

// Content type and validation metrics
var (
	ContentTypeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_content_type_lookups_total",
			Help: "Total number of content type lookups by status",
		},
		[]string{"status"},
	)

	ISO8601ValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_iso8601_validations_total",
			Help: "Total number of ISO-8601 validations by result",
		},
		[]string{"result"},
	)
)

// Authentication metrics
var (
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "formatd_auth_attempts_total",
			Help: "Total number of admin token checks by status",
		},
		[]string{"status"},
	)
)

// Application info
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "formatd_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// Status label values shared by the counters above.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusUnknown = "unknown"
	StatusInvalid = "invalid"
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}
