// Package metrics provides Prometheus instrumentation for formatd.
//
// All metrics are registered with the default registry through promauto and
// are prefixed with "formatd_".
//
// # Metric Categories
//
// HTTP:
//   - HTTPRequestsTotal: requests by method, path and status
//   - HTTPRequestDuration: request duration by method and path
//   - HTTPRequestsInFlight: requests currently being processed
//
// Database:
//   - DBQueryTotal: queries by operation and status
//   - DBQueryDuration: query duration by operation
//   - DBSizeBytes: size of the SQLite file
//
// Formats and lookups:
//   - FormatRendersTotal: renders by key and status (success, invalid, unknown)
//   - FormatRegistrationsTotal: registrations by status
//   - RegistryFormats: formats currently registered
//   - StoredFormats: formats persisted in the database
//   - ContentTypeLookupsTotal: lookups by status (success, unknown)
//   - ISO8601ValidationsTotal: validations by result (valid, invalid)
//
// Authentication:
//   - AuthAttemptsTotal: admin token checks by status
//
// # Usage
//
//	import "github.com/prometheus/client_golang/prometheus/promhttp"
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// The [Collector] refreshes the gauges that have to be read from elsewhere:
//
//	collector := metrics.NewCollector(statsProvider, dbPath, time.Minute)
//	collector.Start()
//	defer collector.Stop()
//
// # Prometheus Queries
//
// Render error ratio:
//
//	sum(rate(formatd_format_renders_total{status!="success"}[5m])) /
//	sum(rate(formatd_format_renders_total[5m]))
//
// Unknown extension rate:
//
//	rate(formatd_content_type_lookups_total{status="unknown"}[5m])
package metrics
