// Package main provides the entry point for the formatd service.
//
// formatd renders date/time values through named formats, resolves file
// names to content types and validates ISO-8601 timestamps over a small
// JSON API.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads environment variables and validates the database directory
//  2. Database Initialization: Opens the SQLite database holding registered patterns
//  3. Registry Construction: Built-in formats, then stored patterns (which replace built-ins of the same key)
//  4. Metrics: Pre-registers label sets and starts the periodic collector
//  5. HTTP Server Setup: Configures routes, middleware, and starts the servers
//  6. Graceful Shutdown: Handles SIGINT/SIGTERM and stops all components
//
// # HTTP Servers
//
//  1. Main Server (default port 8080):
//     - /api/formats, /api/formats/{key}, /api/formats/{key}/render
//     - /api/content-type, /api/content-types
//     - /api/validate/iso8601
//     - /health, /healthz, /livez, /readyz, /version
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//
// # Environment Variables
//
//   - PORT: Main HTTP server port (default: 8080)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable metrics server (default: true)
//   - DATABASE_DIR: Directory for the SQLite database (default: /database)
//   - ADMIN_TOKEN_HASH: bcrypt hash of the admin token; format registration is disabled when unset
//   - COLLECT_INTERVAL: Metrics collection interval (default: 1m)
//   - LOG_LEVEL: Logging level (debug/info/warn/error)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//
// Use cmd/hashtoken to produce ADMIN_TOKEN_HASH.
//
// # Build Requirements
//
// CGO is required for SQLite:
//
//	CGO_ENABLED=1 go build -o formatd .
package main
