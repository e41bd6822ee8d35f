// Package middleware provides HTTP middleware for the formatd service.
//
// It includes:
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics keyed by route template
//   - Gzip compression of JSON responses
package middleware
