// Package handlers provides HTTP request handlers for the formatd API.
//
// It includes handlers for:
//   - Listing, inspecting, registering and rendering named date formats
//   - Resolving content types from file names
//   - Validating ISO-8601 timestamps
//   - Health checks and build information
//
// Format registration is guarded by an admin bearer token checked against a
// bcrypt hash.
package handlers
