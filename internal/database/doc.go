// Package database provides SQLite persistence for formatd.
//
// It stores the literal patterns registered through the API so they survive
// restarts. Computed rules are built into the dateformat package and are
// never stored.
//
// The database uses WAL mode and creates its schema on open. Every query is
// recorded in the formatd_db_* Prometheus metrics.
package database
