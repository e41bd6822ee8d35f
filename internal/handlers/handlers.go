package handlers

import (
	"context"
	"time"

	"formatd/internal/dateformat"
	"formatd/internal/startup"
)

// FormatStore persists registered patterns.
type FormatStore interface {
	SaveFormat(ctx context.Context, key, pattern string) error
	CountFormats(ctx context.Context) (int, error)
}

// Handlers serves the HTTP API.
type Handlers struct {
	registry       *dateformat.Registry
	store          FormatStore
	adminTokenHash string
	startTime      time.Time
}

// New creates Handlers around the given registry and store.
func New(registry *dateformat.Registry, store FormatStore, config *startup.Config) *Handlers {
	return &Handlers{
		registry:       registry,
		store:          store,
		adminTokenHash: config.AdminTokenHash,
		startTime:      time.Now(),
	}
}
