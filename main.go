package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"formatd/internal/database"
	"formatd/internal/dateformat"
	"formatd/internal/handlers"
	"formatd/internal/logging"
	"formatd/internal/metrics"
	"formatd/internal/middleware"
	"formatd/internal/startup"

	"github.com/gorilla/mux"
)

// keyPattern restricts format keys in URLs.
const keyPattern = "{key:[A-Za-z0-9_.-]+}"

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Initialize database
	dbStart := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, config.DatabasePath)
	cancel()
	if err != nil {
		startup.LogFatal("Failed to initialize database: %v", err)
	}
	startup.LogDatabaseInit(time.Since(dbStart))

	// Build the format registry: built-ins first, stored patterns override
	registry := dateformat.NewDefaultRegistry()
	builtin := registry.Len()
	stored, err := loadStoredFormats(context.Background(), db, registry)
	if err != nil {
		startup.LogFatal("Failed to load stored formats: %v", err)
	}
	startup.LogRegistryInit(builtin, stored, registry.Len())

	// Metrics
	buildInfo := startup.GetBuildInfo()
	metrics.SetAppInfo(buildInfo.Version, buildInfo.Commit, buildInfo.GoVersion)
	metrics.InitializeMetrics(registry.Keys())

	collector := metrics.NewCollector(&statsAdapter{registry: registry, store: db}, db.Path(), config.CollectInterval)
	collector.Start()

	// Initialize handlers
	h := handlers.New(registry, db, config)

	// Setup router
	router := setupRouter(h)
	router.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	loggedHandler := middleware.Logger(loggingConfig)(router)

	// Tag requests before they are logged
	taggedHandler := middleware.RequestID(loggedHandler)

	// Apply compression middleware
	handler := middleware.Compression(middleware.DefaultCompressionConfig())(taggedHandler)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = newMetricsServer(config.MetricsPort, h)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	go handleShutdown(srv, metricsSrv, collector, db)

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		startup.LogFatal("Server error: %v", err)
	}
}

// storedFormatLister is the part of the database used at startup.
type storedFormatLister interface {
	ListFormats(ctx context.Context) ([]database.StoredFormat, error)
}

// loadStoredFormats registers every persisted pattern, replacing built-ins
// that share a key. It returns the number of patterns loaded.
func loadStoredFormats(ctx context.Context, store storedFormatLister, registry *dateformat.Registry) (int, error) {
	formats, err := store.ListFormats(ctx)
	if err != nil {
		return 0, err
	}

	for _, f := range formats {
		if err := registry.Register(f.Key, dateformat.Pattern(f.Pattern)); err != nil {
			logging.Warn("Skipping stored format %q: %v", f.Key, err)
			continue
		}
		logging.Debug("Loaded stored format %q = %q", f.Key, f.Pattern)
	}
	return len(formats), nil
}

// formatCounter is the part of the database the collector reads.
type formatCounter interface {
	CountFormats(ctx context.Context) (int, error)
}

// statsAdapter adapts the registry and database to metrics.StatsProvider.
type statsAdapter struct {
	registry *dateformat.Registry
	store    formatCounter
}

// GetStats implements metrics.StatsProvider
func (a *statsAdapter) GetStats() metrics.Stats {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, err := a.store.CountFormats(ctx)
	if err != nil {
		logging.Warn("Failed to count stored formats: %v", err)
	}

	return metrics.Stats{
		RegisteredFormats: a.registry.Len(),
		StoredFormats:     stored,
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Named formats
	api.HandleFunc("/formats", h.ListFormats).Methods("GET")
	api.HandleFunc("/formats/"+keyPattern, h.GetFormat).Methods("GET")
	api.HandleFunc("/formats/"+keyPattern, h.RequireAdmin(h.RegisterFormat)).Methods("PUT")
	api.HandleFunc("/formats/"+keyPattern+"/render", h.RenderFormat).Methods("GET")

	// Content types
	api.HandleFunc("/content-type", h.GetContentType).Methods("GET")
	api.HandleFunc("/content-types", h.ListContentTypes).Methods("GET")

	// Validation
	api.HandleFunc("/validate/iso8601", h.ValidateISO8601).Methods("GET")

	return r
}

func newMetricsServer(port string, h *handlers.Handlers) *http.Server {
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", h.MetricsHandler())
	metricsMux.HandleFunc("/health", h.LivenessCheck)

	return &http.Server{
		Addr:              ":" + port,
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func handleShutdown(srv, metricsSrv *http.Server, collector *metrics.Collector, db *database.Database) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Stopping metrics collector")
	collector.Stop()
	startup.LogShutdownStepComplete("Metrics collector stopped")

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownStep("Closing database")
	if err := db.Close(); err != nil {
		logging.Warn("Database close error: %v", err)
	} else {
		startup.LogShutdownStepComplete("Database closed")
	}

	startup.LogShutdownComplete()
}
