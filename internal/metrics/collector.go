package metrics

import (
	"os"
	"time"

	"formatd/internal/logging"
)

// StatsProvider interface for collecting stats
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds the current statistics
type Stats struct {
	RegisteredFormats int
	StoredFormats     int
}

// Collector periodically collects and updates metrics
type Collector struct {
	statsProvider StatsProvider
	dbPath        string
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector. dbPath may be empty, in
// which case the database size gauge is left alone.
func NewCollector(provider StatsProvider, dbPath string, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		dbPath:        dbPath,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	if c.dbPath != "" {
		if info, err := os.Stat(c.dbPath); err == nil {
			DBSizeBytes.Set(float64(info.Size()))
		} else {
			logging.Debug("Failed to stat database file %s: %v", c.dbPath, err)
		}
	}

	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()
	RegistryFormats.Set(float64(stats.RegisteredFormats))
	StoredFormats.Set(float64(stats.StoredFormats))

	logging.Debug("Metrics collected: registered=%d, stored=%d",
		stats.RegisteredFormats, stats.StoredFormats)
}
