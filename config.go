// config.go: configuration for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"github.com/agilira/go-timecache"
)

// Config holds construction-time tunables for a map. None of them can be
// changed after the map is created; use HotConfig to source fresh tunables
// from a watched file when constructing new maps.
type Config struct {
	// InitialCapacity is the slot count of the first table allocated on
	// the first insert. Must be a power of two.
	// Default: DefaultInitialCapacity.
	InitialCapacity int

	// MaxLoadFactor is the average chain length (live nodes per slot)
	// that triggers a new rehash cycle. Must be > 0.
	// Default: DefaultMaxLoadFactor.
	MaxLoadFactor int

	// MigrationQuota is the maximum number of nodes a single operation
	// moves from the retiring table into the active one. Must be > 0.
	// Together with MaxLoadFactor it bounds the worst-case cost of any
	// call; tune both so a cycle drains before the next one is needed.
	// Default: DefaultMigrationQuota.
	MigrationQuota int

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for metrics latencies.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics (latencies,
	// hit/miss rates, migration progress).
	// If nil, NoOpMetricsCollector is used (zero overhead). Default: NoOpMetricsCollector.
	// Use this to integrate with Prometheus, DataDog, StatsD, or other monitoring systems.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies sensible defaults.
// Zero values fall back to defaults; explicitly invalid values (negative
// tunables, a non-power-of-two capacity) return a structured error.
//
// This method is automatically called by New and NewGenericMap, so you
// typically don't need to call it manually. It's provided as a public API
// if you want to inspect the normalized configuration before creating a map.
//
// Default values applied:
//   - InitialCapacity: DefaultInitialCapacity (4) if 0
//   - MaxLoadFactor: DefaultMaxLoadFactor (8) if 0
//   - MigrationQuota: DefaultMigrationQuota (128) if 0
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.InitialCapacity == 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.InitialCapacity < 0 || c.InitialCapacity&(c.InitialCapacity-1) != 0 {
		return NewErrInvalidCapacity(c.InitialCapacity)
	}

	if c.MaxLoadFactor == 0 {
		c.MaxLoadFactor = DefaultMaxLoadFactor
	}
	if c.MaxLoadFactor < 0 {
		return NewErrInvalidLoadFactor(c.MaxLoadFactor)
	}

	if c.MigrationQuota == 0 {
		c.MigrationQuota = DefaultMigrationQuota
	}
	if c.MigrationQuota < 0 {
		return NewErrInvalidQuota(c.MigrationQuota)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:  DefaultInitialCapacity,
		MaxLoadFactor:    DefaultMaxLoadFactor,
		MigrationQuota:   DefaultMigrationQuota,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides ~121x faster time access compared to time.Now() with zero allocations.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
