// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig provides a dynamically reloaded configuration source using Argus.
// It watches a configuration file and keeps an up-to-date Config snapshot.
//
// Map tunables are fixed at construction, so HotConfig does not mutate live
// maps; instead it is the place new maps are built from, always reflecting
// the latest file contents (sharding schemes and map pools rebuild their
// instances from it).
type HotConfig struct {
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  Config
	logger  Logger

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations.
	// If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a new hot-reloadable configuration source.
// It starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	map:
//	  initial_capacity: 16
//	  max_load_factor: 8
//	  migration_quota: 128
//
// Supported configuration keys:
//   - map.initial_capacity (int): Slot count of the first table (power of two)
//   - map.max_load_factor (int): Average chain length triggering growth
//   - map.migration_quota (int): Nodes moved per operation during a cycle
func NewHotConfig(opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		OnReload: opts.OnReload,
		logger:   opts.Logger,
		config:   DefaultConfig(), // Start with defaults
	}

	// Create Argus config with specified PollInterval for fast file change detection
	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	// Use UniversalConfigWatcherWithConfig to pass custom poll interval
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, NewErrConfigWatchFailed(opts.ConfigPath, err)
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
// Note: The watcher monitors file changes at the configured PollInterval.
func (hc *HotConfig) Start() error {
	// Check if already running to avoid ARGUS_WATCHER_BUSY error
	if hc.watcher.IsRunning() {
		return nil // Already started
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
// Returns any error from stopping the watcher.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the current configuration (thread-safe).
func (hc *HotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// NewMap builds a map from the latest configuration snapshot.
func (hc *HotConfig) NewMap() (*Map, error) {
	return New(hc.GetConfig())
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	newConfig := hc.parseConfig(configData)
	if err := newConfig.Validate(); err != nil {
		hc.logger.Warn("ignoring invalid map configuration", "error", err)
		return
	}

	hc.mu.Lock()
	oldConfig := hc.config
	hc.config = newConfig
	hc.mu.Unlock()

	hc.logger.Debug("map configuration reloaded",
		"initial_capacity", newConfig.InitialCapacity,
		"max_load_factor", newConfig.MaxLoadFactor,
		"migration_quota", newConfig.MigrationQuota)

	// Trigger callback if set
	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parsePositiveInt extracts a positive integer from interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parseConfig extracts map configuration from Argus config data.
func (hc *HotConfig) parseConfig(data map[string]interface{}) Config {
	config := DefaultConfig()

	// Extract map section - Argus might nest it or provide it directly
	mapSection, ok := data["map"].(map[string]interface{})
	if !ok {
		// Try if the whole data IS the map section
		if _, hasCapacity := data["initial_capacity"]; hasCapacity {
			mapSection = data
		} else {
			return config
		}
	}

	if capacity, ok := parsePositiveInt(mapSection["initial_capacity"]); ok {
		config.InitialCapacity = capacity
	}

	if factor, ok := parsePositiveInt(mapSection["max_load_factor"]); ok {
		config.MaxLoadFactor = factor
	}

	if quota, ok := parsePositiveInt(mapSection["migration_quota"]); ok {
		config.MigrationQuota = quota
	}

	return config
}
