// collector.go: OpenTelemetry implementation of xanthos.MetricsCollector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/xanthos"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthos.MetricsCollector using OpenTelemetry.
//
// This collector records map operations to OpenTelemetry metrics, enabling
// enterprise-grade observability with automatic percentile calculation and
// multi-backend support.
//
// Thread-safety: Safe for concurrent use by multiple goroutines.
// The underlying OTEL instruments are thread-safe and lock-free.
//
// Performance: Minimal overhead (<100ns per operation), allocation-free after initialization.
type OTelMetricsCollector struct {
	// OTEL instruments for recording metrics
	lookupLatency   metric.Int64Histogram // Lookup operation latency histogram
	insertLatency   metric.Int64Histogram // Insert operation latency histogram
	deleteLatency   metric.Int64Histogram // Delete operation latency histogram
	tableCapacity   metric.Int64Histogram // Capacity of each new active table
	hits            metric.Int64Counter   // Lookup hits counter
	misses          metric.Int64Counter   // Lookup misses counter
	migratedNodes   metric.Int64Counter   // Nodes moved during rehash cycles
	cyclesStarted   metric.Int64Counter   // Rehash cycles started
	cyclesCompleted metric.Int64Counter   // Rehash cycles completed
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthos"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
// This is useful for distinguishing metrics from multiple map instances
// or integrating with existing OTEL instrumentation.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// Parameters:
//   - provider: OpenTelemetry MeterProvider. Must not be nil.
//   - opts: Optional configuration options (meter name, etc.)
//
// Returns:
//   - *OTelMetricsCollector: The collector instance
//   - error: An error if provider is nil, or OTEL instrument creation errors
//
// The collector creates the following OTEL instruments:
//   - Int64Histogram for latencies (Lookup, Insert, Delete) and new table capacities
//   - Int64Counter for hits, misses, migrated nodes, and rehash cycles
//
// All instruments are thread-safe and lock-free.
//
// Example:
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	collector, err := NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	// Apply options
	options := Options{
		MeterName: "github.com/agilira/xanthos",
	}
	for _, opt := range opts {
		opt(&options)
	}

	// Create meter
	meter := provider.Meter(options.MeterName)

	// Create collector
	collector := &OTelMetricsCollector{}

	// Create Lookup latency histogram
	var err error
	collector.lookupLatency, err = meter.Int64Histogram(
		"xanthos_lookup_latency_ns",
		metric.WithDescription("Latency of Lookup operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	// Create Insert latency histogram
	collector.insertLatency, err = meter.Int64Histogram(
		"xanthos_insert_latency_ns",
		metric.WithDescription("Latency of Insert operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	// Create Delete latency histogram
	collector.deleteLatency, err = meter.Int64Histogram(
		"xanthos_delete_latency_ns",
		metric.WithDescription("Latency of Delete operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	// Create new-table capacity histogram
	collector.tableCapacity, err = meter.Int64Histogram(
		"xanthos_new_table_capacity",
		metric.WithDescription("Capacity of each new active table at cycle start"),
	)
	if err != nil {
		return nil, err
	}

	// Create hits counter
	collector.hits, err = meter.Int64Counter(
		"xanthos_lookup_hits_total",
		metric.WithDescription("Total number of lookup hits"),
	)
	if err != nil {
		return nil, err
	}

	// Create misses counter
	collector.misses, err = meter.Int64Counter(
		"xanthos_lookup_misses_total",
		metric.WithDescription("Total number of lookup misses"),
	)
	if err != nil {
		return nil, err
	}

	// Create migrated nodes counter
	collector.migratedNodes, err = meter.Int64Counter(
		"xanthos_migrated_nodes_total",
		metric.WithDescription("Total number of nodes moved during rehash cycles"),
	)
	if err != nil {
		return nil, err
	}

	// Create cycles started counter
	collector.cyclesStarted, err = meter.Int64Counter(
		"xanthos_rehash_cycles_started_total",
		metric.WithDescription("Total number of rehash cycles started"),
	)
	if err != nil {
		return nil, err
	}

	// Create cycles completed counter
	collector.cyclesCompleted, err = meter.Int64Counter(
		"xanthos_rehash_cycles_completed_total",
		metric.WithDescription("Total number of rehash cycles completed"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordLookup records a Lookup operation.
//
// Parameters:
//   - latencyNs: Operation latency in nanoseconds. Must be >= 0.
//   - hit: Whether the lookup found a node (true) or missed (false).
//
// This method:
//   - Records latency to the Lookup latency histogram (used for percentile calculation)
//   - Increments either hits or misses counter
//
// Thread-safety: Safe for concurrent use.
// Performance: ~50-100ns overhead, allocation-free.
func (c *OTelMetricsCollector) RecordLookup(latencyNs int64, hit bool) {
	ctx := context.Background()

	// Record latency histogram
	c.lookupLatency.Record(ctx, latencyNs)

	// Increment hit/miss counter
	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordInsert records an Insert operation.
//
// Parameters:
//   - latencyNs: Operation latency in nanoseconds. Must be >= 0.
//
// This method records latency to the Insert latency histogram.
//
// Thread-safety: Safe for concurrent use.
// Performance: ~50-100ns overhead, allocation-free.
func (c *OTelMetricsCollector) RecordInsert(latencyNs int64) {
	c.insertLatency.Record(context.Background(), latencyNs)
}

// RecordDelete records a Delete operation.
//
// Parameters:
//   - latencyNs: Operation latency in nanoseconds. Must be >= 0.
//
// This method records latency to the Delete latency histogram.
//
// Thread-safety: Safe for concurrent use.
// Performance: ~50-100ns overhead, allocation-free.
func (c *OTelMetricsCollector) RecordDelete(latencyNs int64) {
	c.deleteLatency.Record(context.Background(), latencyNs)
}

// RecordMigration records a migration step that moved nodes from the
// retiring table to the active one.
//
// This method adds the moved count to the migrated nodes counter.
//
// Thread-safety: Safe for concurrent use.
// Performance: ~50-100ns overhead, allocation-free.
func (c *OTelMetricsCollector) RecordMigration(moved int) {
	c.migratedNodes.Add(context.Background(), int64(moved))
}

// RecordCycleStart records the start of a rehash cycle.
//
// This method increments the cycles-started counter and records the new
// active table's capacity.
//
// Thread-safety: Safe for concurrent use.
// Performance: ~50-100ns overhead, allocation-free.
func (c *OTelMetricsCollector) RecordCycleStart(newCapacity int) {
	ctx := context.Background()
	c.cyclesStarted.Add(ctx, 1)
	c.tableCapacity.Record(ctx, int64(newCapacity))
}

// RecordCycleComplete records the completion of a rehash cycle, when the
// retiring table drains and its storage is released.
//
// This method increments the cycles-completed counter.
//
// Thread-safety: Safe for concurrent use.
// Performance: ~50-100ns overhead, allocation-free.
func (c *OTelMetricsCollector) RecordCycleComplete() {
	c.cyclesCompleted.Add(context.Background(), 1)
}

// Compile-time interface check
var _ xanthos.MetricsCollector = (*OTelMetricsCollector)(nil)
