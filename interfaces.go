// interfaces.go: public interfaces for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Stats provides a snapshot of a map's counters and table geometry.
type Stats struct {
	// Hits is the number of lookups that found their key
	Hits uint64

	// Misses is the number of lookups that did not
	Misses uint64

	// Inserts is the number of insert operations
	Inserts uint64

	// Deletes is the number of successful delete operations
	Deletes uint64

	// Migrated is the total number of nodes moved by migration steps
	Migrated uint64

	// Cycles is the number of rehash cycles started
	Cycles uint64

	// Size is the current number of nodes across both tables
	Size int

	// ActiveCapacity is the slot count of the active table (0 before first insert)
	ActiveCapacity int

	// RetiringCapacity is the slot count of the retiring table (0 outside a cycle)
	RetiringCapacity int

	// Migrating reports whether a rehash cycle is in progress
	Migrating bool
}

// HitRatio returns the lookup hit ratio as a percentage (0-100).
// Returns 0.0 if no lookups have been performed yet.
// Formula: (Hits / (Hits + Misses)) * 100
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector defines an interface for collecting map operation metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other
// monitoring systems. Designed for zero overhead with the NoOp default.
//
// Performance requirements:
//   - All methods must be allocation-free
//   - All methods must complete in < 100ns for production use
//
// The map itself is single-threaded, but a collector may be shared between
// map instances, so implementations should be safe for concurrent use.
type MetricsCollector interface {
	// RecordLookup records a Lookup operation with its latency and hit/miss result.
	// latencyNs is the duration of the Lookup operation in nanoseconds.
	// hit indicates whether the key was found (true) or not (false).
	RecordLookup(latencyNs int64, hit bool)

	// RecordInsert records an Insert operation with its latency.
	// latencyNs is the duration of the Insert operation in nanoseconds.
	RecordInsert(latencyNs int64)

	// RecordDelete records a Delete operation with its latency.
	// latencyNs is the duration of the Delete operation in nanoseconds.
	RecordDelete(latencyNs int64)

	// RecordMigration records one bounded migration step.
	// moved is the number of nodes moved from the retiring table; steps
	// that move nothing are not recorded.
	RecordMigration(moved int)

	// RecordCycleStart records the start of a rehash cycle.
	// newCapacity is the slot count of the freshly allocated active table.
	RecordCycleStart(newCapacity int)

	// RecordCycleComplete records the completion of a rehash cycle.
	// Called when the retiring table drains and its storage is released.
	RecordCycleComplete()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
// All methods are inlined by the compiler for maximum performance.
type NoOpMetricsCollector struct{}

// RecordLookup does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordLookup(latencyNs int64, hit bool) {}

// RecordInsert does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordInsert(latencyNs int64) {}

// RecordDelete does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordDelete(latencyNs int64) {}

// RecordMigration does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordMigration(moved int) {}

// RecordCycleStart does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordCycleStart(newCapacity int) {}

// RecordCycleComplete does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordCycleComplete() {}
