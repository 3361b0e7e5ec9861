// Package otel provides OpenTelemetry integration for xanthos map metrics.
//
// # Overview
//
// This package implements the xanthos.MetricsCollector interface using OpenTelemetry,
// enabling enterprise-grade observability with automatic percentile calculation and
// multi-backend support (Prometheus, Jaeger, DataDog, Grafana).
//
// The package is a separate module to keep the xanthos core lightweight.
// Applications that don't need metrics collection don't pay for the OTEL dependencies.
//
// # Features
//
//   - Automatic Percentiles: OTEL Histograms calculate p50, p95, p99, p99.9 latencies
//   - Multi-Backend Support: Works with Prometheus, Jaeger, DataDog, any OTEL-compatible backend
//   - Hit Ratio Tracking: Real-time lookup hit/miss monitoring
//   - Rehash Monitoring: Track migration volume and cycle frequency
//   - Thread-Safe: Lock-free, safe for concurrent use
//   - Low Overhead: ~50-100ns per operation
//   - Industry Standard: Uses OpenTelemetry (CNCF standard)
//
// # Installation
//
//	go get github.com/agilira/xanthos/otel
//
// # Quick Start
//
// Basic setup with Prometheus exporter:
//
//	import (
//	    "github.com/agilira/xanthos"
//	    xanthosotel "github.com/agilira/xanthos/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	// Setup Prometheus exporter
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create OTEL MeterProvider
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	// Create metrics collector
//	metricsCollector, err := xanthosotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Configure map with metrics
//	m, _ := xanthos.NewGenericMap[string, User](xanthos.Config{
//	    MetricsCollector: metricsCollector,
//	})
//
//	// Use the map normally - metrics are automatically collected
//	m.Put("key", user)
//	m.Get("key")
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":2112", nil))
//
// # Metrics Exposed
//
// Histograms (with automatic percentiles):
//   - xanthos_lookup_latency_ns: Lookup operation latency in nanoseconds
//   - xanthos_insert_latency_ns: Insert operation latency in nanoseconds
//   - xanthos_delete_latency_ns: Delete operation latency in nanoseconds
//   - xanthos_new_table_capacity: Capacity of each new active table at cycle start
//
// Counters:
//   - xanthos_lookup_hits_total: Total number of lookup hits
//   - xanthos_lookup_misses_total: Total number of lookup misses
//   - xanthos_migrated_nodes_total: Total nodes moved during rehash cycles
//   - xanthos_rehash_cycles_started_total: Rehash cycles started
//   - xanthos_rehash_cycles_completed_total: Rehash cycles completed
//
// All metrics are thread-safe and use lock-free OTEL instruments.
//
// # Configuration
//
// Custom meter name (useful for multiple map instances):
//
//	collector, err := xanthosotel.NewOTelMetricsCollector(
//	    provider,
//	    xanthosotel.WithMeterName("myapp_session_index"),
//	)
//
// Custom histogram buckets for better percentile accuracy:
//
//	provider := metric.NewMeterProvider(
//	    metric.WithReader(exporter),
//	    metric.WithView(metric.NewView(
//	        metric.Instrument{Name: "xanthos_lookup_latency_ns"},
//	        metric.Stream{
//	            Aggregation: metric.AggregationExplicitBucketHistogram{
//	                // Buckets in nanoseconds: 100ns, 500ns, 1μs, 5μs, 10μs, 50μs, 100μs
//	                Boundaries: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
//	            },
//	        },
//	    )),
//	)
//
// # Prometheus Queries
//
// Calculate P95 lookup latency (last 5 minutes):
//
//	histogram_quantile(0.95, rate(xanthos_lookup_latency_ns_bucket[5m]))
//
// Calculate hit ratio:
//
//	rate(xanthos_lookup_hits_total[5m]) /
//	(rate(xanthos_lookup_hits_total[5m]) + rate(xanthos_lookup_misses_total[5m]))
//
// Migration pressure (nodes moved per second):
//
//	rate(xanthos_migrated_nodes_total[1m])
//
// Cycles in flight (started minus completed):
//
//	xanthos_rehash_cycles_started_total - xanthos_rehash_cycles_completed_total
//
// A P99 lookup latency spike that correlates with xanthos_migrated_nodes_total
// means the migration quota is set too high for your latency budget.
//
// # Thread Safety
//
// All methods are thread-safe and use lock-free OTEL instruments. The map
// itself is single-threaded, but one collector can serve many map instances
// on different goroutines:
//
//	collector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	// Safe to call from multiple goroutines
//	go func() { collector.RecordLookup(1000, true) }()
//	go func() { collector.RecordInsert(2000) }()
//	go func() { collector.RecordMigration(128) }()
//
// # Best Practices
//
// 1. Reuse MeterProvider across map instances:
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector1, _ := xanthosotel.NewOTelMetricsCollector(provider)
//	collector2, _ := xanthosotel.NewOTelMetricsCollector(provider,
//	    xanthosotel.WithMeterName("index2"))
//
// 2. Always shutdown MeterProvider on exit:
//
//	defer func() {
//	    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	    defer cancel()
//	    if err := provider.Shutdown(ctx); err != nil {
//	        log.Printf("Failed to shutdown meter provider: %v", err)
//	    }
//	}()
//
// 3. Monitor key metrics:
//   - Hit ratio trend over time
//   - P99 lookup latency against your budget
//   - Cycles in flight: should return to zero quickly; a cycle that stays
//     open means the migration quota is too small for the insert rate
//
// # Examples
//
// Complete working example with Docker Compose:
//
//	examples/otel-prometheus/
//	├── main.go              # Application with simulated workload
//	├── docker-compose.yml   # Prometheus + Grafana stack
//	├── prometheus.yml       # Scrape configuration
//	└── README.md            # Setup instructions
//
// # Compatibility
//
//   - Go: 1.23+
//   - OpenTelemetry: v1.31.0+
//   - Prometheus: v2.30.0+
//
// # License
//
// Same as xanthos core (see LICENSE in main repository).
package otel
