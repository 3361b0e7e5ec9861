// Package xanthos provides an incremental-resizing hash map built on
// progressive rehashing, designed as the indexing primitive underneath
// key-value stores and caches.
//
// # Overview
//
// Conventional hash tables pay for growth in one large pause: when the load
// factor crosses a threshold, every entry is rehashed into a bigger table
// before the triggering operation returns. Xanthos spreads that cost across
// many operations instead. A map owns two internal tables: an active one
// receiving inserts and a retiring one being drained. Every operation moves
// a bounded number of nodes from retiring to active, so no single call ever
// costs more than the configured migration quota plus the chains it touches.
//
// Design focus:
//   - Predictable latency: growth cost is amortized, never a stop-the-world rehash
//   - Zero allocation on the intrusive path: callers own every record
//   - Type safety: GenericMap[K comparable, V any] on top of the intrusive core
//   - Observability: MetricsCollector interface, OpenTelemetry integration
//     (optional separate package)
//
// # Intrusive core
//
// The core API works on caller-owned records that embed a Node link plus a
// precomputed 64-bit hash code. The map never allocates, frees, or hashes:
// it only links and unlinks. Embed Node as the first field to recover the
// record from a *Node with a pointer conversion:
//
//	type session struct {
//	    node  xanthos.Node
//	    token string
//	    user  int
//	}
//
//	func sessionOf(n *xanthos.Node) *session {
//	    return (*session)(unsafe.Pointer(n))
//	}
//
//	equals := func(a, b *xanthos.Node) bool {
//	    return sessionOf(a).token == sessionOf(b).token
//	}
//
//	m, _ := xanthos.New(xanthos.Config{})
//	s := &session{token: "abc", user: 42}
//	s.node.Hash = xanthos.HashString(s.token)
//	m.Insert(&s.node)
//
//	probe := &session{token: "abc"}
//	probe.node.Hash = xanthos.HashString(probe.token)
//	if n := m.Lookup(&probe.node, equals); n != nil {
//	    fmt.Println(sessionOf(n).user)
//	}
//
// # Quick Start
//
// Most callers want the generic API, which owns its entries and provides
// update-or-insert semantics:
//
//	import "github.com/agilira/xanthos"
//
//	func main() {
//	    m, err := xanthos.NewGenericMap[string, int](xanthos.Config{})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    m.Put("answer", 42)
//	    if value, found := m.Get("answer"); found {
//	        fmt.Println(value)
//	    }
//
//	    m.Range(func(key string, value int) bool {
//	        fmt.Println(key, value)
//	        return true
//	    })
//	}
//
// # Progressive Rehashing
//
// Growth is driven by three construction-time tunables:
//
//   - InitialCapacity (default 4): slot count of the first table, power of two
//   - MaxLoadFactor (default 8): average chain length that triggers a cycle
//   - MigrationQuota (default 128): nodes moved per operation during a cycle
//
// When an insert pushes the active table's load past MaxLoadFactor and no
// cycle is already running, the active table becomes the retiring table and
// a new active table is allocated at twice the capacity. Each subsequent
// Lookup, Insert, or Delete then moves up to MigrationQuota nodes across,
// scanning the retiring slots with a cursor. When the retiring table drains,
// its storage is released and the cycle ends.
//
// Only one cycle runs at a time. If insert volume is so high that the load
// threshold is crossed again before the previous cycle drains, growth is
// deferred until it finishes. This is a capacity-planning contract: tune
// MigrationQuota and MaxLoadFactor so a cycle always completes first. With
// the defaults, a cycle over a table of capacity C drains within about
// C*8/128 operations.
//
// # Concurrency Model
//
// Xanthos is single-threaded by design. Every operation runs to completion
// and returns without suspending; there is no internal locking. Concurrent
// use from multiple goroutines requires external exclusion, such as a
// single-writer discipline or a mutex around the map.
//
// Equality and visitor callbacks must not mutate the map that invoked them.
// Structural mutation during a traversal would invalidate in-flight chain
// references, so the map enforces the contract with a traversal guard that
// panics with XANTHOS_MUTATION_DURING_SCAN.
//
// # Configuration
//
// Complete configuration options:
//
//	config := xanthos.Config{
//	    // Optional: slot count of the first table, power of two (default: 4)
//	    InitialCapacity: 16,
//
//	    // Optional: average chain length triggering growth (default: 8)
//	    MaxLoadFactor: 8,
//
//	    // Optional: nodes moved per operation during a cycle (default: 128)
//	    MigrationQuota: 128,
//
//	    // Optional: Logger for cycle events (default: NoOp)
//	    Logger: myLogger,
//
//	    // Optional: Metrics collector (default: NoOp, zero overhead)
//	    MetricsCollector: metricsCollector,
//
//	    // Optional: Custom time provider for latency metrics (default: cached system time)
//	    TimeProvider: myTimeProvider,
//	}
//
//	m, err := xanthos.NewGenericMap[string, User](config)
//
// Tunables can also be sourced from a watched file with HotConfig; since
// they are fixed per instance, HotConfig feeds the construction of new maps
// rather than mutating live ones.
//
// # Error Handling
//
// Xanthos uses structured errors with error codes:
//
//	_, err := xanthos.New(xanthos.Config{InitialCapacity: 3})
//	if err != nil {
//	    fmt.Println(xanthos.GetErrorCode(err)) // XANTHOS_INVALID_CAPACITY
//	}
//
// A missing key is never an error: Lookup and Delete return nil (or false
// from the generic API). Only true precondition violations abort, as panics
// carrying a structured error:
//
//   - XANTHOS_NIL_NODE: nil node argument
//   - XANTHOS_NIL_CALLBACK: nil equality or visitor callback
//   - XANTHOS_MUTATION_DURING_SCAN: mutation from inside a traversal
//
// Configuration errors are returned, not panicked:
//
//   - XANTHOS_INVALID_CAPACITY: capacity not a power of two
//   - XANTHOS_INVALID_LOAD_FACTOR: negative load factor
//   - XANTHOS_INVALID_QUOTA: negative migration quota
//
// # Observability
//
// Built-in stats tracking:
//
//	stats := m.Stats()
//	fmt.Printf("Hits: %d, Misses: %d, Hit Ratio: %.2f%%\n",
//	    stats.Hits, stats.Misses, stats.HitRatio())
//	fmt.Printf("Size: %d, Cycles: %d, Migrated: %d\n",
//	    stats.Size, stats.Cycles, stats.Migrated)
//
// Enterprise observability with OpenTelemetry (optional):
//
//	import xanthosotel "github.com/agilira/xanthos/otel"
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	metricsCollector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	m, _ := xanthos.NewGenericMap[string, User](xanthos.Config{
//	    MetricsCollector: metricsCollector, // Optional, zero overhead if nil
//	})
//
// The core xanthos package has zero OTEL dependencies. The xanthos/otel
// package is a separate module.
//
// # Packages
//
//   - github.com/agilira/xanthos: Core progressive-rehash map
//   - github.com/agilira/xanthos/otel: OpenTelemetry integration (separate module)
//
// # License
//
// See LICENSE file in the repository.
//
// Contributions welcome at https://github.com/agilira/xanthos
package xanthos
