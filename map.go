// map.go: progressive-rehash map over an active/retiring table pair
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Map presents one logical hash map over two internal bucket tables: an
// active table receiving inserts and a retiring table being drained. When
// the active table's load crosses the configured maximum, it is demoted to
// retiring and a fresh active table is allocated at twice the capacity.
// Every subsequent operation then moves up to MigrationQuota nodes across,
// so the cost of growth is spread over many calls instead of one pause.
//
// Map is not safe for concurrent use. Every operation runs to completion
// and returns; callers needing concurrency must serialize access externally.
// Equality and visitor callbacks must not mutate the map they were invoked
// from: structural mutation during a traversal panics with
// XANTHOS_MUTATION_DURING_SCAN.
type Map struct {
	active   bucketTable
	retiring bucketTable
	cursor   uint64 // next retiring slot the migration scan resumes at

	// Tunables, fixed at construction.
	initialCapacity int
	maxLoadFactor   int
	migrationQuota  int

	logger       Logger
	timeProvider TimeProvider
	metrics      MetricsCollector

	iterating bool

	// Operation counters for Stats.
	hits     uint64
	misses   uint64
	inserts  uint64
	deletes  uint64
	migrated uint64
	cycles   uint64
}

// New creates a Map with the given configuration.
// Returns a configuration error (XANTHOS_INVALID_*) when an explicit
// tunable is out of range; zero values fall back to defaults.
func New(config Config) (*Map, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Map{
		initialCapacity: config.InitialCapacity,
		maxLoadFactor:   config.MaxLoadFactor,
		migrationQuota:  config.MigrationQuota,
		logger:          config.Logger,
		timeProvider:    config.TimeProvider,
		metrics:         config.MetricsCollector,
	}, nil
}

// Lookup performs one bounded migration step, probes the active table and
// falls back to the retiring table. Returns the matching node, or nil when
// the key is absent. A miss is a normal outcome, not an error.
func (m *Map) Lookup(key *Node, eq EqualsFunc) *Node {
	if key == nil {
		panic(NewErrNilNode("Lookup"))
	}
	if eq == nil {
		panic(NewErrNilCallback("Lookup", "equals"))
	}
	if m.iterating {
		panic(NewErrMutationDuringScan("Lookup"))
	}

	start := m.timeProvider.Now()
	m.migrate()

	from := m.active.lookup(key, eq)
	if from == nil {
		from = m.retiring.lookup(key, eq)
	}
	if from == nil {
		m.misses++
		m.metrics.RecordLookup(m.timeProvider.Now()-start, false)
		return nil
	}

	m.hits++
	m.metrics.RecordLookup(m.timeProvider.Now()-start, true)
	return *from
}

// Insert links the caller-owned node into the map. The node's Hash field
// must already be set; duplicate keys are the caller's responsibility (use
// GenericMap for update-or-insert semantics).
//
// The active table is lazily allocated on first use. After inserting and
// helping any in-flight migration, Insert starts a new rehash cycle when no
// cycle is in progress and the active table's load exceeds the configured
// maximum: the active table becomes retiring and a new active table twice
// its capacity takes over, with the migration cursor reset to zero.
func (m *Map) Insert(n *Node) {
	if n == nil {
		panic(NewErrNilNode("Insert"))
	}
	if m.iterating {
		panic(NewErrMutationDuringScan("Insert"))
	}

	start := m.timeProvider.Now()
	if !m.active.initialized() {
		m.active.init(m.initialCapacity)
	}
	m.active.insert(n)
	m.inserts++

	m.migrate()

	// A new cycle only starts once the previous one has fully drained.
	// Under sustained insert pressure growth is deferred, not stacked:
	// quota and load factor must be tuned so a cycle completes before the
	// next one is needed.
	if !m.retiring.initialized() && m.active.count > m.active.capacity()*m.maxLoadFactor {
		m.startCycle()
	}

	m.metrics.RecordInsert(m.timeProvider.Now() - start)
}

// Delete performs one bounded migration step, then detaches the matching
// node from the active table, falling back to the retiring table. Returns
// the removed node, or nil when the key is absent.
func (m *Map) Delete(key *Node, eq EqualsFunc) *Node {
	if key == nil {
		panic(NewErrNilNode("Delete"))
	}
	if eq == nil {
		panic(NewErrNilCallback("Delete", "equals"))
	}
	if m.iterating {
		panic(NewErrMutationDuringScan("Delete"))
	}

	start := m.timeProvider.Now()
	m.migrate()

	if from := m.active.lookup(key, eq); from != nil {
		node := m.active.detach(from)
		m.deletes++
		m.metrics.RecordDelete(m.timeProvider.Now() - start)
		return node
	}
	if from := m.retiring.lookup(key, eq); from != nil {
		node := m.retiring.detach(from)
		m.finishCycleIfDrained()
		m.deletes++
		m.metrics.RecordDelete(m.timeProvider.Now() - start)
		return node
	}

	m.metrics.RecordDelete(m.timeProvider.Now() - start)
	return nil
}

// Len returns the number of nodes across both tables.
func (m *Map) Len() int {
	return m.active.count + m.retiring.count
}

// ForEach visits the active table fully, then the retiring table, stopping
// as soon as the visitor returns false. Within a slot, nodes are visited
// most recently inserted first. The visitor must not mutate the map.
func (m *Map) ForEach(visit VisitFunc) {
	if visit == nil {
		panic(NewErrNilCallback("ForEach", "visit"))
	}

	m.iterating = true
	defer func() { m.iterating = false }()

	if m.active.foreach(visit) {
		m.retiring.foreach(visit)
	}
}

// Clear releases both tables' backing storage unconditionally and resets
// all counters. The map is reusable afterwards; linked nodes remain owned
// by the caller.
func (m *Map) Clear() {
	if m.iterating {
		panic(NewErrMutationDuringScan("Clear"))
	}

	m.active.release()
	m.retiring.release()
	m.cursor = 0

	m.hits = 0
	m.misses = 0
	m.inserts = 0
	m.deletes = 0
	m.migrated = 0
	m.cycles = 0
}

// Migrating reports whether a rehash cycle is in progress, which is exactly
// when the retiring table still holds storage.
func (m *Map) Migrating() bool {
	return m.retiring.initialized()
}

// Stats returns a snapshot of the map's counters and table geometry.
func (m *Map) Stats() Stats {
	return Stats{
		Hits:             m.hits,
		Misses:           m.misses,
		Inserts:          m.inserts,
		Deletes:          m.deletes,
		Migrated:         m.migrated,
		Cycles:           m.cycles,
		Size:             m.Len(),
		ActiveCapacity:   m.active.capacity(),
		RetiringCapacity: m.retiring.capacity(),
		Migrating:        m.retiring.initialized(),
	}
}

// startCycle demotes the active table to retiring and allocates a new
// active table at double the capacity. The first migration work of the new
// cycle happens on the next operation.
func (m *Map) startCycle() {
	newCapacity := m.active.capacity() * 2

	m.retiring = m.active
	m.active = bucketTable{}
	m.active.init(newCapacity)
	m.cursor = 0
	m.cycles++

	m.metrics.RecordCycleStart(newCapacity)
	m.logger.Debug("rehash cycle started",
		"new_capacity", newCapacity,
		"retiring_count", m.retiring.count)
}

// migrate moves up to migrationQuota nodes from the retiring table into the
// active table, resuming the slot scan at the cursor. An empty slot advances
// the cursor without charging quota; a non-empty slot has its head node
// moved and is revisited until drained, so the cursor only ever moves
// forward within a cycle. Worst-case cost per call is O(quota) moves plus
// the empty slots skipped.
func (m *Map) migrate() {
	if !m.retiring.initialized() {
		return
	}

	moved := 0
	for moved < m.migrationQuota && m.retiring.count > 0 {
		from := &m.retiring.slots[m.cursor]
		if *from == nil {
			m.cursor++
			continue
		}
		m.active.insert(m.retiring.detach(from))
		moved++
	}

	if moved > 0 {
		m.migrated += uint64(moved)
		m.metrics.RecordMigration(moved)
	}

	m.finishCycleIfDrained()
}

// finishCycleIfDrained releases the retiring table once its live count hits
// zero, ending the cycle. Deletes that drain the last retiring node call
// this too, so storage is freed exactly when the count reaches zero.
func (m *Map) finishCycleIfDrained() {
	if !m.retiring.initialized() || m.retiring.count > 0 {
		return
	}

	m.retiring.release()
	m.cursor = 0

	m.metrics.RecordCycleComplete()
	m.logger.Debug("rehash cycle complete",
		"active_capacity", m.active.capacity(),
		"size", m.active.count)
}
