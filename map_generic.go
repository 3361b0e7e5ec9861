// map_generic.go: type-safe generic map API
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"strconv"
	"unsafe"
)

// entry is the internal record GenericMap links into the intrusive map.
// node must stay the first field: the map hands back *Node pointers and
// entryOf recovers the enclosing entry with a pointer conversion.
type entry[K comparable, V any] struct {
	node  Node
	key   K
	value V
}

// entryOf recovers the entry that embeds the given node.
func entryOf[K comparable, V any](n *Node) *entry[K, V] {
	// #nosec G103 - node is always the first field of entry, so the node
	// pointer and the entry pointer are the same address
	return (*entry[K, V])(unsafe.Pointer(n))
}

// GenericMap provides a type-safe map interface using Go generics on top of
// the intrusive Map. It owns its entries, hashes keys itself, and gives Put
// update-or-insert semantics. K must be comparable; V can be any type.
//
// Like Map, it is not safe for concurrent use.
//
// Example:
//
//	m, err := xanthos.NewGenericMap[string, User](xanthos.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.Put("user:123", user)
//	if value, found := m.Get("user:123"); found {
//	    fmt.Printf("User: %+v\n", value)
//	}
type GenericMap[K comparable, V any] struct {
	inner *Map
	eq    EqualsFunc
}

// NewGenericMap creates a new type-safe generic map.
//
// Parameters:
//   - config: Map configuration (InitialCapacity, MaxLoadFactor, MigrationQuota, etc.)
//
// Returns a new GenericMap instance, or a configuration error.
func NewGenericMap[K comparable, V any](config Config) (*GenericMap[K, V], error) {
	inner, err := New(config)
	if err != nil {
		return nil, err
	}
	return &GenericMap[K, V]{
		inner: inner,
		eq: func(a, b *Node) bool {
			return entryOf[K, V](a).key == entryOf[K, V](b).key
		},
	}, nil
}

// Put stores a key-value pair. An existing entry with the same key has its
// value updated in place; otherwise a new entry is linked in.
func (m *GenericMap[K, V]) Put(key K, value V) {
	probe := entry[K, V]{node: Node{Hash: hashKey(key)}, key: key}
	if n := m.inner.Lookup(&probe.node, m.eq); n != nil {
		entryOf[K, V](n).value = value
		return
	}

	e := &entry[K, V]{node: Node{Hash: probe.node.Hash}, key: key, value: value}
	m.inner.Insert(&e.node)
}

// Get retrieves the value stored under key.
//
// Returns:
//   - value: The stored value (zero value if not found)
//   - found: true if the key is present
func (m *GenericMap[K, V]) Get(key K) (value V, found bool) {
	probe := entry[K, V]{node: Node{Hash: hashKey(key)}, key: key}
	if n := m.inner.Lookup(&probe.node, m.eq); n != nil {
		return entryOf[K, V](n).value, true
	}

	var zero V
	return zero, false
}

// Has checks if a key exists without retrieving the value.
func (m *GenericMap[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// Delete removes a key from the map.
// Returns true if the key was present and removed.
func (m *GenericMap[K, V]) Delete(key K) bool {
	probe := entry[K, V]{node: Node{Hash: hashKey(key)}, key: key}
	return m.inner.Delete(&probe.node, m.eq) != nil
}

// Len returns the current number of entries.
func (m *GenericMap[K, V]) Len() int {
	return m.inner.Len()
}

// Range visits every entry, stopping when fn returns false.
// fn must not mutate the map; doing so panics.
func (m *GenericMap[K, V]) Range(fn func(key K, value V) bool) {
	m.inner.ForEach(func(n *Node) bool {
		e := entryOf[K, V](n)
		return fn(e.key, e.value)
	})
}

// Clear removes all entries and resets statistics.
func (m *GenericMap[K, V]) Clear() {
	m.inner.Clear()
}

// Migrating reports whether a rehash cycle is in progress.
func (m *GenericMap[K, V]) Migrating() bool {
	return m.inner.Migrating()
}

// Stats returns current map statistics.
func (m *GenericMap[K, V]) Stats() Stats {
	return m.inner.Stats()
}

// hashKey hashes a comparable key through its string form.
func hashKey[K comparable](key K) uint64 {
	return HashString(keyToString(key))
}

// keyToString converts a key of any comparable type to string efficiently.
// Uses type switch to avoid allocations for common types (string, int, uint).
// Falls back to fmt.Sprintf for other types.
func keyToString[K comparable](key K) string {
	// Type assertion to interface{} to enable type switch
	switch v := any(key).(type) {
	case string:
		// Zero allocation for string keys
		return v
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		// Fallback to fmt.Sprintf for other types (structs, arrays, etc.)
		// This allocates but is only used for uncommon key types
		return fmt.Sprintf("%v", key)
	}
}
