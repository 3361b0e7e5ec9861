// map_bench_test.go: micro-benchmarks for the intrusive and generic maps
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"strconv"
	"testing"
)

func BenchmarkMap_Lookup(b *testing.B) {
	m, err := New(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	const n = 1 << 16
	records := make([]*testRecord, n)
	for i := 0; i < n; i++ {
		records[i] = newRecord(uint64(i), HashString(strconv.Itoa(i)))
		m.Insert(&records[i].node)
	}
	for m.Migrating() {
		probe := newRecord(n, 0)
		m.Lookup(&probe.node, recordEquals)
	}

	probe := newRecord(0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := uint64(i) & (n - 1)
		probe.key = idx
		probe.node.Hash = records[idx].node.Hash
		if m.Lookup(&probe.node, recordEquals) == nil {
			b.Fatal("lookup miss")
		}
	}
}

func BenchmarkMap_Insert(b *testing.B) {
	m, err := New(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	records := make([]*testRecord, b.N)
	for i := range records {
		records[i] = newRecord(uint64(i), HashString(strconv.Itoa(i)))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(&records[i].node)
	}
}

func BenchmarkMap_LookupDuringMigration(b *testing.B) {
	// A tiny quota keeps a cycle alive, so every lookup pays the
	// per-operation migration step.
	m, err := New(Config{MaxLoadFactor: 1, MigrationQuota: 1})
	if err != nil {
		b.Fatal(err)
	}

	const n = 1 << 12
	records := make([]*testRecord, n)
	for i := 0; i < n; i++ {
		records[i] = newRecord(uint64(i), HashString(strconv.Itoa(i)))
		m.Insert(&records[i].node)
	}

	probe := newRecord(0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := uint64(i) & (n - 1)
		probe.key = idx
		probe.node.Hash = records[idx].node.Hash
		m.Lookup(&probe.node, recordEquals)
	}
}

func BenchmarkGenericMap_Put(b *testing.B) {
	m, err := NewGenericMap[string, int](DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(keys[i], i)
	}
}

func BenchmarkGenericMap_Get(b *testing.B) {
	m, err := NewGenericMap[string, int](DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	const n = 1 << 16
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = strconv.Itoa(i)
		m.Put(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, found := m.Get(keys[uint64(i)&(n-1)]); !found {
			b.Fatal("miss")
		}
	}
}

func BenchmarkHashString(b *testing.B) {
	key := "user:1234567890"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashString(key)
	}
}
