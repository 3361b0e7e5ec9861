// Package xanthos provides a progressive-rehash hash map for Go.
//
// Xanthos is an intrusive chained hash table that amortizes table growth
// across operations instead of paying for it in one stop-the-world resize.
// It is the indexing primitive underneath key-value stores and caches.
//
// Example usage:
//
//	m, _ := xanthos.NewGenericMap[string, int](xanthos.Config{})
//
//	m.Put("answer", 42)
//	value, found := m.Get("answer")
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

const (
	// Version of the Xanthos map library
	Version = "v0.1.0-dev"

	// DefaultInitialCapacity is the capacity of the first table allocated
	// by a map. Must be a power of two.
	DefaultInitialCapacity = 4

	// DefaultMaxLoadFactor is the average chain length that triggers a
	// new rehash cycle (live nodes per slot).
	DefaultMaxLoadFactor = 8

	// DefaultMigrationQuota is the number of nodes each operation moves
	// from the retiring table into the active one.
	DefaultMigrationQuota = 128
)
