// hash.go: 64-bit key hashing helpers
//
// The map never computes hashes itself; callers precompute Node.Hash with
// whatever function fits their keys. These helpers cover the common cases.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "unsafe"

const (
	fnv64Offset = 14695981039346656037
	fnv64Prime  = 1099511628211
)

// HashString computes a 64-bit hash of a string using the FNV-1a algorithm.
// This is optimized for performance & zero allocations.
func HashString(s string) uint64 {
	hash := uint64(fnv64Offset)

	// Use unsafe to avoid allocations when converting string to []byte
	// #nosec G103 - Safe usage: we only read the string data, no writes or pointer arithmetic
	data := unsafe.Slice(unsafe.StringData(s), len(s))

	for _, b := range data {
		hash ^= uint64(b)
		hash *= fnv64Prime
	}

	return hash
}

// HashBytes computes a 64-bit FNV-1a hash of a byte slice.
func HashBytes(data []byte) uint64 {
	hash := uint64(fnv64Offset)
	for _, b := range data {
		hash ^= uint64(b)
		hash *= fnv64Prime
	}
	return hash
}
