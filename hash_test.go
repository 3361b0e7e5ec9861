// hash_test.go: tests for the FNV-1a hash helpers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"hash/fnv"
	"testing"
)

func TestHashString_KnownVectors(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"", 14695981039346656037}, // FNV-1a 64 offset basis
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}
	for _, tt := range tests {
		if got := HashString(tt.input); got != tt.want {
			t.Errorf("HashString(%q) = %#x, want %#x", tt.input, got, tt.want)
		}
	}
}

func TestHashString_MatchesStdlib(t *testing.T) {
	for _, input := range []string{"", "x", "user:12345", "the quick brown fox"} {
		h := fnv.New64a()
		h.Write([]byte(input))
		if got, want := HashString(input), h.Sum64(); got != want {
			t.Errorf("HashString(%q) = %#x, stdlib says %#x", input, got, want)
		}
	}
}

func TestHashBytes_MatchesHashString(t *testing.T) {
	for _, input := range []string{"", "key", "\x00\xff binary \x7f"} {
		if HashBytes([]byte(input)) != HashString(input) {
			t.Errorf("HashBytes and HashString disagree on %q", input)
		}
	}
}

func TestHashString_Distribution(t *testing.T) {
	// Sequential keys must not collapse onto a few slots of a small table.
	const slots = 64
	seen := make(map[uint64]bool)
	for i := 0; i < 1024; i++ {
		seen[HashString(keyToString(i))&(slots-1)] = true
	}
	if len(seen) != slots {
		t.Errorf("sequential keys hit only %d of %d slots", len(seen), slots)
	}
}

func FuzzHashString(f *testing.F) {
	f.Add("")
	f.Add("a")
	f.Add("user:12345")
	f.Add("\x00\xff\x7f")

	f.Fuzz(func(t *testing.T, input string) {
		first := HashString(input)
		if second := HashString(input); second != first {
			t.Errorf("HashString is not deterministic for %q", input)
		}
		if HashBytes([]byte(input)) != first {
			t.Errorf("HashBytes disagrees with HashString for %q", input)
		}
	})
}
