// table.go: fixed-capacity chained bucket table
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Node is an intrusive hash link embedded inside a caller-owned record.
// The map never allocates or frees records: it only links and unlinks the
// Node field the caller embeds. Callers set Hash before handing the node
// to the map; the map never computes hashes itself.
//
// Embed Node as the first field of a record to recover the record from a
// *Node with a pointer conversion (the pattern GenericMap uses internally):
//
//	type session struct {
//	    node  xanthos.Node
//	    token string
//	}
type Node struct {
	next *Node

	// Hash is the precomputed 64-bit hash code of the record's key.
	Hash uint64
}

// EqualsFunc reports whether two link-bearing records represent the same key.
// It is invoked only after the two 64-bit hash codes already match.
type EqualsFunc func(a, b *Node) bool

// VisitFunc is called for every node during a full traversal.
// Returning false stops the traversal.
type VisitFunc func(n *Node) bool

// bucketTable is a fixed-capacity chained hash table: an array of slot
// chains, a power-of-two mask and a live-node count. It has no resize logic
// of its own; Map coordinates growth across a pair of bucketTables.
type bucketTable struct {
	slots []*Node
	mask  uint64
	count int
}

// initialized reports whether init has allocated backing storage.
func (t *bucketTable) initialized() bool {
	return t.slots != nil
}

// capacity returns the slot count, or 0 for an uninitialized table.
func (t *bucketTable) capacity() int {
	return len(t.slots)
}

// init allocates a zero-filled slot array, so every slot starts empty.
// Capacity must be a power of two greater than zero; anything else is a
// programmer error and panics.
func (t *bucketTable) init(capacity int) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic(NewErrInvalidCapacity(capacity))
	}
	t.slots = make([]*Node, capacity)
	t.mask = uint64(capacity - 1)
	t.count = 0
}

// insert pushes the node onto the head of its slot chain. O(1).
func (t *bucketTable) insert(n *Node) {
	pos := n.Hash & t.mask
	n.next = t.slots[pos]
	t.slots[pos] = n
	t.count++
}

// lookup returns the incoming link that points at the matching node: the
// slot head or a predecessor's next field. Returning the link instead of the
// node keeps a subsequent detach O(1), with no second chain walk. Returns
// nil when there is no match, including on an uninitialized table.
//
// Hash codes are compared before eq is called, ruling out most candidates
// with a cheap integer compare.
func (t *bucketTable) lookup(key *Node, eq EqualsFunc) **Node {
	if t.slots == nil {
		return nil
	}
	pos := key.Hash & t.mask
	from := &t.slots[pos]
	for cur := *from; cur != nil; cur = *from {
		if cur.Hash == key.Hash && eq(cur, key) {
			return from
		}
		from = &cur.next
	}
	return nil
}

// detach splices out the node the incoming link points at and returns it.
// The link must come from a lookup on this table with no structural mutation
// in between.
func (t *bucketTable) detach(from **Node) *Node {
	node := *from
	*from = node.next
	node.next = nil
	t.count--
	return node
}

// foreach visits every node, slot by slot in index order and most recently
// inserted first within a slot. Returns false if the visitor stopped the
// traversal early. A no-op on an uninitialized table.
func (t *bucketTable) foreach(visit VisitFunc) bool {
	for i := range t.slots {
		for n := t.slots[i]; n != nil; n = n.next {
			if !visit(n) {
				return false
			}
		}
	}
	return true
}

// release drops the backing storage, reverting to the uninitialized state.
func (t *bucketTable) release() {
	*t = bucketTable{}
}
