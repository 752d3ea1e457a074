// Package chain implements the Arena primitives: allocation, release and
// O(1) link accessors. Every accessor panics on an ID that is out of range
// or no longer live; that is a programmer error in the same sense as an
// out-of-range slice index.
package chain

import "fmt"

// New allocates a detached node holding v and returns its ID.
// Released slots are reused before the arena grows.
// Complexity: amortized O(1).
func (a *Arena) New(v int) ID {
	// 1) Prefer a recycled slot to keep the arena compact
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[id] = node{value: v, next: Nil, prev: Nil, live: true}
		a.live++

		return id
	}

	// 2) Otherwise append a new slot; its index is its ID
	a.nodes = append(a.nodes, node{value: v, next: Nil, prev: Nil, live: true})
	a.live++

	return ID(len(a.nodes) - 1)
}

// Free releases id back to the arena. Its links are cleared so that the
// slot cannot keep anything reachable. Freeing Nil is a no-op.
func (a *Arena) Free(id ID) {
	if id == Nil {
		return
	}
	n := a.slot(id)
	*n = node{next: Nil, prev: Nil}
	a.free = append(a.free, id)
	a.live--
}

// Live reports whether id refers to an allocated node.
func (a *Arena) Live(id ID) bool {
	return id >= 0 && int(id) < len(a.nodes) && a.nodes[id].live
}

// Len returns the number of live nodes across all chains in the arena.
func (a *Arena) Len() int { return a.live }

// Cap returns the number of slots the arena has ever allocated.
func (a *Arena) Cap() int { return len(a.nodes) }

// Value returns the payload of id.
func (a *Arena) Value(id ID) int { return a.slot(id).value }

// SetValue overwrites the payload of id.
func (a *Arena) SetValue(id ID, v int) { a.slot(id).value = v }

// Next returns the forward link of id.
func (a *Arena) Next(id ID) ID { return a.slot(id).next }

// SetNext points the forward link of id at to (which may be Nil).
func (a *Arena) SetNext(id, to ID) {
	a.check(to)
	a.slot(id).next = to
}

// Prev returns the back link of id.
func (a *Arena) Prev(id ID) ID { return a.slot(id).prev }

// SetPrev points the back link of id at to (which may be Nil).
func (a *Arena) SetPrev(id, to ID) {
	a.check(to)
	a.slot(id).prev = to
}

// Link sets from.next = to and, when to is not Nil, to.prev = from.
// It is the doubly-linked equivalent of SetNext.
func (a *Arena) Link(from, to ID) {
	a.SetNext(from, to)
	if to != Nil {
		a.slot(to).prev = from
	}
}

// slot returns the live node behind id or panics.
func (a *Arena) slot(id ID) *node {
	if !a.Live(id) {
		panic(fmt.Sprintf("chain: invalid node id %d", id))
	}

	return &a.nodes[id]
}

// check panics if to is neither Nil nor live.
func (a *Arena) check(to ID) {
	if to != Nil && !a.Live(to) {
		panic(fmt.Sprintf("chain: link to invalid node id %d", to))
	}
}
