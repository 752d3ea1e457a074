// Package chain declares ID, Arena, the arena options and the sentinel
// errors reported by chain views.
package chain

import "errors"

// ID addresses one node inside an Arena. IDs are stable: a node keeps its ID
// for as long as it is live, no matter how it is relinked.
type ID int

// Nil is the absent link and the handle of the empty chain.
const Nil ID = -1

// Sentinel errors for chain views and invariant checks.
var (
	// ErrCyclic indicates a forward walk visited more nodes than the arena
	// holds, i.e. the chain loops back on itself.
	ErrCyclic = errors.New("chain: chain is cyclic")

	// ErrBrokenBackLink indicates that for some adjacent pair a.next == b,
	// b.prev != a.
	ErrBrokenBackLink = errors.New("chain: back link does not match forward link")

	// ErrNotCircular indicates that a circular walk reached Nil, or did not
	// return to its start, before exhausting the arena.
	ErrNotCircular = errors.New("chain: chain is not circular")
)

// node is the storage slot behind an ID.
type node struct {
	value int  // payload
	next  ID   // owning forward link
	prev  ID   // non-owning back link; Nil for singly chains
	live  bool // false once released to the free list
}

// Option configures an Arena at construction time.
type Option func(*Arena)

// WithCapacity preallocates room for n nodes.
// Panics on a negative n; a capacity can never be meaningfully negative.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("chain: WithCapacity(n<0)")
	}
	return func(a *Arena) {
		a.nodes = make([]node, 0, n)
	}
}

// Arena owns the nodes of any number of chains.
//
// The zero value is not usable; construct with NewArena.
type Arena struct {
	nodes []node // slot storage, indexed by ID
	free  []ID   // released slots available for reuse (LIFO)
	live  int    // number of live nodes
}

// NewArena returns an empty Arena configured by opts.
func NewArena(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	if a.nodes == nil {
		a.nodes = make([]node, 0, 16)
	}

	return a
}
