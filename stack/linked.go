package stack

import (
	"github.com/katalvlaran/linearkit/chain"
	"github.com/katalvlaran/linearkit/linked"
)

// Linked is an unbounded stack stored as a singly chain: the chain head is
// the top of the stack. Popped nodes go back to the arena's free list, so a
// stack that oscillates in size does not grow its arena.
type Linked struct {
	arena *chain.Arena
	head  chain.ID
	n     int
}

// NewLinked returns an empty stack. If arena is nil a private one is
// created; passing a shared arena lets several chains draw from one pool.
func NewLinked(arena *chain.Arena) *Linked {
	if arena == nil {
		arena = chain.NewArena()
	}
	return &Linked{arena: arena, head: chain.Nil}
}

// Push places v on top.
func (s *Linked) Push(v int) {
	s.head = linked.InsertAtHead(s.arena, s.head, v)
	s.n++
}

// Pop removes and returns the top value or returns ErrUnderflow.
func (s *Linked) Pop() (int, error) {
	if s.head == chain.Nil {
		return 0, ErrUnderflow
	}
	v := s.arena.Value(s.head)
	s.head = linked.DeleteHead(s.arena, s.head)
	s.n--

	return v, nil
}

// Peek returns the top value without removing it.
func (s *Linked) Peek() (int, error) {
	if s.head == chain.Nil {
		return 0, ErrUnderflow
	}
	return s.arena.Value(s.head), nil
}

// Len returns the number of stored values.
func (s *Linked) Len() int { return s.n }

// Empty reports whether the stack holds no values.
func (s *Linked) Empty() bool { return s.head == chain.Nil }

// Values returns the stored values from top to bottom.
func (s *Linked) Values() []int {
	vals, _ := chain.Values(s.arena, s.head) // the stack never links a cycle
	return vals
}
