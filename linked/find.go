// Package linked implements read-only lookups: middle, n-th from end,
// linear search and the intersection of two chains.
package linked

import "github.com/katalvlaran/linearkit/chain"

// Middle returns the middle node using a slow/fast cursor pair. For an even
// length it returns the upper middle: [1 2 3 4] yields the node holding 3.
// Returns Nil for an empty chain.
// Complexity: O(n) time, O(1) space.
func Middle(a *chain.Arena, head chain.ID) chain.ID {
	slow, fast := head, head
	for fast != chain.Nil && a.Next(fast) != chain.Nil {
		slow = a.Next(slow)
		fast = a.Next(a.Next(fast))
	}

	return slow
}

// NthFromEnd returns the n-th node counted from the tail (n == 1 is the
// tail). An empty chain yields (Nil, nil). For n < 1 or n > Len it returns
// ErrNotFound without reading past the end.
// Complexity: O(n) time, O(1) space.
func NthFromEnd(a *chain.Arena, head chain.ID, n int) (chain.ID, error) {
	if head == chain.Nil {
		return chain.Nil, nil
	}
	if n < 1 {
		return chain.Nil, ErrNotFound
	}

	// 1) Put the lead cursor n nodes ahead
	lead := head
	for i := 0; i < n; i++ {
		if lead == chain.Nil {
			return chain.Nil, ErrNotFound
		}
		lead = a.Next(lead)
	}

	// 2) Move both until lead falls off; trail is then n from the end
	trail := head
	for lead != chain.Nil {
		lead = a.Next(lead)
		trail = a.Next(trail)
	}

	return trail, nil
}

// Search returns the 1-based position of the first node holding v, or -1.
// Complexity: O(n).
func Search(a *chain.Arena, head chain.ID, v int) int {
	pos := 1
	for cur := head; cur != chain.Nil; cur = a.Next(cur) {
		if a.Value(cur) == v {
			return pos
		}
		pos++
	}

	return -1
}

// Intersection returns the first node shared by two acyclic chains, or Nil.
//
// Each cursor walks its own chain and then restarts on the other one. Both
// therefore cover m+n nodes in total, which aligns them on the shared
// suffix: they meet at the first common node, or both reach Nil together.
// Complexity: O(m+n) time, O(1) space.
func Intersection(a *chain.Arena, h1, h2 chain.ID) chain.ID {
	if h1 == chain.Nil || h2 == chain.Nil {
		return chain.Nil
	}
	c1, c2 := h1, h2
	for c1 != c2 {
		if c1 == chain.Nil {
			c1 = h2
		} else {
			c1 = a.Next(c1)
		}
		if c2 == chain.Nil {
			c2 = h1
		} else {
			c2 = a.Next(c2)
		}
	}

	return c1
}
