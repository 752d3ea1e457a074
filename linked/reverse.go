// Package linked implements in-place reversal for singly and doubly chains.
package linked

import "github.com/katalvlaran/linearkit/chain"

// Reverse inverts a singly chain in place and returns the new head (the old
// tail). Empty and single-node chains are returned unchanged.
//
// Steps: keep (prev, cur, next); point cur.next at prev; shift the window
// one node right; stop when cur is Nil. prev is then the new head.
//
// Complexity: O(n) time, O(1) space.
func Reverse(a *chain.Arena, head chain.ID) chain.ID {
	prev, cur := chain.Nil, head
	for cur != chain.Nil {
		next := a.Next(cur) // remember the rest before cutting
		a.SetNext(cur, prev)
		prev, cur = cur, next
	}

	return prev
}

// ReverseDoubly inverts a doubly chain by swapping next and prev on every
// node. The old tail becomes the new head; its prev is Nil after the swap.
// Complexity: O(n) time, O(1) space.
func ReverseDoubly(a *chain.Arena, head chain.ID) chain.ID {
	newHead, cur := head, head
	for cur != chain.Nil {
		next := a.Next(cur)
		a.SetNext(cur, a.Prev(cur))
		a.SetPrev(cur, next)
		newHead, cur = cur, next
	}

	return newHead
}
