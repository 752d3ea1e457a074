// Package linked implements insertion and deletion on doubly chains. Every
// function restores b.prev == a for each a.next == b before returning.
package linked

import "github.com/katalvlaran/linearkit/chain"

// InsertAtHeadDoubly prepends v and returns the new head.
// Complexity: O(1).
func InsertAtHeadDoubly(a *chain.Arena, head chain.ID, v int) chain.ID {
	id := a.New(v)
	a.Link(id, head) // id.next = head, head.prev = id

	return id
}

// InsertAtTailDoubly appends v and returns the head.
// Complexity: O(n).
func InsertAtTailDoubly(a *chain.Arena, head chain.ID, v int) chain.ID {
	id := a.New(v)
	if head == chain.Nil {
		return id
	}
	a.Link(chain.Tail(a, head), id)

	return head
}

// InsertAtPositionDoubly is the doubly counterpart of InsertAtPosition, with
// the same bounds policy.
// Complexity: O(pos).
func InsertAtPositionDoubly(a *chain.Arena, head chain.ID, pos, v int, opts ...Option) (chain.ID, error) {
	o := resolve(opts)
	if pos == 1 {
		return InsertAtHeadDoubly(a, head, v), nil
	}
	if pos < 1 {
		return outOfRange(o, "InsertAtPositionDoubly", head, pos, chain.Len(a, head)+1)
	}

	// 1) Locate the node that will precede the new one
	cur := head
	for i := 1; i < pos-1 && cur != chain.Nil; i++ {
		cur = a.Next(cur)
	}
	if cur == chain.Nil {
		return outOfRange(o, "InsertAtPositionDoubly", head, pos, chain.Len(a, head)+1)
	}

	// 2) cur <-> id <-> old successor
	id := a.New(v)
	a.Link(id, a.Next(cur))
	a.Link(cur, id)

	return head, nil
}

// DeleteHeadDoubly removes the first node; the new head's prev becomes Nil.
// Complexity: O(1).
func DeleteHeadDoubly(a *chain.Arena, head chain.ID) chain.ID {
	if head == chain.Nil {
		return chain.Nil
	}
	next := a.Next(head)
	if next != chain.Nil {
		a.SetPrev(next, chain.Nil)
	}
	a.Free(head)

	return next
}

// DeleteTailDoubly removes the last node by stepping back from it.
// Complexity: O(n).
func DeleteTailDoubly(a *chain.Arena, head chain.ID) chain.ID {
	if head == chain.Nil {
		return chain.Nil
	}
	last := chain.Tail(a, head)
	if last == head {
		a.Free(head)
		return chain.Nil
	}
	a.SetNext(a.Prev(last), chain.Nil)
	a.Free(last)

	return head
}

// DeleteKthDoubly removes the k-th node (1-based) with the DeleteKth bounds
// policy.
// Complexity: O(k).
func DeleteKthDoubly(a *chain.Arena, head chain.ID, k int, opts ...Option) (chain.ID, error) {
	o := resolve(opts)
	if head == chain.Nil {
		return chain.Nil, nil
	}
	if k == 1 {
		return DeleteHeadDoubly(a, head), nil
	}
	if k < 1 {
		return outOfRange(o, "DeleteKthDoubly", head, k, chain.Len(a, head))
	}

	// 1) Walk directly to the victim
	victim := head
	for i := 1; i < k && victim != chain.Nil; i++ {
		victim = a.Next(victim)
	}
	if victim == chain.Nil {
		return outOfRange(o, "DeleteKthDoubly", head, k, chain.Len(a, head))
	}

	// 2) prev <-> next, skipping victim; prev is never Nil since k > 1
	a.Link(a.Prev(victim), a.Next(victim))
	a.Free(victim)

	return head, nil
}
