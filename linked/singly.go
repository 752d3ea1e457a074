// Package linked implements insertion and deletion on singly chains.
package linked

import "github.com/katalvlaran/linearkit/chain"

// InsertAtHead prepends v and returns the new head.
// Complexity: O(1).
func InsertAtHead(a *chain.Arena, head chain.ID, v int) chain.ID {
	id := a.New(v)
	a.SetNext(id, head) // new node owns the old chain

	return id
}

// InsertAtTail appends v and returns the head (a new one if head was Nil).
// Complexity: O(n).
func InsertAtTail(a *chain.Arena, head chain.ID, v int) chain.ID {
	id := a.New(v)
	if head == chain.Nil {
		return id
	}
	a.SetNext(chain.Tail(a, head), id)

	return head
}

// InsertAtPosition inserts v so that it becomes the pos-th node (1-based).
// Valid positions are 1..Len+1. Outside that range the chain is returned
// unchanged; with WithStrictBounds a *RangeError is returned as well.
// Complexity: O(pos).
func InsertAtPosition(a *chain.Arena, head chain.ID, pos, v int, opts ...Option) (chain.ID, error) {
	o := resolve(opts)

	// 1) Position 1 is a head insert, valid even on an empty chain
	if pos == 1 {
		return InsertAtHead(a, head, v), nil
	}
	if pos < 1 {
		return outOfRange(o, "InsertAtPosition", head, pos, chain.Len(a, head)+1)
	}

	// 2) Walk to the (pos-1)-th node; running off the end means pos > Len+1
	cur := head
	for i := 1; i < pos-1 && cur != chain.Nil; i++ {
		cur = a.Next(cur)
	}
	if cur == chain.Nil {
		return outOfRange(o, "InsertAtPosition", head, pos, chain.Len(a, head)+1)
	}

	// 3) Splice the new node after cur
	id := a.New(v)
	a.SetNext(id, a.Next(cur))
	a.SetNext(cur, id)

	return head, nil
}

// InsertSorted inserts v into an ascending chain, keeping it ascending.
// v is placed after any existing equal values. If head is not ascending the
// result position is unspecified; with WithValidation a *PreconditionError
// is returned and the chain is left unchanged.
// Complexity: O(k), k = number of nodes before the insertion point.
func InsertSorted(a *chain.Arena, head chain.ID, v int, opts ...Option) (chain.ID, error) {
	o := resolve(opts)
	if o.Validate && !ascending(a, head) {
		return head, &PreconditionError{Op: "InsertSorted", Reason: "chain is not ascending"}
	}

	// 1) Empty chain, or v sorts before the current head
	if head == chain.Nil || v < a.Value(head) {
		return InsertAtHead(a, head, v), nil
	}

	// 2) Advance while the successor is still <= v
	cur := head
	for nxt := a.Next(cur); nxt != chain.Nil && a.Value(nxt) <= v; nxt = a.Next(cur) {
		cur = nxt
	}

	// 3) Splice after cur
	id := a.New(v)
	a.SetNext(id, a.Next(cur))
	a.SetNext(cur, id)

	return head, nil
}

// DeleteHead unlinks and frees the first node, returning the new head.
// Complexity: O(1).
func DeleteHead(a *chain.Arena, head chain.ID) chain.ID {
	if head == chain.Nil {
		return chain.Nil
	}
	next := a.Next(head)
	a.Free(head)

	return next
}

// DeleteTail unlinks and frees the last node, returning the head
// (Nil if the chain had a single node).
// Complexity: O(n).
func DeleteTail(a *chain.Arena, head chain.ID) chain.ID {
	if head == chain.Nil {
		return chain.Nil
	}
	if a.Next(head) == chain.Nil {
		a.Free(head)
		return chain.Nil
	}

	// Stop on the second-to-last node
	cur := head
	for a.Next(a.Next(cur)) != chain.Nil {
		cur = a.Next(cur)
	}
	last := a.Next(cur)
	a.SetNext(cur, chain.Nil)
	a.Free(last)

	return head
}

// DeleteKth unlinks and frees the k-th node (1-based). Valid k are 1..Len.
// An empty chain is returned as is. For other out-of-range k the chain is
// unchanged; with WithStrictBounds a *RangeError is returned as well.
// Complexity: O(k).
func DeleteKth(a *chain.Arena, head chain.ID, k int, opts ...Option) (chain.ID, error) {
	o := resolve(opts)
	if head == chain.Nil {
		return chain.Nil, nil
	}
	if k == 1 {
		return DeleteHead(a, head), nil
	}
	if k < 1 {
		return outOfRange(o, "DeleteKth", head, k, chain.Len(a, head))
	}

	// 1) Walk to the (k-1)-th node
	cur := head
	for i := 1; i < k-1 && cur != chain.Nil; i++ {
		cur = a.Next(cur)
	}
	if cur == chain.Nil || a.Next(cur) == chain.Nil {
		return outOfRange(o, "DeleteKth", head, k, chain.Len(a, head))
	}

	// 2) Bypass and release the victim
	victim := a.Next(cur)
	a.SetNext(cur, a.Next(victim))
	a.Free(victim)

	return head, nil
}

// ascending reports whether values never decrease along the chain.
func ascending(a *chain.Arena, head chain.ID) bool {
	if head == chain.Nil {
		return true
	}
	for cur := head; a.Next(cur) != chain.Nil; cur = a.Next(cur) {
		if a.Value(a.Next(cur)) < a.Value(cur) {
			return false
		}
	}

	return true
}
