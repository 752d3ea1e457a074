// Package linked implements the circular chain family. A circular singly
// chain closes with last.next == head; a circular doubly chain additionally
// keeps head.prev == last.
package linked

import "github.com/katalvlaran/linearkit/chain"

// InsertAtHeadCircular makes v the first value of a circular singly chain.
//
//   - Relink: walk to the last node, link it to the new node, return the
//     new node. O(n).
//   - SwapPayload: splice the new node in second place and swap payloads
//     with the head, so the handle is unchanged. O(1).
//
// Both leave the same value sequence.
func InsertAtHeadCircular(a *chain.Arena, head chain.ID, v int, opts ...Option) chain.ID {
	o := resolve(opts)
	id := a.New(v)
	if head == chain.Nil {
		a.SetNext(id, id) // a single node rings to itself
		return id
	}

	if o.Strategy == SwapPayload {
		spliceSecondAndSwap(a, head, id)
		return head
	}

	last := lastOfRing(a, head)
	a.SetNext(last, id)
	a.SetNext(id, head)

	return id
}

// InsertAtTailCircular makes v the last value of a circular singly chain.
//
//   - Relink: walk to the last node and splice after it; handle unchanged. O(n).
//   - SwapPayload: splice second, swap payloads, and hand the second node
//     out as the new head, which makes the old head's payload wrap to the
//     end. O(1).
func InsertAtTailCircular(a *chain.Arena, head chain.ID, v int, opts ...Option) chain.ID {
	o := resolve(opts)
	id := a.New(v)
	if head == chain.Nil {
		a.SetNext(id, id)
		return id
	}

	if o.Strategy == SwapPayload {
		// 10 -> 20 -> 30 becomes 40 -> 10 -> 20 -> 30 after the swap;
		// the node now holding 10 is the new head, so 40 ends the ring.
		spliceSecondAndSwap(a, head, id)
		return id
	}

	last := lastOfRing(a, head)
	a.SetNext(last, id)
	a.SetNext(id, head)

	return head
}

// DeleteHeadCircular removes the first value of a circular singly chain.
// A chain with one node becomes Nil.
//
//   - Relink: walk to the last node, bypass the head, return the old
//     second node. O(n).
//   - SwapPayload: copy the second node's payload into the head and unlink
//     the second node; the handle is unchanged. O(1).
func DeleteHeadCircular(a *chain.Arena, head chain.ID, opts ...Option) chain.ID {
	o := resolve(opts)
	if head == chain.Nil {
		return chain.Nil
	}
	if a.Next(head) == head {
		a.Free(head)
		return chain.Nil
	}

	if o.Strategy == SwapPayload {
		second := a.Next(head)
		a.SetValue(head, a.Value(second))
		a.SetNext(head, a.Next(second))
		a.Free(second)

		return head
	}

	last := lastOfRing(a, head)
	second := a.Next(head)
	a.SetNext(last, second)
	a.Free(head)

	return second
}

// DeleteKthCircular removes the k-th node (1-based, counted from head) of a
// circular singly chain. k == 1 uses DeleteHeadCircular with the configured
// strategy. Valid k are 1..Len; others follow the DeleteKth bounds policy.
// Complexity: O(k), plus O(n) for Relink at k == 1.
func DeleteKthCircular(a *chain.Arena, head chain.ID, k int, opts ...Option) (chain.ID, error) {
	o := resolve(opts)
	if head == chain.Nil {
		return chain.Nil, nil
	}
	if k == 1 {
		return DeleteHeadCircular(a, head, opts...), nil
	}
	if k < 1 {
		return outOfRange(o, "DeleteKthCircular", head, k, ringLen(a, head))
	}

	// 1) Walk to the (k-1)-th node; wrapping back to head means k > Len
	cur := head
	for i := 1; i < k-1; i++ {
		cur = a.Next(cur)
		if cur == head {
			return outOfRange(o, "DeleteKthCircular", head, k, ringLen(a, head))
		}
	}
	victim := a.Next(cur)
	if victim == head {
		return outOfRange(o, "DeleteKthCircular", head, k, ringLen(a, head))
	}

	// 2) Bypass and free
	a.SetNext(cur, a.Next(victim))
	a.Free(victim)

	return head, nil
}

// InsertAtHeadCircularDoubly prepends v to a circular doubly chain.
// head.prev gives the last node in O(1), so no walk is needed.
// Complexity: O(1).
func InsertAtHeadCircularDoubly(a *chain.Arena, head chain.ID, v int) chain.ID {
	id := a.New(v)
	if head == chain.Nil {
		a.Link(id, id)
		return id
	}
	insertBefore(a, head, id)

	return id
}

// InsertAtTailCircularDoubly appends v to a circular doubly chain. It is the
// head insert without moving the handle.
// Complexity: O(1).
func InsertAtTailCircularDoubly(a *chain.Arena, head chain.ID, v int) chain.ID {
	id := a.New(v)
	if head == chain.Nil {
		a.Link(id, id)
		return id
	}
	insertBefore(a, head, id)

	return head
}

// insertBefore splices id between head.prev and head.
func insertBefore(a *chain.Arena, head, id chain.ID) {
	last := a.Prev(head)
	a.Link(last, id)
	a.Link(id, head)
}

// spliceSecondAndSwap puts id right after head and exchanges their payloads.
func spliceSecondAndSwap(a *chain.Arena, head, id chain.ID) {
	a.SetNext(id, a.Next(head))
	a.SetNext(head, id)
	hv, iv := a.Value(head), a.Value(id)
	a.SetValue(head, iv)
	a.SetValue(id, hv)
}

// lastOfRing returns the node whose next is head.
func lastOfRing(a *chain.Arena, head chain.ID) chain.ID {
	cur := head
	for a.Next(cur) != head {
		cur = a.Next(cur)
	}

	return cur
}

// ringLen counts the nodes of a circular chain.
func ringLen(a *chain.Arena, head chain.ID) int {
	n := 1
	for cur := a.Next(head); cur != head; cur = a.Next(cur) {
		n++
	}

	return n
}
