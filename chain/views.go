// Package chain provides builders that turn slices into chains of every
// variant, read-only views that turn chains back into slices, and the
// structural invariant checks. Every walk is bounded by Arena.Len(), so a
// view never loops forever on a malformed chain.
package chain

// FromSlice builds a singly chain holding vals in order and returns its head.
// An empty vals yields Nil.
// Complexity: O(n).
func FromSlice(a *Arena, vals []int) ID {
	head, tail := Nil, Nil
	for _, v := range vals {
		id := a.New(v)
		if head == Nil {
			head = id // first node becomes the handle
		} else {
			a.SetNext(tail, id) // append after current tail
		}
		tail = id
	}

	return head
}

// FromSliceDoubly builds a doubly chain holding vals in order.
// Complexity: O(n).
func FromSliceDoubly(a *Arena, vals []int) ID {
	head, tail := Nil, Nil
	for _, v := range vals {
		id := a.New(v)
		if head == Nil {
			head = id
		} else {
			a.Link(tail, id) // sets both tail.next and id.prev
		}
		tail = id
	}

	return head
}

// FromSliceCircular builds a circular singly chain: the last node's next is
// the head. A single node links to itself.
// Complexity: O(n).
func FromSliceCircular(a *Arena, vals []int) ID {
	head := FromSlice(a, vals)
	if head == Nil {
		return Nil
	}
	a.SetNext(Tail(a, head), head) // close the ring

	return head
}

// FromSliceCircularDoubly builds a circular doubly chain: last.next == head
// and head.prev == last.
// Complexity: O(n).
func FromSliceCircularDoubly(a *Arena, vals []int) ID {
	head := FromSliceDoubly(a, vals)
	if head == Nil {
		return Nil
	}
	a.Link(Tail(a, head), head) // close the ring in both directions

	return head
}

// Values returns the payloads reachable from head by following next until
// Nil. It returns ErrCyclic if the walk outlasts the arena's live count.
// The returned slice is never nil.
// Complexity: O(n) time, O(n) space.
func Values(a *Arena, head ID) ([]int, error) {
	out := make([]int, 0, 8)
	limit := a.Len()
	for cur := head; cur != Nil; cur = a.Next(cur) {
		// A finite chain can hold at most every live node once
		if len(out) == limit {
			return nil, ErrCyclic
		}
		out = append(out, a.Value(cur))
	}

	return out, nil
}

// ValuesBackward returns the payloads reachable from tail by following prev.
// It is the mirror of Values for doubly chains.
// Complexity: O(n) time, O(n) space.
func ValuesBackward(a *Arena, tail ID) ([]int, error) {
	out := make([]int, 0, 8)
	limit := a.Len()
	for cur := tail; cur != Nil; cur = a.Prev(cur) {
		if len(out) == limit {
			return nil, ErrCyclic
		}
		out = append(out, a.Value(cur))
	}

	return out, nil
}

// CircularValues returns the payloads of a circular chain, starting at head
// and stopping when the walk returns to head. It returns ErrNotCircular if
// the walk reaches Nil or never returns to head.
// Complexity: O(n) time, O(n) space.
func CircularValues(a *Arena, head ID) ([]int, error) {
	out := make([]int, 0, 8)
	if head == Nil {
		return out, nil
	}
	limit := a.Len()
	out = append(out, a.Value(head))
	for cur := a.Next(head); cur != head; cur = a.Next(cur) {
		if cur == Nil || len(out) == limit {
			return nil, ErrNotCircular
		}
		out = append(out, a.Value(cur))
	}

	return out, nil
}

// Len counts the nodes of an acyclic chain. On a cyclic chain the count is
// capped at a.Len().
// Complexity: O(n).
func Len(a *Arena, head ID) int {
	n, limit := 0, a.Len()
	for cur := head; cur != Nil && n < limit; cur = a.Next(cur) {
		n++
	}

	return n
}

// Tail returns the last node of an acyclic chain, or Nil for an empty one.
// Complexity: O(n).
func Tail(a *Arena, head ID) ID {
	if head == Nil {
		return Nil
	}
	cur, steps, limit := head, 1, a.Len()
	for a.Next(cur) != Nil && steps < limit {
		cur = a.Next(cur)
		steps++
	}

	return cur
}

// At returns the node at 1-based position pos, or Nil when pos is outside
// [1, Len].
// Complexity: O(pos).
func At(a *Arena, head ID, pos int) ID {
	if pos < 1 {
		return Nil
	}
	cur := head
	for i := 1; i < pos && cur != Nil; i++ {
		cur = a.Next(cur)
	}

	return cur
}

// CheckDoubly verifies the doubly-linked invariant of an acyclic chain:
// head.prev is Nil and b.prev == a for every a.next == b.
// Complexity: O(n).
func CheckDoubly(a *Arena, head ID) error {
	if head == Nil {
		return nil
	}
	if a.Prev(head) != Nil {
		return ErrBrokenBackLink
	}
	steps, limit := 1, a.Len()
	for cur := head; a.Next(cur) != Nil; cur = a.Next(cur) {
		if steps == limit {
			return ErrCyclic
		}
		if a.Prev(a.Next(cur)) != cur {
			return ErrBrokenBackLink
		}
		steps++
	}

	return nil
}

// CheckCircular verifies that following next from head returns to head.
// Complexity: O(n).
func CheckCircular(a *Arena, head ID) error {
	_, err := CircularValues(a, head)

	return err
}

// CheckCircularDoubly verifies the ring in both directions: the forward walk
// returns to head and b.prev == a for every a.next == b, including the
// closing pair (last, head).
// Complexity: O(n).
func CheckCircularDoubly(a *Arena, head ID) error {
	if err := CheckCircular(a, head); err != nil {
		return err
	}
	if head == Nil {
		return nil
	}
	cur := head
	for {
		nxt := a.Next(cur)
		if a.Prev(nxt) != cur {
			return ErrBrokenBackLink
		}
		if nxt == head {
			return nil
		}
		cur = nxt
	}
}
