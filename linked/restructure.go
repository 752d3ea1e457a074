// Package linked implements the relinking operations that rebuild a chain
// from its own nodes: merge, parity segregation and deduplication. None of
// them allocates nodes.
package linked

import "github.com/katalvlaran/linearkit/chain"

// MergeSorted splices two ascending chains into one ascending chain and
// returns its head. On equal values the left node comes first, so the merge
// is stable. Both input handles are consumed.
// Complexity: O(m+n) time, O(1) space.
func MergeSorted(a *chain.Arena, left, right chain.ID) chain.ID {
	// 1) An empty side means the other side is already the answer
	if left == chain.Nil {
		return right
	}
	if right == chain.Nil {
		return left
	}

	// 2) Pick the head
	var head chain.ID
	if a.Value(left) <= a.Value(right) {
		head, left = left, a.Next(left)
	} else {
		head, right = right, a.Next(right)
	}

	// 3) Append the smaller front node until one side runs out
	tail := head
	for left != chain.Nil && right != chain.Nil {
		if a.Value(left) <= a.Value(right) {
			a.SetNext(tail, left)
			tail, left = left, a.Next(left)
		} else {
			a.SetNext(tail, right)
			tail, right = right, a.Next(right)
		}
	}

	// 4) Attach whatever remains
	if left != chain.Nil {
		a.SetNext(tail, left)
	} else {
		a.SetNext(tail, right)
	}

	return head
}

// SegregateEvenOdd relinks the chain so that all even values come first,
// followed by all odd values, preserving the relative order inside each
// group.
// Complexity: O(n) time, O(1) space.
func SegregateEvenOdd(a *chain.Arena, head chain.ID) chain.ID {
	evenHead, evenTail := chain.Nil, chain.Nil
	oddHead, oddTail := chain.Nil, chain.Nil

	// 1) Distribute nodes onto two sub-chains in a single pass
	for cur := head; cur != chain.Nil; {
		next := a.Next(cur)
		if a.Value(cur)%2 == 0 {
			if evenHead == chain.Nil {
				evenHead = cur
			} else {
				a.SetNext(evenTail, cur)
			}
			evenTail = cur
		} else {
			if oddHead == chain.Nil {
				oddHead = cur
			} else {
				a.SetNext(oddTail, cur)
			}
			oddTail = cur
		}
		cur = next
	}

	// 2) Terminate the odd group and splice it after the evens
	if oddTail != chain.Nil {
		a.SetNext(oddTail, chain.Nil)
	}
	if evenHead == chain.Nil {
		return oddHead
	}
	a.SetNext(evenTail, oddHead)

	return evenHead
}

// RemoveDuplicates drops repeated values from an ascending chain, keeping
// the first node of each run. Dropped nodes are freed.
// Complexity: O(n) time, O(1) space.
func RemoveDuplicates(a *chain.Arena, head chain.ID) chain.ID {
	cur := head
	for cur != chain.Nil && a.Next(cur) != chain.Nil {
		next := a.Next(cur)
		if a.Value(cur) == a.Value(next) {
			// Stay on cur: the new successor may repeat the value too
			a.SetNext(cur, a.Next(next))
			a.Free(next)
			continue
		}
		cur = next
	}

	return head
}
