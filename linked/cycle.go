// Package linked implements cycle detection, entry location and repair with
// Floyd's two-cursor technique in O(1) extra space, plus a visited-set
// detector for callers that prefer it.
//
// Why the entry search works: let mu be the distance from head to the cycle
// entry and lambda the cycle length. When the cursors meet, the slow one
// has made k steps and the fast one 2k, so k is a multiple of lambda and the
// meeting point is (k - mu) steps past the entry. Walking mu more steps
// from there lands on the entry again, and mu is exactly the distance from
// head, so two unit-speed cursors started at head and at the meeting point
// collide on the entry.
package linked

import "github.com/katalvlaran/linearkit/chain"

// DetectCycle reports whether following next from head ever revisits a node.
// Complexity: O(n) time, O(1) space.
func DetectCycle(a *chain.Arena, head chain.ID) bool {
	return meetingPoint(a, head) != chain.Nil
}

// CycleEntry returns the first node of the cycle, or Nil for an acyclic
// chain.
// Complexity: O(n) time, O(1) space.
func CycleEntry(a *chain.Arena, head chain.ID) chain.ID {
	// 1) Find any node inside the loop
	meet := meetingPoint(a, head)
	if meet == chain.Nil {
		return chain.Nil
	}

	// 2) Advance one cursor from head and one from meet in lock-step
	p := head
	for p != meet {
		p = a.Next(p)
		meet = a.Next(meet)
	}

	return p
}

// CycleLength returns the number of nodes on the cycle, or 0 if acyclic.
// Complexity: O(n) time, O(1) space.
func CycleLength(a *chain.Arena, head chain.ID) int {
	meet := meetingPoint(a, head)
	if meet == chain.Nil {
		return 0
	}
	n := 1
	for cur := a.Next(meet); cur != meet; cur = a.Next(cur) {
		n++
	}

	return n
}

// RemoveCycle cuts the back link that closes the cycle, turning the chain
// into an acyclic one with the same value sequence up to the cut. It returns
// false (and changes nothing) when there was no cycle.
// Complexity: O(n) time, O(1) space.
func RemoveCycle(a *chain.Arena, head chain.ID) bool {
	entry := CycleEntry(a, head)
	if entry == chain.Nil {
		return false
	}

	// Walk the loop once to find the node that points back at the entry
	last := entry
	for a.Next(last) != entry {
		last = a.Next(last)
	}
	a.SetNext(last, chain.Nil)

	return true
}

// DetectCycleHashed is the O(n)-space alternative to DetectCycle: it records
// every visited ID and stops at the first repeat.
// Complexity: O(n) time, O(n) space.
func DetectCycleHashed(a *chain.Arena, head chain.ID) bool {
	seen := make(map[chain.ID]struct{})
	for cur := head; cur != chain.Nil; cur = a.Next(cur) {
		if _, ok := seen[cur]; ok {
			return true
		}
		seen[cur] = struct{}{}
	}

	return false
}

// meetingPoint runs the slow/fast race and returns where the cursors meet,
// or Nil when fast falls off the end.
func meetingPoint(a *chain.Arena, head chain.ID) chain.ID {
	slow, fast := head, head
	for fast != chain.Nil && a.Next(fast) != chain.Nil {
		slow = a.Next(slow)         // one step
		fast = a.Next(a.Next(fast)) // two steps
		if slow == fast {
			return slow
		}
	}

	return chain.Nil
}
