// Package chain defines the node storage shared by every linked structure in
// linearkit: an Arena of nodes addressed by stable integer IDs.
//
// What:
//
//   - Arena owns all nodes. A node holds an int value, a forward link (next)
//     and a back link (prev). Links are IDs, not pointers, so a cycle is an
//     ordinary, inspectable relation between indices.
//   - A chain "handle" is simply the ID of its first node; Nil is the empty
//     chain. Singly chains leave prev at Nil, doubly chains keep
//     b.prev == a for every a.next == b, circular chains close the ring
//     back to the head.
//   - Freed nodes go to a free list and their slots are recycled by New.
//
// Why:
//
//   - Relinking stays O(1), exactly like pointer surgery.
//   - A freed ID can be checked with Live, which turns a dangling reference
//     into a detectable condition instead of silent aliasing.
//
// Builders & views:
//
//   - FromSlice, FromSliceDoubly, FromSliceCircular, FromSliceCircularDoubly
//   - Values, ValuesBackward, CircularValues
//   - Len, Tail, At
//   - CheckDoubly, CheckCircular (invariant checks for tests and callers)
//
// Errors:
//
//   - ErrCyclic          forward walk did not terminate within Len() steps
//   - ErrBrokenBackLink  a doubly chain has next/prev disagreement
//   - ErrNotCircular     a circular walk fell off the ring
//
// Complexity: every accessor is O(1); every view is O(n) time.
//
// An Arena is not safe for concurrent use.
package chain
