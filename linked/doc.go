// Package linked is the mutation engine for chains stored in a chain.Arena.
//
// What:
//
//   - Insertion: InsertAtHead, InsertAtTail, InsertAtPosition, InsertSorted
//     and their Doubly / Circular / CircularDoubly counterparts.
//   - Deletion: DeleteHead, DeleteTail, DeleteKth (+ variants). Circular head
//     deletion supports both the O(n) Relink strategy and the O(1)
//     SwapPayload strategy; both leave the same value sequence.
//   - Reversal: Reverse (singly), ReverseDoubly.
//   - Cycles (Floyd): DetectCycle, CycleEntry, CycleLength, RemoveCycle, plus
//     DetectCycleHashed, an O(n)-space visited-set alternative.
//   - Restructuring: MergeSorted (stable, left first on ties, no
//     allocation), SegregateEvenOdd (stable), RemoveDuplicates.
//   - Lookup: Middle (upper middle on even lengths), NthFromEnd, Search,
//     Intersection.
//
// Handles:
//
//	Every operation that can change the first node returns the new handle.
//	The handle passed in must be treated as consumed: always continue with
//	the returned one. Operations never retain arena state between calls.
//
// Options:
//
//	DefaultOptions() is permissive: out-of-range positions are silent
//	no-ops and preconditions are trusted. WithStrictBounds turns
//	out-of-range positions into *RangeError; WithValidation checks
//	preconditions (e.g. ascending input to InsertSorted) and reports
//	*PreconditionError. WithCircularStrategy selects the circular head
//	update strategy.
//
// Errors:
//
//   - ErrOutOfRange    (via *RangeError) position outside valid bounds
//   - ErrPrecondition  (via *PreconditionError) caller precondition violated
//   - ErrNotFound      lookup could not be satisfied (NthFromEnd)
//
// Complexity: all operations are O(n) time and O(1) extra space unless
// noted (DetectCycleHashed is O(n) space). A chain must be acyclic (or
// intentionally circular for the Circular* family); run DetectCycle first
// on chains of unknown shape.
package linked
