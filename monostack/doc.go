// Package monostack is the monotonic-stack engine: a stack of frames kept
// monotonic under a comparator, and the nearest-greater / nearest-smaller,
// stock span and largest-rectangle queries built on it.
//
// What:
//
//   - Stack, Frame: the slice-backed stack of (value, aux) pairs that every
//     query uses. PopWhile pops the top frames matching a predicate, which
//     is how each query restores its invariant before a push.
//   - NextGreater, PrevGreater, NextSmaller, PrevSmaller: nearest strictly
//     greater / smaller values, -1 where no such value exists.
//   - Spanner, StockSpan: stock span over a live stream and over a slice.
//   - PrevGreaterStream: previous-greater over a live stream.
//   - LargestRectangle: largest rectangle in a histogram.
//   - MaximalRectangle: largest all-ones rectangle in a 0/1 grid, one
//     LargestRectangle call per accumulated row.
//
// Invariant:
//
//	For the greater-element family the stack is strictly decreasing from
//	bottom to top: before pushing x, every top frame ≤ x is popped, and the
//	frame left on top (if any) is the answer for x. The smaller family
//	mirrors this with the comparator reversed. Stream and slice forms apply
//	the same invariant and therefore agree on every input.
//
// Errors:
//
//   - ErrNonRectangular: MaximalRectangle received rows of different length.
//
// Complexity: every query is O(n) time and O(n) space; each element is
// pushed and popped at most once.
package monostack
