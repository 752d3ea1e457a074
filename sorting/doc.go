// Package sorting implements in-place array sorting: two quicksort partition
// schemes, a stable mergesort, the three quadratic sorts, and counting sort.
//
// What:
//
//   - QuickSortLomuto / PartitionLomuto: pivot = last element. The boundary
//     i marks the end of the ≤ pivot prefix; the pivot is swapped into i+1,
//     which is exactly its final position.
//   - QuickSortHoare / PartitionHoare: pivot = first element, two converging
//     cursors. The returned j separates ≤ pivot from ≥ pivot, but the pivot
//     itself is NOT guaranteed to sit at j (unlike Lomuto). Recursion is
//     therefore on [lo, j] and [j+1, hi].
//   - MergeSort: top-down split at the midpoint, stable three-pointer merge
//     (ties take the left half first). Merge exposes the merge step.
//   - InsertionSort, SelectionSort, BubbleSort (adaptive: stops after the
//     first pass without swaps and reports how many passes ran).
//   - CountingSort: non-negative ints only, frequency table of size max+1.
//   - Sort: dispatch by Algorithm, for callers that pick at runtime.
//   - IntersectSorted, IntersectUnsorted: distinct common values.
//
// Comparison sorts are generic over cmp.Ordered. Floating-point NaN values
// have no defined position in the result.
//
// Errors:
//
//   - ErrNegativeValue     CountingSort input holds a value < 0
//   - ErrRangeTooLarge     CountingSort max exceeds WithMaxValue
//   - ErrUnknownAlgorithm  ParseAlgorithm / Sort received an unknown name
//
// Complexity:
//
//   - Quicksort: O(n log n) average, O(n²) worst, O(log n) stack (the
//     smaller side is recursed, the larger one looped)
//   - MergeSort: O(n log n) time, O(n) scratch
//   - Quadratic sorts: O(n²) time, O(1) space; BubbleSort O(n) when sorted
//   - CountingSort: O(n + k) time and O(k) space, k = max+1
package sorting
