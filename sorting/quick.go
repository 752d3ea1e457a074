// Package sorting implements both quicksort partition schemes. Each sort
// recurses into the smaller partition and loops over the larger one, so the
// stack depth stays O(log n) even on adversarial input.
package sorting

import "cmp"

// QuickSortLomuto sorts a in place using Lomuto partitioning.
func QuickSortLomuto[T cmp.Ordered](a []T) {
	quickLomuto(a, 0, len(a)-1)
}

func quickLomuto[T cmp.Ordered](a []T, lo, hi int) {
	for lo < hi {
		p := PartitionLomuto(a, lo, hi) // a[p] is final
		if p-lo < hi-p {
			quickLomuto(a, lo, p-1)
			lo = p + 1
		} else {
			quickLomuto(a, p+1, hi)
			hi = p - 1
		}
	}
}

// PartitionLomuto partitions a[lo..hi] around pivot a[hi] and returns the
// pivot's final index p: a[lo..p-1] ≤ a[p] < a[p+1..hi].
//
// Invariant during the scan: a[lo..i] ≤ pivot, a[i+1..j-1] > pivot.
// Complexity: O(hi-lo).
func PartitionLomuto[T cmp.Ordered](a []T, lo, hi int) int {
	pivot := a[hi]
	i := lo - 1 // end of the ≤ pivot prefix
	for j := lo; j < hi; j++ {
		if a[j] <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[hi] = a[hi], a[i+1] // pivot lands right after the prefix

	return i + 1
}

// QuickSortHoare sorts a in place using Hoare partitioning.
func QuickSortHoare[T cmp.Ordered](a []T) {
	quickHoare(a, 0, len(a)-1)
}

func quickHoare[T cmp.Ordered](a []T, lo, hi int) {
	for lo < hi {
		j := PartitionHoare(a, lo, hi) // boundary, not the pivot slot
		if j-lo < hi-j {
			quickHoare(a, lo, j)
			lo = j + 1
		} else {
			quickHoare(a, j+1, hi)
			hi = j
		}
	}
}

// PartitionHoare partitions a[lo..hi] around pivot a[lo] and returns j with
// lo ≤ j < hi such that every element of a[lo..j] is ≤ every element of
// a[j+1..hi]. The pivot may end up on either side.
//
// Cursor i stops on the first element ≥ pivot from the left, j on the first
// element ≤ pivot from the right; out-of-place pairs are swapped until the
// cursors cross.
// Complexity: O(hi-lo).
func PartitionHoare[T cmp.Ordered](a []T, lo, hi int) int {
	pivot := a[lo]
	i, j := lo-1, hi+1
	for {
		i++
		for a[i] < pivot {
			i++
		}
		j--
		for a[j] > pivot {
			j--
		}
		if i >= j {
			return j
		}
		a[i], a[j] = a[j], a[i]
	}
}
