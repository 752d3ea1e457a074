// Package sorting implements top-down mergesort and the standalone merge of
// two sorted slices.
package sorting

import "cmp"

// MergeSort sorts a in place. Equal elements keep their relative order.
// Complexity: O(n log n) time, O(n) scratch per merge level.
func MergeSort[T cmp.Ordered](a []T) {
	if len(a) < 2 {
		return
	}
	mergeSort(a, 0, len(a)-1)
}

func mergeSort[T cmp.Ordered](a []T, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(a, lo, mid)
	mergeSort(a, mid+1, hi)

	// Copy the halves out, then merge back into a[lo..hi]
	left := append([]T(nil), a[lo:mid+1]...)
	right := append([]T(nil), a[mid+1:hi+1]...)
	mergeInto(a[lo:hi+1], left, right)
}

// Merge returns a new slice holding the sorted union (with repeats) of two
// ascending slices. Ties take from a first.
// Complexity: O(len(a)+len(b)).
func Merge[T cmp.Ordered](a, b []T) []T {
	out := make([]T, len(a)+len(b))
	mergeInto(out, a, b)

	return out
}

// mergeInto writes the merge of left and right into dst, which must have
// room for exactly len(left)+len(right) elements.
func mergeInto[T cmp.Ordered](dst, left, right []T) {
	i, j, k := 0, 0, 0 // three pointers: left, right, output
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	// Drain whichever side is left over
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
