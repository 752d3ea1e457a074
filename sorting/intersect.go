// Package sorting implements intersections of two arrays. Each common value
// is reported once.
package sorting

import "cmp"

// IntersectSorted returns the distinct values present in both ascending
// slices, in ascending order, using a two-pointer walk.
// Complexity: O(m+n) time.
func IntersectSorted[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		// Skip repeats in a so each value is reported once
		if i > 0 && a[i] == a[i-1] {
			i++
			continue
		}
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// IntersectUnsorted returns the distinct values present in both slices, in
// the order they first appear in b.
// Complexity: O(m+n) time, O(m) space.
func IntersectUnsorted(a, b []int) []int {
	pending := make(map[int]struct{}, len(a))
	for _, v := range a {
		pending[v] = struct{}{}
	}
	out := make([]int, 0)
	for _, v := range b {
		if _, ok := pending[v]; ok {
			out = append(out, v)
			delete(pending, v) // report once
		}
	}

	return out
}
