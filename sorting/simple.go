// Package sorting implements the quadratic in-place sorts.
package sorting

import "cmp"

// InsertionSort grows a sorted prefix by shifting each new element left into
// place. Stable.
// Complexity: O(n²) worst, O(n) on sorted input, O(1) space.
func InsertionSort[T cmp.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && a[j] > key {
			a[j+1] = a[j] // shift larger element right
			j--
		}
		a[j+1] = key
	}
}

// SelectionSort swaps the minimum of the unsorted suffix into place.
// Not stable.
// Complexity: O(n²) always, O(1) space.
func SelectionSort[T cmp.Ordered](a []T) {
	for i := 0; i < len(a)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
	}
}

// BubbleSort bubbles the largest unsorted element to the end on each pass and
// stops as soon as a pass performs no swap. It returns the number of passes
// that ran; an already sorted input of length ≥ 2 takes exactly one. Stable.
// Complexity: O(n²) worst, O(n) best, O(1) space.
func BubbleSort[T cmp.Ordered](a []T) int {
	passes := 0
	for end := len(a) - 1; end > 0; end-- {
		passes++
		swapped := false
		for j := 0; j < end; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
			}
		}
		if !swapped {
			break // adaptive early exit
		}
	}

	return passes
}
