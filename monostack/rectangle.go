package monostack

import "fmt"

// LargestRectangle returns the area of the largest axis-aligned rectangle
// that fits under the histogram h (bar i has width 1 and height h[i]).
// Negative heights are treated as 0.
//
// The stack holds bar indices with non-decreasing heights. When bar i is
// lower than the top, the top is popped and its rectangle is closed: its
// height is the popped bar, its right boundary is i and its left boundary
// is the new top (or the start when the stack is empty).
//
// Complexity: O(n) time, O(n) space.
func LargestRectangle(h []int) int {
	n := len(h)
	st := NewStack(n)
	best := 0

	height := func(i int) int {
		if i == n || h[i] < 0 {
			return 0 // the virtual bar at n flushes the stack
		}
		return h[i]
	}

	for i := 0; i <= n; i++ {
		cur := height(i)
		st.PopWhile(
			func(f Frame) bool { return f.Value > cur },
			func(f Frame) {
				left := -1
				if t, ok := st.Top(); ok {
					left = t.Aux
				}
				best = max(best, f.Value*(i-left-1))
			},
		)
		st.Push(Frame{Value: cur, Aux: i})
	}

	return best
}

// MaximalRectangle returns the area of the largest rectangle made only of
// non-zero cells in grid. Row r is turned into a histogram whose bar j counts
// the consecutive non-zero cells ending at (r, j), and LargestRectangle is run
// once per row. An empty grid yields 0.
//
// Returns ErrNonRectangular (wrapped with the offending row) when rows differ
// in length. grid is not modified.
//
// Complexity: O(rows·cols) time, O(cols) space.
func MaximalRectangle(grid [][]int) (int, error) {
	if len(grid) == 0 {
		return 0, nil
	}
	cols := len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return 0, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrNonRectangular)
		}
	}

	hist := make([]int, cols)
	best := 0
	for _, row := range grid {
		// 1) Accumulate: a zero cell resets its column
		for j, cell := range row {
			if cell == 0 {
				hist[j] = 0
			} else {
				hist[j]++
			}
		}
		// 2) Best rectangle whose bottom edge lies on this row
		best = max(best, LargestRectangle(hist))
	}

	return best, nil
}
