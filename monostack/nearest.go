package monostack

// nearest is the shared scan behind the four nearest-element queries.
// It walks a forward or backward; for each element x it pops every frame
// for which drop(top, x) holds, then answers with the surviving top (or
// None) and pushes x.
func nearest(a []int, forward bool, drop func(top, x int) bool) []int {
	out := make([]int, len(a))
	st := NewStack(len(a))

	step := func(i int) {
		x := a[i]
		// 1) Restore the invariant for x
		st.PopWhile(func(f Frame) bool { return drop(f.Value, x) }, nil)
		// 2) The surviving top is the nearest qualifying value
		if f, ok := st.Top(); ok {
			out[i] = f.Value
		} else {
			out[i] = None
		}
		// 3) x becomes a candidate for the elements still to come
		st.Push(Frame{Value: x, Aux: i})
	}

	if forward {
		for i := range a {
			step(i)
		}
	} else {
		for i := len(a) - 1; i >= 0; i-- {
			step(i)
		}
	}

	return out
}

func atMost(top, x int) bool  { return top <= x }
func atLeast(top, x int) bool { return top >= x }

// NextGreater returns, for each a[i], the first value to its right that is
// strictly greater, or None.
//
//	NextGreater([]int{2, 1, 2, 4, 3}) == []int{4, 2, 4, -1, -1}
//
// Complexity: O(n) time, O(n) space.
func NextGreater(a []int) []int { return nearest(a, false, atMost) }

// PrevGreater returns, for each a[i], the nearest value to its left that is
// strictly greater, or None.
// Complexity: O(n) time, O(n) space.
func PrevGreater(a []int) []int { return nearest(a, true, atMost) }

// NextSmaller returns, for each a[i], the first value to its right that is
// strictly smaller, or None.
// Complexity: O(n) time, O(n) space.
func NextSmaller(a []int) []int { return nearest(a, false, atLeast) }

// PrevSmaller returns, for each a[i], the nearest value to its left that is
// strictly smaller, or None.
// Complexity: O(n) time, O(n) space.
func PrevSmaller(a []int) []int { return nearest(a, true, atLeast) }
