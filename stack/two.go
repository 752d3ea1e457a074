package stack

// Side selects one of the two stacks of a Two.
type Side int

const (
	// Left grows from index 0 upward.
	Left Side = iota
	// Right grows from the last index downward.
	Right
)

// Two holds two stacks in one array. Left grows up from the start and Right
// grows down from the end; either may use all the room the other leaves, so
// ErrOverflow is reported only when the whole array is full.
type Two struct {
	data []int
	top1 int // top of Left; -1 when empty
	top2 int // top of Right; len(data) when empty
}

// NewTwo returns two empty stacks sharing capacity slots.
// Panics on a negative capacity.
func NewTwo(capacity int) *Two {
	if capacity < 0 {
		panic("stack: NewTwo(capacity<0)")
	}
	return &Two{data: make([]int, capacity), top1: -1, top2: capacity}
}

// Push places v on top of side.
func (s *Two) Push(side Side, v int) error {
	if s.top1+1 == s.top2 {
		return ErrOverflow // the tops are adjacent: no free slot
	}
	if side == Left {
		s.top1++
		s.data[s.top1] = v
	} else {
		s.top2--
		s.data[s.top2] = v
	}

	return nil
}

// Pop removes and returns the top value of side or returns ErrUnderflow.
func (s *Two) Pop(side Side) (int, error) {
	v, err := s.Peek(side)
	if err != nil {
		return 0, err
	}
	if side == Left {
		s.top1--
	} else {
		s.top2++
	}

	return v, nil
}

// Peek returns the top value of side without removing it.
func (s *Two) Peek(side Side) (int, error) {
	if s.Len(side) == 0 {
		return 0, ErrUnderflow
	}
	if side == Left {
		return s.data[s.top1], nil
	}
	return s.data[s.top2], nil
}

// Len returns the number of values stored on side.
func (s *Two) Len(side Side) int {
	if side == Left {
		return s.top1 + 1
	}
	return len(s.data) - s.top2
}

// Cap returns the shared capacity.
func (s *Two) Cap() int { return len(s.data) }
