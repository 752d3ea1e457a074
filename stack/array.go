package stack

// Array is a stack with a fixed capacity chosen at construction.
type Array struct {
	data []int
	top  int // index of the top element; -1 when empty
}

// NewArray returns an empty stack holding at most capacity values.
// Panics on a negative capacity.
func NewArray(capacity int) *Array {
	if capacity < 0 {
		panic("stack: NewArray(capacity<0)")
	}
	return &Array{data: make([]int, capacity), top: -1}
}

// Push places v on top or returns ErrOverflow when the stack is full.
func (s *Array) Push(v int) error {
	if s.Full() {
		return ErrOverflow
	}
	s.top++
	s.data[s.top] = v

	return nil
}

// Pop removes and returns the top value or returns ErrUnderflow.
func (s *Array) Pop() (int, error) {
	if s.Empty() {
		return 0, ErrUnderflow
	}
	v := s.data[s.top]
	s.top--

	return v, nil
}

// Peek returns the top value without removing it.
func (s *Array) Peek() (int, error) {
	if s.Empty() {
		return 0, ErrUnderflow
	}
	return s.data[s.top], nil
}

// Len returns the number of stored values.
func (s *Array) Len() int { return s.top + 1 }

// Cap returns the fixed capacity.
func (s *Array) Cap() int { return len(s.data) }

// Empty reports whether the stack holds no values.
func (s *Array) Empty() bool { return s.top < 0 }

// Full reports whether a Push would overflow.
func (s *Array) Full() bool { return s.top == len(s.data)-1 }
