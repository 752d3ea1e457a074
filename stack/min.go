package stack

import "github.com/katalvlaran/linearkit/monostack"

// Min is a stack that also reports its minimum in O(1). Every frame stores
// the pushed value and the minimum of the stack up to and including it.
// The zero value is ready to use.
type Min struct {
	st monostack.Stack
}

// Push places v on top.
func (s *Min) Push(v int) {
	low := v
	if f, ok := s.st.Top(); ok && f.Aux < v {
		low = f.Aux
	}
	s.st.Push(monostack.Frame{Value: v, Aux: low})
}

// Pop removes and returns the top value or returns ErrUnderflow.
func (s *Min) Pop() (int, error) {
	f, ok := s.st.Pop()
	if !ok {
		return 0, ErrUnderflow
	}
	return f.Value, nil
}

// Peek returns the top value without removing it.
func (s *Min) Peek() (int, error) {
	f, ok := s.st.Top()
	if !ok {
		return 0, ErrUnderflow
	}
	return f.Value, nil
}

// Min returns the smallest stored value or returns ErrUnderflow.
func (s *Min) Min() (int, error) {
	f, ok := s.st.Top()
	if !ok {
		return 0, ErrUnderflow
	}
	return f.Aux, nil
}

// Len returns the number of stored values.
func (s *Min) Len() int { return s.st.Len() }
