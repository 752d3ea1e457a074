// Package monostack declares Frame, Stack and the package errors.
package monostack

import "errors"

// None is the answer reported when no nearest greater / smaller value exists.
const None = -1

// ErrNonRectangular indicates a grid whose rows differ in length.
var ErrNonRectangular = errors.New("monostack: grid rows differ in length")

// Frame is one stack entry: a value plus an auxiliary payload such as an
// original index or an accumulated span.
type Frame struct {
	Value int
	Aux   int
}

// Stack is a LIFO of frames backed by a slice. The zero value is an empty
// stack ready to use.
type Stack struct {
	frames []Frame
}

// NewStack returns an empty stack with room for n frames.
func NewStack(n int) *Stack {
	if n < 0 {
		n = 0
	}
	return &Stack{frames: make([]Frame, 0, n)}
}

// Push places f on top.
func (s *Stack) Push(f Frame) { s.frames = append(s.frames, f) }

// Pop removes and returns the top frame. ok is false on an empty stack.
func (s *Stack) Pop() (f Frame, ok bool) {
	n := len(s.frames)
	if n == 0 {
		return Frame{}, false
	}
	f = s.frames[n-1]
	s.frames = s.frames[:n-1]

	return f, true
}

// Top returns the top frame without removing it. ok is false on an empty
// stack.
func (s *Stack) Top() (f Frame, ok bool) {
	n := len(s.frames)
	if n == 0 {
		return Frame{}, false
	}

	return s.frames[n-1], true
}

// Len returns the number of frames.
func (s *Stack) Len() int { return len(s.frames) }

// Empty reports whether the stack holds no frames.
func (s *Stack) Empty() bool { return len(s.frames) == 0 }

// PopWhile pops top frames for as long as pred holds for the current top,
// calling visit (if non-nil) on each popped frame. It returns the number of
// frames popped.
func (s *Stack) PopWhile(pred func(Frame) bool, visit func(Frame)) int {
	popped := 0
	for n := len(s.frames); n > 0 && pred(s.frames[n-1]); n = len(s.frames) {
		f := s.frames[n-1]
		s.frames = s.frames[:n-1]
		if visit != nil {
			visit(f)
		}
		popped++
	}

	return popped
}
