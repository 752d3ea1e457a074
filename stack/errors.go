// Package stack declares the sentinel errors shared by all stacks.
package stack

import "errors"

var (
	// ErrOverflow indicates a push onto a stack that has no room left.
	ErrOverflow = errors.New("stack: overflow")

	// ErrUnderflow indicates a pop or peek on an empty stack.
	ErrUnderflow = errors.New("stack: underflow")
)
