// Package linked declares the engine options, the circular update
// strategies and the error types returned by positional operations.
package linked

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linearkit/chain"
)

// Sentinel errors; match with errors.Is.
var (
	// ErrOutOfRange indicates a position outside the valid bounds of a chain.
	// Only returned when WithStrictBounds is set.
	ErrOutOfRange = errors.New("linked: position out of range")

	// ErrPrecondition indicates the caller violated an input precondition.
	// Only returned when WithValidation is set.
	ErrPrecondition = errors.New("linked: precondition violated")

	// ErrNotFound indicates a lookup that has no answer in the chain.
	ErrNotFound = errors.New("linked: node not found")
)

// RangeError reports a rejected position together with the valid maximum.
type RangeError struct {
	Op  string // operation name, e.g. "InsertAtPosition"
	Pos int    // requested 1-based position
	Max int    // largest valid position for Op on this chain
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("linked: %s: position %d outside [1, %d]", e.Op, e.Pos, e.Max)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// PreconditionError reports which precondition of Op failed.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("linked: %s: %s", e.Op, e.Reason)
}

// Unwrap lets errors.Is(err, ErrPrecondition) match.
func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// Strategy selects how circular head updates are performed.
type Strategy int

const (
	// Relink walks to the last node and rewires the ring: O(n).
	Relink Strategy = iota

	// SwapPayload works on the second node and exchanges payloads with the
	// head, so the handle never moves: O(1).
	SwapPayload
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Relink:
		return "relink"
	case SwapPayload:
		return "swap-payload"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Option configures an engine call.
type Option func(*Options)

// Options holds the engine configuration for one call.
type Options struct {
	// StrictBounds reports out-of-range positions as *RangeError instead of
	// leaving the chain unchanged silently.
	StrictBounds bool

	// Validate checks documented preconditions before mutating.
	Validate bool

	// Strategy applies to InsertAtHeadCircular, InsertAtTailCircular and
	// DeleteHeadCircular.
	Strategy Strategy
}

// DefaultOptions returns the permissive configuration:
//   - out-of-range positions are no-ops
//   - preconditions are not checked
//   - circular updates use Relink
func DefaultOptions() Options {
	return Options{
		StrictBounds: false,
		Validate:     false,
		Strategy:     Relink,
	}
}

// WithStrictBounds makes positional operations return *RangeError.
func WithStrictBounds() Option {
	return func(o *Options) {
		o.StrictBounds = true
	}
}

// WithValidation makes operations verify their preconditions first.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// WithCircularStrategy selects the circular head update strategy.
// Panics on an unknown strategy.
func WithCircularStrategy(s Strategy) Option {
	if s != Relink && s != SwapPayload {
		panic(fmt.Sprintf("linked: WithCircularStrategy(%d)", int(s)))
	}
	return func(o *Options) {
		o.Strategy = s
	}
}

// resolve applies opts on top of DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// outOfRange returns the unchanged handle and, in strict mode, a *RangeError.
func outOfRange(o Options, op string, head chain.ID, pos, limit int) (chain.ID, error) {
	if !o.StrictBounds {
		return head, nil
	}

	return head, &RangeError{Op: op, Pos: pos, Max: limit}
}
