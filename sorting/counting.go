// Package sorting implements counting sort for bounded non-negative ints.
package sorting

import "fmt"

// DefaultMaxValue is the largest value CountingSort accepts by default; it
// bounds the frequency table at DefaultMaxValue+1 counters.
const DefaultMaxValue = 1 << 20

// CountingOption configures CountingSort.
type CountingOption func(*countingConfig)

type countingConfig struct {
	maxValue int // inclusive upper bound for input values
}

// WithMaxValue sets the inclusive upper bound on input values.
// Panics if m < 0.
func WithMaxValue(m int) CountingOption {
	if m < 0 {
		panic("sorting: WithMaxValue(m<0)")
	}
	return func(c *countingConfig) {
		c.maxValue = m
	}
}

// CountingSort sorts non-negative ints in place by tallying each value in a
// frequency table of size max+1 and rewriting a in value order.
//
// Preconditions are checked before anything is written: a negative value
// yields ErrNegativeValue, a value above the configured bound yields
// ErrRangeTooLarge. On error a is left untouched.
// Complexity: O(n + max) time, O(max) space.
func CountingSort(a []int, opts ...CountingOption) error {
	cfg := countingConfig{maxValue: DefaultMaxValue}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(a) < 2 {
		if len(a) == 1 && a[0] < 0 {
			return fmt.Errorf("value %d: %w", a[0], ErrNegativeValue)
		}
		return nil
	}

	// 1) Validate and find the maximum in one scan
	hi := 0
	for _, v := range a {
		if v < 0 {
			return fmt.Errorf("value %d: %w", v, ErrNegativeValue)
		}
		if v > hi {
			hi = v
		}
	}
	if hi > cfg.maxValue {
		return fmt.Errorf("max %d > %d: %w", hi, cfg.maxValue, ErrRangeTooLarge)
	}

	// 2) Tally frequencies: count[v] = occurrences of v
	count := make([]int, hi+1)
	for _, v := range a {
		count[v]++
	}

	// 3) Rewrite a in ascending value order
	k := 0
	for v, c := range count {
		for ; c > 0; c-- {
			a[k] = v
			k++
		}
	}

	return nil
}
