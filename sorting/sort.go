// Package sorting exposes the Algorithm enumeration and the Sort dispatcher.
package sorting

import (
	"fmt"
	"strings"
)

// Algorithm names one of the sorting routines in this package.
type Algorithm int

const (
	AlgorithmBubble Algorithm = iota
	AlgorithmInsertion
	AlgorithmSelection
	AlgorithmLomuto
	AlgorithmHoare
	AlgorithmMerge
	AlgorithmCounting
)

// names maps each Algorithm to its canonical lower-case name.
var names = [...]string{
	AlgorithmBubble:    "bubble",
	AlgorithmInsertion: "insertion",
	AlgorithmSelection: "selection",
	AlgorithmLomuto:    "lomuto",
	AlgorithmHoare:     "hoare",
	AlgorithmMerge:     "merge",
	AlgorithmCounting:  "counting",
}

// String returns the canonical name, e.g. "lomuto".
func (alg Algorithm) String() string {
	if alg < 0 || int(alg) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(alg))
	}

	return names[alg]
}

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(names))
	for i := range names {
		out[i] = Algorithm(i)
	}

	return out
}

// ParseAlgorithm resolves a name (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Sort sorts a in place with alg. Only Counting can fail on valid input.
func Sort(a []int, alg Algorithm) error {
	switch alg {
	case AlgorithmBubble:
		BubbleSort(a)
	case AlgorithmInsertion:
		InsertionSort(a)
	case AlgorithmSelection:
		SelectionSort(a)
	case AlgorithmLomuto:
		QuickSortLomuto(a)
	case AlgorithmHoare:
		QuickSortHoare(a)
	case AlgorithmMerge:
		MergeSort(a)
	case AlgorithmCounting:
		return CountingSort(a)
	default:
		return fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm)
	}

	return nil
}
