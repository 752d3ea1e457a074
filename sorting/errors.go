package sorting

import "errors"

var (
	// ErrNegativeValue indicates CountingSort received a value below zero.
	ErrNegativeValue = errors.New("sorting: counting sort requires non-negative values")
	// ErrRangeTooLarge indicates the CountingSort frequency table would exceed the configured bound.
	ErrRangeTooLarge = errors.New("sorting: value range exceeds counting sort limit")
	// ErrUnknownAlgorithm indicates an Algorithm value or name that is not recognized.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)
