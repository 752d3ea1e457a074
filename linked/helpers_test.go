package linked_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linearkit/chain"
)

// build returns a fresh arena holding a singly chain of vals.
func build(vals ...int) (*chain.Arena, chain.ID) {
	a := chain.NewArena()
	return a, chain.FromSlice(a, vals)
}

// values reads a chain and fails the test on a cyclic chain.
func values(t *testing.T, a *chain.Arena, head chain.ID) []int {
	t.Helper()
	vals, err := chain.Values(a, head)
	require.NoError(t, err)

	return vals
}

// ring reads a circular chain and fails the test if it is not a ring.
func ring(t *testing.T, a *chain.Arena, head chain.ID) []int {
	t.Helper()
	vals, err := chain.CircularValues(a, head)
	require.NoError(t, err)

	return vals
}

// seq returns [1..n].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}

	return out
}
