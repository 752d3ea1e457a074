package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linearkit/chain"
)

// TestFromSlice_RoundTrip ensures FromSlice and Values are inverse for all
// small lengths, including the empty chain.
func TestFromSlice_RoundTrip(t *testing.T) {
	for n := 0; n <= 6; n++ {
		a := chain.NewArena()
		in := make([]int, n)
		for i := range in {
			in[i] = i * 10
		}
		head := chain.FromSlice(a, in)
		out, err := chain.Values(a, head)
		require.NoError(t, err)
		assert.Equal(t, in, out, "length %d", n)
		assert.Equal(t, n, chain.Len(a, head))
	}
}

// TestValues_Cyclic verifies Values refuses to walk a loop forever.
func TestValues_Cyclic(t *testing.T) {
	a := chain.NewArena()
	head := chain.FromSlice(a, []int{1, 2, 3})
	a.SetNext(chain.Tail(a, head), a.Next(head)) // 3 -> 2

	_, err := chain.Values(a, head)
	assert.ErrorIs(t, err, chain.ErrCyclic)
	assert.Equal(t, 3, chain.Len(a, head), "Len is capped at the arena size")
}

// TestFromSliceDoubly_BothDirections walks forward and backward.
func TestFromSliceDoubly_BothDirections(t *testing.T) {
	a := chain.NewArena()
	head := chain.FromSliceDoubly(a, []int{1, 2, 3, 4})
	require.NoError(t, chain.CheckDoubly(a, head))

	back, err := chain.ValuesBackward(a, chain.Tail(a, head))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, back)
}

// TestCheckDoubly_Broken detects a tampered back link.
func TestCheckDoubly_Broken(t *testing.T) {
	a := chain.NewArena()
	head := chain.FromSliceDoubly(a, []int{1, 2, 3})
	third := chain.At(a, head, 3)
	a.SetPrev(third, head) // should be node 2

	assert.ErrorIs(t, chain.CheckDoubly(a, head), chain.ErrBrokenBackLink)
}

// TestCircularBuilders covers both circular variants, including one node.
func TestCircularBuilders(t *testing.T) {
	a := chain.NewArena()

	single := chain.FromSliceCircular(a, []int{9})
	assert.Equal(t, single, a.Next(single), "lone node points to itself")

	ring := chain.FromSliceCircular(a, []int{1, 2, 3})
	vals, err := chain.CircularValues(a, ring)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, vals)

	dring := chain.FromSliceCircularDoubly(a, []int{4, 5, 6})
	require.NoError(t, chain.CheckCircularDoubly(a, dring))
	assert.Equal(t, 6, a.Value(a.Prev(dring)), "head.prev is the last node")

	assert.Equal(t, chain.Nil, chain.FromSliceCircular(a, nil))
}

// TestCheckCircular_Open reports an open chain as not circular.
func TestCheckCircular_Open(t *testing.T) {
	a := chain.NewArena()
	head := chain.FromSlice(a, []int{1, 2})
	assert.ErrorIs(t, chain.CheckCircular(a, head), chain.ErrNotCircular)
}

// TestAt covers in-range and out-of-range positions.
func TestAt(t *testing.T) {
	a := chain.NewArena()
	head := chain.FromSlice(a, []int{5, 6, 7})
	assert.Equal(t, 6, a.Value(chain.At(a, head, 2)))
	assert.Equal(t, chain.Nil, chain.At(a, head, 0))
	assert.Equal(t, chain.Nil, chain.At(a, head, 4))
	assert.Equal(t, chain.Nil, chain.Tail(a, chain.Nil))
}
