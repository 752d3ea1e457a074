package linked_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linearkit/chain"
	"github.com/katalvlaran/linearkit/linked"
)

// TestMiddle uses the upper-middle convention on even lengths.
func TestMiddle(t *testing.T) {
	a, odd := build(1, 2, 3, 4, 5)
	assert.Equal(t, 3, a.Value(linked.Middle(a, odd)))

	b, even := build(1, 2, 3, 4)
	assert.Equal(t, 3, b.Value(linked.Middle(b, even)))

	c, one := build(9)
	assert.Equal(t, one, linked.Middle(c, one))

	assert.Equal(t, chain.Nil, linked.Middle(c, chain.Nil))
}

// TestNthFromEnd covers every valid n and the lookup failures.
func TestNthFromEnd(t *testing.T) {
	a, head := build(10, 20, 30, 40)
	for n, want := range map[int]int{1: 40, 2: 30, 3: 20, 4: 10} {
		id, err := linked.NthFromEnd(a, head, n)
		require.NoError(t, err)
		assert.Equal(t, want, a.Value(id), "n=%d", n)
	}

	for _, n := range []int{0, 5, 100} {
		id, err := linked.NthFromEnd(a, head, n)
		assert.ErrorIs(t, err, linked.ErrNotFound, "n=%d", n)
		assert.Equal(t, chain.Nil, id)
	}

	id, err := linked.NthFromEnd(a, chain.Nil, 1)
	assert.NoError(t, err, "empty input is not a failure")
	assert.Equal(t, chain.Nil, id)
}

// TestSearch returns 1-based positions.
func TestSearch(t *testing.T) {
	a, head := build(5, 7, 7, 9)
	assert.Equal(t, 2, linked.Search(a, head, 7))
	assert.Equal(t, 4, linked.Search(a, head, 9))
	assert.Equal(t, -1, linked.Search(a, head, 1))
	assert.Equal(t, -1, linked.Search(a, chain.Nil, 1))
}

// TestIntersection joins two chains of different lengths onto a shared tail.
func TestIntersection(t *testing.T) {
	a := chain.NewArena()
	shared := chain.FromSlice(a, []int{100, 200})
	h1 := chain.FromSlice(a, []int{1, 2, 3})
	h2 := chain.FromSlice(a, []int{9})
	a.SetNext(chain.Tail(a, h1), shared)
	a.SetNext(chain.Tail(a, h2), shared)

	assert.Equal(t, shared, linked.Intersection(a, h1, h2))
	assert.Equal(t, shared, linked.Intersection(a, h2, h1))

	// Equal lengths, disjoint
	x := chain.FromSlice(a, []int{1, 2})
	y := chain.FromSlice(a, []int{3, 4, 5})
	assert.Equal(t, chain.Nil, linked.Intersection(a, x, y))
	assert.Equal(t, chain.Nil, linked.Intersection(a, x, chain.Nil))

	// One chain is a suffix of the other
	assert.Equal(t, shared, linked.Intersection(a, h1, shared))
}
