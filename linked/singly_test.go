package linked_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linearkit/chain"
	"github.com/katalvlaran/linearkit/linked"
)

// TestInsertAtHeadAndTail covers empty and non-empty chains.
func TestInsertAtHeadAndTail(t *testing.T) {
	a := chain.NewArena()
	head := linked.InsertAtTail(a, chain.Nil, 2) // empty -> [2]
	head = linked.InsertAtHead(a, head, 1)
	head = linked.InsertAtTail(a, head, 3)
	assert.Equal(t, []int{1, 2, 3}, values(t, a, head))
}

// TestInsertAtPosition_Valid inserts at every valid position of [10 20 30].
func TestInsertAtPosition_Valid(t *testing.T) {
	cases := []struct {
		pos  int
		want []int
	}{
		{1, []int{99, 10, 20, 30}},
		{2, []int{10, 99, 20, 30}},
		{3, []int{10, 20, 99, 30}},
		{4, []int{10, 20, 30, 99}},
	}
	for _, tc := range cases {
		a, head := build(10, 20, 30)
		head, err := linked.InsertAtPosition(a, head, tc.pos, 99)
		require.NoError(t, err)
		assert.Equal(t, tc.want, values(t, a, head), "pos %d", tc.pos)
	}
}

// TestInsertAtPosition_OutOfRange checks the permissive no-op and the strict error.
func TestInsertAtPosition_OutOfRange(t *testing.T) {
	a, head := build(10, 20, 30)
	before := a.Len()

	// Permissive: unchanged, no error, nothing allocated
	got, err := linked.InsertAtPosition(a, head, 5, 99)
	require.NoError(t, err)
	assert.Equal(t, head, got)
	assert.Equal(t, []int{10, 20, 30}, values(t, a, got))
	assert.Equal(t, before, a.Len(), "no node allocated on a rejected insert")

	// Strict: *RangeError wrapping ErrOutOfRange
	_, err = linked.InsertAtPosition(a, head, 5, 99, linked.WithStrictBounds())
	assert.ErrorIs(t, err, linked.ErrOutOfRange)
	var re *linked.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 5, re.Pos)
	assert.Equal(t, 4, re.Max)

	_, err = linked.InsertAtPosition(a, head, 0, 99, linked.WithStrictBounds())
	assert.ErrorIs(t, err, linked.ErrOutOfRange)

	// Empty chain accepts only position 1
	_, err = linked.InsertAtPosition(a, chain.Nil, 2, 1, linked.WithStrictBounds())
	assert.ErrorIs(t, err, linked.ErrOutOfRange)
}

// TestInsertSorted keeps ascending order, including duplicates and extremes.
func TestInsertSorted(t *testing.T) {
	a := chain.NewArena()
	head := chain.Nil
	var err error
	for _, v := range []int{5, 1, 9, 5, 3, 0, 10} {
		head, err = linked.InsertSorted(a, head, v)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 3, 5, 5, 9, 10}, values(t, a, head))
}

// TestInsertSorted_EqualGoesAfter places a new equal value after existing ones.
func TestInsertSorted_EqualGoesAfter(t *testing.T) {
	a, head := build(1, 2, 2, 3)
	firstTwo := chain.At(a, head, 2)
	head, err := linked.InsertSorted(a, head, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 2, 3}, values(t, a, head))
	assert.Equal(t, firstTwo, chain.At(a, head, 2), "existing node keeps its place")
}

// TestInsertSorted_Validation rejects an unsorted chain only when asked.
func TestInsertSorted_Validation(t *testing.T) {
	a, head := build(3, 1, 2)

	got, err := linked.InsertSorted(a, head, 0, linked.WithValidation())
	assert.ErrorIs(t, err, linked.ErrPrecondition)
	var pe *linked.PreconditionError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, []int{3, 1, 2}, values(t, a, got), "rejected chain is untouched")

	// Without validation the call succeeds (result order unspecified)
	got, err = linked.InsertSorted(a, head, 0)
	require.NoError(t, err)
	assert.Len(t, values(t, a, got), 4)
}

// TestDeleteHeadTail covers empty, single and multi-node chains.
func TestDeleteHeadTail(t *testing.T) {
	a, head := build(1, 2, 3)
	head = linked.DeleteHead(a, head)
	assert.Equal(t, []int{2, 3}, values(t, a, head))
	head = linked.DeleteTail(a, head)
	assert.Equal(t, []int{2}, values(t, a, head))
	head = linked.DeleteTail(a, head)
	assert.Equal(t, chain.Nil, head)
	assert.Equal(t, chain.Nil, linked.DeleteHead(a, chain.Nil))
	assert.Equal(t, chain.Nil, linked.DeleteTail(a, chain.Nil))
	assert.Equal(t, 0, a.Len(), "every removed node is released")
}

// TestDeleteKth deletes each position and checks the bound policy.
func TestDeleteKth(t *testing.T) {
	for k := 1; k <= 4; k++ {
		a, head := build(1, 2, 3, 4)
		victim := chain.At(a, head, k)
		head, err := linked.DeleteKth(a, head, k)
		require.NoError(t, err)

		want := append(seq(k-1), seq(4)[k:]...)
		assert.Equal(t, want, values(t, a, head), "k=%d", k)
		assert.False(t, a.Live(victim), "deleted node is freed")
	}

	a, head := build(1, 2)
	got, err := linked.DeleteKth(a, head, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, values(t, a, got))

	_, err = linked.DeleteKth(a, head, 3, linked.WithStrictBounds())
	assert.ErrorIs(t, err, linked.ErrOutOfRange)

	// Empty input is a defined empty result, even in strict mode
	got, err = linked.DeleteKth(a, chain.Nil, 1, linked.WithStrictBounds())
	assert.NoError(t, err)
	assert.Equal(t, chain.Nil, got)
}

// TestWithCircularStrategy_UnknownPanics guards the option constructor.
func TestWithCircularStrategy_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { linked.WithCircularStrategy(linked.Strategy(7)) })
	assert.Equal(t, "swap-payload", linked.SwapPayload.String())
}
