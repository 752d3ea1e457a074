package linked_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linearkit/chain"
	"github.com/katalvlaran/linearkit/linked"
)

// TestReverse_Involution verifies reverse(reverse(c)) == c for lengths 0..10,
// and that a single reverse yields the mirrored sequence.
func TestReverse_Involution(t *testing.T) {
	for n := 0; n <= 10; n++ {
		a, head := build(seq(n)...)

		once := linked.Reverse(a, head)
		want := make([]int, n)
		for i := 0; i < n; i++ {
			want[i] = n - i
		}
		assert.Equal(t, want, values(t, a, once), "n=%d", n)

		twice := linked.Reverse(a, once)
		assert.Equal(t, seq(n), values(t, a, twice), "n=%d", n)
		assert.Equal(t, head, twice, "the original head is the head again")
	}
}

// TestReverse_Trivial returns the same handle for 0 and 1 nodes.
func TestReverse_Trivial(t *testing.T) {
	a, head := build(42)
	assert.Equal(t, head, linked.Reverse(a, head))
	assert.Equal(t, chain.Nil, linked.Reverse(a, chain.Nil))
}
