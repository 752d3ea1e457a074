package linked_test

import (
	"testing"

	"github.com/katalvlaran/linearkit/chain"
	"github.com/katalvlaran/linearkit/linked"
)

// BenchmarkReverse_10000 reverses a 10,000-node chain back and forth.
func BenchmarkReverse_10000(b *testing.B) {
	a := chain.NewArena(chain.WithCapacity(10000))
	head := chain.FromSlice(a, seq(10000))

	b.ResetTimer() // exclude construction
	for i := 0; i < b.N; i++ {
		head = linked.Reverse(a, head)
	}
}

// BenchmarkCycleEntry_10000 locates the entry of a loop closing at the midpoint.
func BenchmarkCycleEntry_10000(b *testing.B) {
	a := chain.NewArena(chain.WithCapacity(10000))
	head := chain.FromSlice(a, seq(10000))
	a.SetNext(chain.Tail(a, head), chain.At(a, head, 5000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = linked.CycleEntry(a, head)
	}
}

// BenchmarkMergeSorted_2x5000 rebuilds and merges two interleaved chains.
func BenchmarkMergeSorted_2x5000(b *testing.B) {
	evens, odds := make([]int, 5000), make([]int, 5000)
	for i := range evens {
		evens[i], odds[i] = 2*i, 2*i+1
	}

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a := chain.NewArena(chain.WithCapacity(10000))
		l, r := chain.FromSlice(a, evens), chain.FromSlice(a, odds)
		b.StartTimer()
		_ = linked.MergeSorted(a, l, r)
	}
}
