package chain_test

import (
	"fmt"

	"github.com/katalvlaran/linearkit/chain"
)

// ExampleArena builds a chain, relinks it by ID and reads it back.
func ExampleArena() {
	a := chain.NewArena()
	head := chain.FromSlice(a, []int{10, 20, 30})

	// Detach the middle node: 10 -> 30
	mid := a.Next(head)
	a.SetNext(head, a.Next(mid))
	a.Free(mid)

	vals, _ := chain.Values(a, head)
	fmt.Println(vals, a.Len())

	// Output:
	// [10 30] 2
}
