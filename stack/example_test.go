package stack_test

import (
	"fmt"

	"github.com/katalvlaran/linearkit/stack"
)

func ExampleMin() {
	var s stack.Min
	for _, v := range []int{4, 2, 6} {
		s.Push(v)
	}
	m, _ := s.Min()
	fmt.Println(m)
	_, _ = s.Pop()
	_, _ = s.Pop()
	m, _ = s.Min()
	fmt.Println(m)
	// Output:
	// 2
	// 4
}

func ExampleBalanced() {
	fmt.Println(stack.Balanced("{[()]}"), stack.Balanced("([)]"))
	// Output:
	// true false
}
