package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/linearkit/sorting"
)

// ExampleQuickSortLomuto sorts with the last element as pivot.
func ExampleQuickSortLomuto() {
	a := []int{10, 80, 30, 90, 40, 50, 70}
	sorting.QuickSortLomuto(a)
	fmt.Println(a)
	// Output:
	// [10 30 40 50 70 80 90]
}

// ExamplePartitionHoare shows that the Hoare boundary need not hold the pivot.
func ExamplePartitionHoare() {
	a := []int{5, 3, 8, 4, 9}
	j := sorting.PartitionHoare(a, 0, len(a)-1)
	fmt.Println(j, a)
	// Output:
	// 1 [4 3 8 5 9]
}

// ExampleCountingSort rejects negative input.
func ExampleCountingSort() {
	a := []int{4, 2, 2, 8, 3, 3, 1}
	fmt.Println(sorting.CountingSort(a), a)

	fmt.Println(sorting.CountingSort([]int{1, -2}))
	// Output:
	// <nil> [1 2 2 3 3 4 8]
	// value -2: sorting: counting sort requires non-negative values
}

// ExampleSort picks the algorithm by name at runtime.
func ExampleSort() {
	alg, _ := sorting.ParseAlgorithm("hoare")
	a := []int{3, 1, 2}
	_ = sorting.Sort(a, alg)
	fmt.Println(alg, a)
	// Output:
	// hoare [1 2 3]
}
