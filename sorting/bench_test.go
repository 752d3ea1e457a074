package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linearkit/sorting"
)

// benchmarkSort copies a fixed random input before every run so that each
// iteration sorts the same unsorted data.
func benchmarkSort(b *testing.B, n int, fn func([]int)) {
	r := rand.New(rand.NewSource(1))
	src := make([]int, n)
	for i := range src {
		src[i] = r.Intn(n)
	}
	buf := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		fn(buf)
	}
}

func BenchmarkQuickSortLomuto_10000(b *testing.B) {
	benchmarkSort(b, 10000, sorting.QuickSortLomuto[int])
}

func BenchmarkQuickSortHoare_10000(b *testing.B) {
	benchmarkSort(b, 10000, sorting.QuickSortHoare[int])
}

func BenchmarkMergeSort_10000(b *testing.B) {
	benchmarkSort(b, 10000, sorting.MergeSort[int])
}

func BenchmarkCountingSort_10000(b *testing.B) {
	benchmarkSort(b, 10000, func(a []int) { _ = sorting.CountingSort(a) })
}

func BenchmarkInsertionSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, sorting.InsertionSort[int])
}
