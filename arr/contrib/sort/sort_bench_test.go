package sort

import (
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-arrayalgo/arr"
)

// Generate random data for benchmarks
func generateInt64(n int) []int64 {
	rng := rand.New(rand.NewPCG(uint64(n), 0))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int64N(10000) - 5000
	}
	return data
}

func BenchmarkQuickSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, func(d []int64) { QuickSortRand(d, arr.NewSource(1)) })
}

func BenchmarkQuickSort_100000(b *testing.B) {
	benchmarkSort(b, 100000, func(d []int64) { QuickSortRand(d, arr.NewSource(1)) })
}

func BenchmarkMergeSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, MergeSort[int64])
}

func BenchmarkMergeSort_100000(b *testing.B) {
	benchmarkSort(b, 100000, MergeSort[int64])
}

// Insertion sort is quadratic; keep the sizes small.
func BenchmarkInsertionSort_16(b *testing.B) {
	benchmarkSort(b, 16, InsertionSort[int64])
}

func BenchmarkInsertionSort_1000(b *testing.B) {
	benchmarkSort(b, 1000, InsertionSort[int64])
}

func benchmarkSort(b *testing.B, n int, sortFn func([]int64)) {
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		sortFn(data)
	}
}

func BenchmarkSelect_Median_100000(b *testing.B) {
	ref := generateInt64(100000)
	data := make([]int64, len(ref))
	src := arr.NewSource(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		if _, err := SelectRand(data, len(data)/2, src); err != nil {
			b.Fatal(err)
		}
	}
}
