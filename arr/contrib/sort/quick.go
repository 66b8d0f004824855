// Copyright 2025 go-arrayalgo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/ajroetker/go-arrayalgo/arr"

// Sort sorts data in place in ascending order.
// It is a randomized quicksort drawing pivots from arr.DefaultSource.
func Sort[T arr.Ordered](data []T) {
	QuickSortRand(data, arr.DefaultSource())
}

// QuickSort sorts data in place using randomized quicksort.
//
// Expected time is O(n log n); the worst case is O(n²) and needs
// systematically unlucky pivots or many equal elements.
func QuickSort[T arr.Ordered](data []T) {
	QuickSortRand(data, arr.DefaultSource())
}

// QuickSortRand is QuickSort with an explicit pivot source.
func QuickSortRand[T arr.Ordered](data []T, src arr.Source) {
	quickSortRange(data, 0, len(data)-1, src)
}

// quickSortRange sorts the inclusive range [first, last].
func quickSortRange[T arr.Ordered](data []T, first, last int, src arr.Source) {
	// Ranges of 0 or 1 elements are sorted.
	for first < last {
		endFirst, startSecond := Partition(data, first, last, src)

		// Recurse into the smaller side, loop on the larger one.
		if endFirst-first < last-startSecond {
			quickSortRange(data, first, endFirst, src)
			first = startSecond
		} else {
			quickSortRange(data, startSecond, last, src)
			last = endFirst
		}
	}
}
