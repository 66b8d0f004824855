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

// slot is an element of a merge temporary. A top slot is the sentinel: it
// compares greater than every real element.
type slot[T arr.Ordered] struct {
	v   T
	top bool
}

// lessEqual reports a <= b with the sentinel ordered above everything.
func (a slot[T]) lessEqual(b slot[T]) bool {
	if b.top {
		return true
	}
	if a.top {
		return false
	}
	return a.v <= b.v
}

// MergeSort sorts data in place using top-down merge sort.
// Time is O(n log n) in every case; it allocates O(n) scratch space.
// Equal elements keep their relative order.
func MergeSort[T arr.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Room for both halves of the largest merge plus their two sentinels.
	scratch := make([]slot[T], n+2)
	mergeSortRange(data, 0, n-1, scratch)
}

// mergeSortRange sorts the inclusive range [start, end].
func mergeSortRange[T arr.Ordered](data []T, start, end int, scratch []slot[T]) {
	if start >= end {
		return
	}

	middle := arr.Midpoint(start, end)
	mergeSortRange(data, start, middle, scratch)
	mergeSortRange(data, middle+1, end, scratch)
	merge(data, start, middle, end, scratch)
}

// merge combines the sorted ranges [start, middle] and [middle+1, end] into a
// sorted [start, end].
//
// Both ranges are copied out and capped with a sentinel, so neither cursor
// needs an exhaustion check: once one side reaches its sentinel, every
// remaining real element on the other side compares <= it.
func merge[T arr.Ordered](data []T, start, middle, end int, scratch []slot[T]) {
	nLeft := middle - start + 1
	nRight := end - middle

	left := scratch[:nLeft+1]
	right := scratch[nLeft+1 : nLeft+nRight+2]

	for i := range nLeft {
		left[i] = slot[T]{v: data[start+i]}
	}
	left[nLeft] = slot[T]{top: true}

	for j := range nRight {
		right[j] = slot[T]{v: data[middle+1+j]}
	}
	right[nRight] = slot[T]{top: true}

	i, j := 0, 0
	for k := start; k <= end; k++ {
		// Ties go left, which keeps the sort stable.
		if left[i].lessEqual(right[j]) {
			data[k] = left[i].v
			i++
		} else {
			data[k] = right[j].v
			j++
		}
	}
}
