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

// Partition rearranges data[first:last+1] around a pivot drawn uniformly from
// that range, so that:
//   - data[first:p] <= pivot
//   - data[p] == pivot
//   - data[p+1:last+1] > pivot
//
// It returns (p-1, p+1): the last index of the <= side and the first index of
// the > side. Either side may be empty. Elements outside [first, last] are not
// touched.
//
// Callers handle first >= last themselves; for a single element range the
// result is (first-1, first+1).
func Partition[T arr.Ordered](data []T, first, last int, src arr.Source) (int, int) {
	p := arr.IntRange(src, first, last)
	pivot := data[p]

	// Park the pivot at the front while the rest is scanned.
	data[p] = data[first]
	data[first] = pivot

	// data[first+1:firstGreater] <= pivot, data[firstGreater:i] > pivot.
	firstGreater := first + 1
	for i := first + 1; i <= last; i++ {
		if data[i] <= pivot {
			if i != firstGreater {
				data[i], data[firstGreater] = data[firstGreater], data[i]
			}
			firstGreater++
		}
	}

	// Swap the pivot with the last element of the <= side.
	data[first] = data[firstGreater-1]
	data[firstGreater-1] = pivot

	return firstGreater - 2, firstGreater
}
