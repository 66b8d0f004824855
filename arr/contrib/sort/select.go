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

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-arrayalgo/arr"
)

// Select returns the element of zero-based rank k: the value data[k] would
// hold if data were sorted ascending. Rank 0 is the minimum.
//
// data is reordered as a side effect but never copied. An empty slice or a k
// outside [0, len(data)-1] yields a *arr.RangeError; errors.Is matches it
// against arr.ErrOutOfRange, and also arr.ErrEmpty for an empty slice.
//
// Expected time is O(n).
func Select[T arr.Ordered](data []T, k int) (T, error) {
	return SelectRand(data, k, arr.DefaultSource())
}

// SelectRand is Select with an explicit pivot source.
func SelectRand[T arr.Ordered](data []T, k int, src arr.Source) (T, error) {
	if err := arr.CheckIndex(k, len(data)); err != nil {
		var zero T
		return zero, err
	}

	// [first, last] always holds exactly the elements of ranks first..last,
	// so k stays an absolute index into data.
	first, last := 0, len(data)-1
	for {
		// Smallest or largest of the range: a scan beats another partition.
		switch k {
		case first:
			return lo.Min(data[first : last+1]), nil
		case last:
			return lo.Max(data[first : last+1]), nil
		}

		endFirst, startSecond := Partition(data, first, last, src)
		pivot := endFirst + 1
		switch {
		case k < pivot:
			last = endFirst
		case k > pivot:
			first = startSecond
		default:
			return data[pivot], nil
		}
	}
}

// OrderStatistic returns the order-th smallest element, counting from one:
// order 1 is the minimum and order len(data) the maximum.
func OrderStatistic[T arr.Ordered](data []T, order int) (T, error) {
	v, err := Select(data, order-1)
	if err != nil {
		return v, errors.Wrapf(err, "order statistic %d", order)
	}
	return v, nil
}
