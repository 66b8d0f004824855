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

// InsertionSort sorts data in place in ascending order.
//
// Each element is inserted into the sorted prefix before it by shifting the
// larger prefix elements one slot right, not by repeated swaps. O(n²) time,
// O(1) extra space, and fast for small n.
func InsertionSort[T arr.Ordered](data []T) {
	for j := 1; j < len(data); j++ {
		key := data[j]
		i := j - 1
		for i >= 0 && data[i] > key {
			data[i+1] = data[i]
			i--
		}
		data[i+1] = key
	}
}
