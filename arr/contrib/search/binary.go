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
package search

import "github.com/ajroetker/go-arrayalgo/arr"

// Search returns the index of an element equal to target and true, or 0 and
// false when target is absent. With duplicates any matching index may be
// returned.
//
// Time is O(log n).
func Search[T arr.Ordered](sorted []T, target T) (int, bool) {
	return SearchRange(sorted, 0, len(sorted)-1, target)
}

// SearchRange is Search restricted to the inclusive range [start, end].
// The range is empty when start > end.
func SearchRange[T arr.Ordered](sorted []T, start, end int, target T) (int, bool) {
	for start <= end {
		middle := arr.Midpoint(start, end)
		v := sorted[middle]

		switch {
		case target < v:
			end = middle - 1
		case v < target:
			start = middle + 1
		default:
			return middle, true
		}
	}
	return 0, false
}

// Contains reports whether target occurs in sorted.
func Contains[T arr.Ordered](sorted []T, target T) bool {
	_, ok := Search(sorted, target)
	return ok
}
