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

// Package arr holds the pieces shared by the array algorithms in arr/contrib:
// element constraints, the error taxonomy, injectable randomness and the
// environment configuration.
//
// The algorithms themselves live in sub-packages:
//
//	import "github.com/ajroetker/go-arrayalgo/arr/contrib/sort"
//
//	data := []int{9, 7, 5, 4, 3, 2, 1}
//	sort.Sort(data) // [1 2 3 4 5 7 9]
//
// Every operation works on a single caller-owned slice. Index ranges are
// inclusive pairs [first, last], matching the way the algorithms describe
// their sub-problems.
package arr

import "golang.org/x/exp/constraints"

// Ordered is a constraint for element types with a total order usable by the
// comparison operators.
type Ordered interface {
	constraints.Ordered
}

// Number is a constraint for element types that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}

// Midpoint returns the middle index of the inclusive range [start, end],
// truncated toward start.
//
// It never forms start+end, so it cannot overflow for any valid pair of
// indices.
func Midpoint(start, end int) int {
	return start + (end-start)/2
}
