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
// Package subarray finds the maximum-sum contiguous sub-range of a slice
// with Kadane's single-pass scan.
package subarray

import "github.com/ajroetker/go-arrayalgo/arr"

// TieBreak decides which sub-range is reported when restarting at the current
// element and extending the running sub-range give the same sum. It never
// changes the sum.
type TieBreak int

const (
	// PreferRestart starts a fresh sub-range on ties, reporting the shorter one.
	PreferRestart TieBreak = iota

	// PreferExtend keeps extending on ties, reporting the longer one.
	PreferExtend
)

func (tb TieBreak) String() string {
	switch tb {
	case PreferRestart:
		return "restart"
	case PreferExtend:
		return "extend"
	default:
		return "unknown"
	}
}

type options struct {
	tieBreak TieBreak
}

// Option configures MaxSubarray.
type Option func(*options)

// WithTieBreak selects the tie-break policy. The default is PreferRestart.
func WithTieBreak(tb TieBreak) Option {
	return func(o *options) {
		o.tieBreak = tb
	}
}

// Result is a maximum-sum sub-range: data[Start:End+1] sums to Sum.
type Result[T arr.Number] struct {
	Sum   T
	Start int
	End   int
}

// Slice returns the sub-range of data described by r. It shares storage with
// data.
func (r Result[T]) Slice(data []T) []T {
	return data[r.Start : r.End+1]
}

// Len returns the number of elements in the sub-range. It is at least 1.
func (r Result[T]) Len() int {
	return r.End - r.Start + 1
}

// MaxSubarray returns the largest sum over all non-empty contiguous
// sub-ranges of data, together with the first sub-range reaching it.
// All-negative input yields its largest single element.
//
// It returns arr.ErrEmpty when data is empty. Time is O(n), space O(1).
func MaxSubarray[T arr.Number](data []T, opts ...Option) (Result[T], error) {
	if err := arr.CheckNonEmpty(len(data)); err != nil {
		return Result[T]{}, err
	}

	o := options{tieBreak: PreferRestart}
	for _, opt := range opts {
		opt(&o)
	}

	// current is the best sum of a sub-range ending at i; it starts at
	// currentStart and is never empty.
	current := data[0]
	currentStart := 0
	best := Result[T]{Sum: data[0]}

	for i := 1; i < len(data); i++ {
		v := data[i]
		extended := current + v

		if v > extended || (v == extended && o.tieBreak == PreferRestart) {
			current = v
			currentStart = i
		} else {
			current = extended
		}

		if current > best.Sum {
			best = Result[T]{Sum: current, Start: currentStart, End: i}
		}
	}
	return best, nil
}

// MaxSum returns only the sum reported by MaxSubarray.
func MaxSum[T arr.Number](data []T) (T, error) {
	r, err := MaxSubarray(data)
	return r.Sum, err
}
