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

package arr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("arr: empty array")

	// ErrOutOfRange is returned when a rank or index falls outside [0, n-1].
	ErrOutOfRange = errors.New("arr: index out of range")
)

// RangeError reports an index that does not address an element of an array
// of length Len.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("arr: index %d out of range for empty array", e.Index)
	}
	return fmt.Sprintf("arr: index %d out of range [0, %d]", e.Index, e.Len-1)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold for every RangeError.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Is also matches ErrEmpty when the array had no elements at all.
func (e *RangeError) Is(target error) bool {
	return e.Len == 0 && target == ErrEmpty
}

// CheckNonEmpty returns ErrEmpty when n is zero.
func CheckNonEmpty(n int) error {
	if n == 0 {
		return errors.WithStack(ErrEmpty)
	}
	return nil
}

// CheckIndex returns a *RangeError unless 0 <= i < n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Index: i, Len: n}
	}
	return nil
}
