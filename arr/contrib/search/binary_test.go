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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchScenarios(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	i, ok := Search(data, 7)
	require.True(t, ok)
	assert.Equal(t, 7, i)

	_, ok = Search(data, 20)
	assert.False(t, ok)
}

func TestSearchEveryElement(t *testing.T) {
	for n := range 33 {
		data := make([]int, n)
		for i := range data {
			data[i] = 2 * i
		}
		for i, v := range data {
			got, ok := Search(data, v)
			require.True(t, ok, "n=%d v=%d", n, v)
			assert.Equal(t, i, got, "n=%d v=%d", n, v)

			// Odd values fall between elements.
			_, ok = Search(data, v+1)
			assert.False(t, ok, "n=%d v=%d", n, v+1)
		}
		_, ok := Search(data, -1)
		assert.False(t, ok, "n=%d below range", n)
	}
}

func TestSearchEmpty(t *testing.T) {
	_, ok := Search([]int{}, 1)
	assert.False(t, ok)

	var nilSlice []string
	assert.False(t, Contains(nilSlice, "x"))
}

func TestSearchDuplicates(t *testing.T) {
	data := []int{1, 3, 3, 3, 3, 3, 8}
	i, ok := Search(data, 3)
	require.True(t, ok)
	assert.Equal(t, 3, data[i])
	assert.True(t, i >= 1 && i <= 5)
}

func TestSearchTypes(t *testing.T) {
	floats := []float64{-2.5, -1, 0, 0.5, math.Inf(1)}
	i, ok := Search(floats, 0.5)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	words := []string{"ant", "bee", "cat", "dog"}
	assert.True(t, Contains(words, "cat"))
	assert.False(t, Contains(words, "cow"))
}

func TestSearchRange(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	i, ok := SearchRange(data, 2, 6, 5)
	require.True(t, ok)
	assert.Equal(t, 5, i)

	// 8 is in the slice but outside the range.
	_, ok = SearchRange(data, 2, 6, 8)
	assert.False(t, ok)

	_, ok = SearchRange(data, 6, 2, 4)
	assert.False(t, ok, "inverted range is empty")
}
