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

package subarray

import (
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-arrayalgo/arr"
)

// bruteForce checks every non-empty sub-range.
func bruteForce(data []int) int {
	best := data[0]
	for i := range data {
		for j := i; j < len(data); j++ {
			best = max(best, lo.Sum(data[i:j+1]))
		}
	}
	return best
}

func TestMaxSubarrayAllNegative(t *testing.T) {
	data := []int{-2, -3, -1, -5}
	r, err := MaxSubarray(data)
	require.NoError(t, err)
	assert.Equal(t, -1, r.Sum)
	assert.Equal(t, []int{-1}, r.Slice(data))
}

func TestMaxSubarrayTieBreak(t *testing.T) {
	data := []int{-4, 5, -5, 15, -6, 18, 2, -20}

	// At 15 restarting and extending both give 15.
	r, err := MaxSubarray(data)
	require.NoError(t, err)
	assert.Equal(t, 29, r.Sum)
	assert.Equal(t, []int{15, -6, 18, 2}, r.Slice(data))
	assert.Equal(t, 4, r.Len())

	r, err = MaxSubarray(data, WithTieBreak(PreferExtend))
	require.NoError(t, err)
	assert.Equal(t, 29, r.Sum)
	assert.Equal(t, []int{5, -5, 15, -6, 18, 2}, r.Slice(data))
	assert.Equal(t, Result[int]{Sum: 29, Start: 1, End: 6}, r)
}

func TestMaxSubarraySingle(t *testing.T) {
	r, err := MaxSubarray([]int{-7})
	require.NoError(t, err)
	assert.Equal(t, Result[int]{Sum: -7}, r)
}

func TestMaxSubarrayEmpty(t *testing.T) {
	_, err := MaxSubarray([]int{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, arr.ErrEmpty))

	_, err = MaxSum([]float64(nil))
	assert.True(t, errors.Is(err, arr.ErrEmpty))
}

func TestMaxSubarrayFloat(t *testing.T) {
	data := []float64{1.5, -0.5, 2, -10, 3}
	sum, err := MaxSum(data)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, sum, 1e-9)

	r, err := MaxSubarray(data)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 2, r.End)
}

func TestMaxSubarrayMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := range 300 {
		n := 1 + rng.IntN(40)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.IntN(41) - 20
		}
		want := bruteForce(data)

		for _, tb := range []TieBreak{PreferRestart, PreferExtend} {
			r, err := MaxSubarray(data, WithTieBreak(tb))
			require.NoError(t, err)
			require.Equal(t, want, r.Sum, "trial %d (%s): %v", trial, tb, data)
			require.Equal(t, r.Sum, lo.Sum(r.Slice(data)), "trial %d (%s): reported range does not add up", trial, tb)
			require.GreaterOrEqual(t, r.Len(), 1)
		}
	}
}

func TestMaxSubarrayRestartIsShorter(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for range 200 {
		data := make([]int, 1+rng.IntN(30))
		for i := range data {
			data[i] = rng.IntN(11) - 5
		}
		restart, err := MaxSubarray(data)
		require.NoError(t, err)
		extend, err := MaxSubarray(data, WithTieBreak(PreferExtend))
		require.NoError(t, err)

		assert.Equal(t, extend.Sum, restart.Sum)
		assert.LessOrEqual(t, restart.Len(), extend.Len(), "%v", data)
	}
}

func TestTieBreakString(t *testing.T) {
	assert.Equal(t, "restart", PreferRestart.String())
	assert.Equal(t, "extend", PreferExtend.String())
	assert.Equal(t, "unknown", TieBreak(7).String())
}
