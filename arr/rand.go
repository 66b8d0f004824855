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
	"math/bits"
	"math/rand/v2"
	"sync"
)

// Source supplies the random pivot choices of the randomized algorithms.
// IntN returns a uniform value in [0, n) and may panic if n <= 0.
//
// *rand.Rand from math/rand/v2 satisfies Source, so any seeded generator can
// be passed in for deterministic runs.
type Source interface {
	IntN(n int) int
}

// IntRange returns a uniform value from the inclusive range [first, last].
func IntRange(src Source, first, last int) int {
	return first + src.IntN(last-first+1)
}

// xorshiftState must never be zero, or the generator gets stuck at zero.
const xorshiftZeroSeed = 0x9E3779B97F4A7C15

// XorShiftSource is a small deterministic xorshift64* generator.
// It is not safe for concurrent use.
type XorShiftSource struct {
	state uint64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed uint64) *XorShiftSource {
	if seed == 0 {
		seed = xorshiftZeroSeed
	}
	return &XorShiftSource{state: seed}
}

// Uint64 advances the generator and returns the next value.
func (s *XorShiftSource) Uint64() uint64 {
	x := s.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	s.state = x
	return x * 0x2545F4914F6CDD1D
}

// IntN maps the next value onto [0, n) with a multiply-shift reduction.
func (s *XorShiftSource) IntN(n int) int {
	if n <= 0 {
		panic("arr: IntN called with non-positive n")
	}
	hi, _ := bits.Mul64(s.Uint64(), uint64(n))
	return int(hi)
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

var (
	defaultOnce   sync.Once
	defaultSource Source
)

// DefaultSource returns the process-wide Source used by the convenience
// entry points. It is safe for concurrent use.
//
// When ARR_SEED holds an unsigned integer the source is a deterministic
// generator seeded with it, otherwise it draws from math/rand/v2.
func DefaultSource() Source {
	defaultOnce.Do(func() {
		if seed, ok := SeedEnv(); ok {
			defaultSource = &lockedSource{src: NewSource(seed)}
			return
		}
		defaultSource = globalSource{}
	})
	return defaultSource
}
