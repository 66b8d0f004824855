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
	"os"
	"strconv"
	"strings"
)

// SeedEnvVar names the environment variable read by SeedEnv.
const SeedEnvVar = "ARR_SEED"

// SeedEnv reports the seed held in ARR_SEED.
// Empty or unparsable values are treated as unset.
func SeedEnv() (uint64, bool) {
	return ParseSeed(os.Getenv(SeedEnvVar))
}

// ParseSeed parses a seed written in decimal, hex (0x) or octal (0o) form.
func ParseSeed(val string) (uint64, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}
