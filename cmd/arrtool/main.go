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

// Command arrtool applies the array algorithms to numbers given on the
// command line or on stdin.
//
// Usage:
//
//	arrtool sort 9 7 5 4 3 2 1                 # 1 2 3 4 5 7 9
//	arrtool sort --algo merge < numbers.txt
//	arrtool select --k 0 2 8 9 3 7 1 5 4 0 6   # 0
//	arrtool search --target 7 0 1 2 3 4 5 6 7 8 9
//	arrtool maxsub -- -2 -3 -1 -5              # -1 [-1]
//	arrtool bench --n 100000 --trials 16
//
// Numbers are 64-bit integers in any base strconv.ParseInt accepts with base
// 0 (decimal, 0x hex, 0o octal, 0b binary). Pivot choices are seeded from
// --seed, then ARR_SEED, then the process-wide generator.
//
// search exits with status 1 when the target is absent; every other failure
// also exits with status 1 after printing the error.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
