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

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// readNumbers parses args, or whitespace-separated words from r when args is
// empty.
func readNumbers(args []string, r io.Reader) ([]int64, error) {
	if len(args) > 0 {
		return parseNumbers(args)
	}

	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return parseNumbers(words)
}

func parseNumbers(words []string) ([]int64, error) {
	nums := make([]int64, 0, len(words))
	for _, w := range words {
		n, err := strconv.ParseInt(w, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", w)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func formatNumbers(nums []int64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, " ")
}
