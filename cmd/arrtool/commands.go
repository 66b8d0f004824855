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
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-arrayalgo/arr"
	"github.com/ajroetker/go-arrayalgo/arr/contrib/search"
	"github.com/ajroetker/go-arrayalgo/arr/contrib/sort"
	"github.com/ajroetker/go-arrayalgo/arr/contrib/subarray"
)

// errNotFound makes search exit with status 1 without an error message.
var errNotFound = errors.New("not found")

// sortAlgo is the --algo flag value.
type sortAlgo string

const (
	algoQuick     sortAlgo = "quick"
	algoMerge     sortAlgo = "merge"
	algoInsertion sortAlgo = "insertion"
)

var sortAlgos = []sortAlgo{algoQuick, algoMerge, algoInsertion}

var _ pflag.Value = (*sortAlgo)(nil)

func (s *sortAlgo) String() string { return string(*s) }

func (s *sortAlgo) Set(v string) error {
	if !slices.Contains(sortAlgos, sortAlgo(v)) {
		return errors.Errorf("unknown algorithm %q (want one of %s)", v, algoNames())
	}
	*s = sortAlgo(v)
	return nil
}

func (s *sortAlgo) Type() string { return "algo" }

func algoNames() string {
	names := make([]string, len(sortAlgos))
	for i, a := range sortAlgos {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// sortWith sorts data in place with the named algorithm.
func sortWith(algo sortAlgo, data []int64, src arr.Source) {
	switch algo {
	case algoMerge:
		sort.MergeSort(data)
	case algoInsertion:
		sort.InsertionSort(data)
	default:
		sort.QuickSortRand(data, src)
	}
}

func newSortCmd(a *app) *cobra.Command {
	algo := algoQuick

	cmd := &cobra.Command{
		Use:   "sort [numbers...]",
		Short: "Sort numbers in ascending order",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log("sort").Start()

			data, err := readNumbers(args, a.stdin)
			if err != nil {
				return log.Error(err)
			}
			src, err := a.source()
			if err != nil {
				return log.Error(err)
			}

			sortWith(algo, data, src)
			log.Successf("algo=%s n=%d", algo, len(data))

			fmt.Fprintln(a.stdout, formatNumbers(data))
			return nil
		},
	}
	cmd.Flags().Var(&algo, "algo", "sorting algorithm: "+algoNames())
	return cmd
}

func newSelectCmd(a *app) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "select --k K [numbers...]",
		Short: "Print the element of zero-based rank K",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log("select").Start()

			data, err := readNumbers(args, a.stdin)
			if err != nil {
				return log.Error(err)
			}
			src, err := a.source()
			if err != nil {
				return log.Error(err)
			}

			v, err := sort.SelectRand(data, k, src)
			if err != nil {
				return log.Error(errors.Wrapf(err, "select rank %d", k))
			}
			log.Successf("k=%d n=%d", k, len(data))

			fmt.Fprintln(a.stdout, v)
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 0, "zero-based rank (0 is the minimum)")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		target    int64
		sortFirst bool
	)

	cmd := &cobra.Command{
		Use:   "search --target V [numbers...]",
		Short: "Binary search sorted numbers for a value",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log("search").Start()

			data, err := readNumbers(args, a.stdin)
			if err != nil {
				return log.Error(err)
			}
			if sortFirst {
				sort.MergeSort(data)
			} else if !sort.IsSorted(data) {
				return log.Error(errors.New("input is not sorted (pass --sort)"))
			}

			i, ok := search.Search(data, target)
			if !ok {
				log.Logf("state=miss target=%d n=%d", target, len(data))
				fmt.Fprintln(a.stdout, "not found")
				return errNotFound
			}
			log.Successf("target=%d index=%d", target, i)

			fmt.Fprintln(a.stdout, i)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&target, "target", 0, "value to look for")
	f.BoolVar(&sortFirst, "sort", false, "sort the input before searching")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newMaxSubCmd(a *app) *cobra.Command {
	var extend bool

	cmd := &cobra.Command{
		Use:   "maxsub [numbers...]",
		Short: "Print the maximum contiguous sub-range sum and the sub-range",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log("maxsub").Start()

			data, err := readNumbers(args, a.stdin)
			if err != nil {
				return log.Error(err)
			}

			tb := subarray.PreferRestart
			if extend {
				tb = subarray.PreferExtend
			}
			r, err := subarray.MaxSubarray(data, subarray.WithTieBreak(tb))
			if err != nil {
				return log.Error(err)
			}
			log.Successf("sum=%d start=%d end=%d tiebreak=%s", r.Sum, r.Start, r.End, tb)

			fmt.Fprintf(a.stdout, "%d [%s]\n", r.Sum, formatNumbers(r.Slice(data)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&extend, "extend", false, "on equal sums keep the longer sub-range")
	return cmd
}
