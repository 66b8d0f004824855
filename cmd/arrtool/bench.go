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
	"runtime"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-arrayalgo/arr"
	"github.com/ajroetker/go-arrayalgo/arr/contrib/search"
	"github.com/ajroetker/go-arrayalgo/arr/contrib/sort"
)

// benchConfig holds the bench flags.
type benchConfig struct {
	n       int
	trials  int
	workers int
	maxN    int // insertion sort is skipped above this size
}

// trialTimes is the wall time each algorithm spent in one trial.
type trialTimes map[string]time.Duration

func newBenchCmd(a *app) *cobra.Command {
	cfg := benchConfig{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time and cross-check every algorithm on random arrays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.n < 1 || cfg.trials < 1 {
				return errors.Errorf("--n and --trials must be positive (got %d, %d)", cfg.n, cfg.trials)
			}
			seed := uint64(time.Now().UnixNano())
			if a.seed != "" {
				s, ok := arr.ParseSeed(a.seed)
				if !ok {
					return errors.Errorf("invalid --seed %q", a.seed)
				}
				seed = s
			} else if s, ok := arr.SeedEnv(); ok {
				seed = s
			}

			log := a.log("bench").Start()
			log.Logf("n=%d trials=%d workers=%d seed=%d", cfg.n, cfg.trials, cfg.workers, seed)

			totals, err := runBench(cfg, seed)
			if err != nil {
				return log.Error(err)
			}
			log.Success()

			for _, name := range benchOrder {
				d, ok := totals[name]
				if !ok {
					continue
				}
				fmt.Fprintf(a.stdout, "%-10s n=%d trials=%d avg=%s\n", name, cfg.n, cfg.trials, d/time.Duration(cfg.trials))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.n, "n", 10000, "elements per array")
	f.IntVar(&cfg.trials, "trials", 8, "number of random arrays")
	f.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "trials run concurrently")
	f.IntVar(&cfg.maxN, "insertion-max", 20000, "largest n timed with insertion sort")
	return cmd
}

var benchOrder = []string{"quick", "merge", "insertion", "select", "search"}

// runBench runs the trials on at most cfg.workers goroutines. Each trial owns
// its array and its pivot source, so every algorithm call stays
// single-threaded. Wait reports the first verification failure.
func runBench(cfg benchConfig, seed uint64) (trialTimes, error) {
	results := make([]trialTimes, cfg.trials)

	var g errgroup.Group
	if cfg.workers > 0 {
		g.SetLimit(cfg.workers)
	}
	for trial := range cfg.trials {
		g.Go(func() error {
			times, err := runTrial(cfg, seed+uint64(trial))
			if err != nil {
				return errors.Wrapf(err, "trial %d", trial)
			}
			results[trial] = times
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totals := trialTimes{}
	for _, times := range results {
		for name, d := range times {
			totals[name] += d
		}
	}
	return totals, nil
}

func runTrial(cfg benchConfig, seed uint64) (trialTimes, error) {
	src := arr.NewSource(seed)
	ref := make([]int64, cfg.n)
	for i := range ref {
		ref[i] = int64(src.Uint64()>>1) % int64(4*cfg.n)
	}
	want := slices.Clone(ref)
	slices.Sort(want)

	times := trialTimes{}
	timed := func(name string, algo sortAlgo) error {
		data := slices.Clone(ref)
		start := time.Now()
		sortWith(algo, data, src)
		times[name] = time.Since(start)
		if !slices.Equal(data, want) {
			return errors.Errorf("%s sort produced a wrong result", name)
		}
		return nil
	}

	if err := timed("quick", algoQuick); err != nil {
		return nil, err
	}
	if err := timed("merge", algoMerge); err != nil {
		return nil, err
	}
	if cfg.n <= cfg.maxN {
		if err := timed("insertion", algoInsertion); err != nil {
			return nil, err
		}
	}

	k := src.IntN(cfg.n)
	data := slices.Clone(ref)
	start := time.Now()
	v, err := sort.SelectRand(data, k, src)
	times["select"] = time.Since(start)
	if err != nil {
		return nil, err
	}
	if v != want[k] {
		return nil, errors.Errorf("select rank %d = %d, want %d", k, v, want[k])
	}

	target := ref[src.IntN(cfg.n)]
	start = time.Now()
	i, ok := search.Search(want, target)
	times["search"] = time.Since(start)
	if !ok || want[i] != target {
		return nil, errors.Errorf("search missed %d", target)
	}
	return times, nil
}
