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
	"io"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-arrayalgo/arr"
)

// app carries the streams and persistent flags shared by all subcommands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	seed    string
	verbose bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "arrtool",
		Short:         "Sort, select, search and scan arrays of integers",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.seed, "seed", "", "seed for pivot choices (overrides "+arr.SeedEnvVar+")")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newSortCmd(a),
		newSelectCmd(a),
		newSearchCmd(a),
		newMaxSubCmd(a),
		newBenchCmd(a),
	)
	return root
}

// log returns a key=value logger for the named step. It writes nothing
// unless --verbose is set.
func (a *app) log(at string) *logger.Logger {
	w := io.Discard
	if a.verbose {
		w = a.stderr
	}
	return logger.NewWriter("ns=arrtool", w).At(at)
}

// source resolves the pivot source: --seed, then ARR_SEED, then the
// process-wide generator.
func (a *app) source() (arr.Source, error) {
	if a.seed == "" {
		return arr.DefaultSource(), nil
	}
	seed, ok := arr.ParseSeed(a.seed)
	if !ok {
		return nil, errors.Errorf("invalid --seed %q", a.seed)
	}
	return arr.NewSource(seed), nil
}
