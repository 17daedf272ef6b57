// Copyright 2025 go-quick3 Authors
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
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quick3/quick3"
	"github.com/ajroetker/go-quick3/quick3/contrib/bench"
	"github.com/ajroetker/go-quick3/quick3/contrib/trace"
)

func newDemoCmd() *subCommand {
	sc := newSubCommand(&cobra.Command{
		Use:   "demo M N",
		Short: "Draw the partition trace of N random values with at most M distinct keys",
		Long: `
Generates N values drawn uniformly from {1/M, 2/M, ..., 1} and draws the
array before the sort, after every completed partition and after the sort.
Each distinct value ends up in exactly one equal zone, so the trace has one
row per distinct value plus two.`,
		Args: cobra.ExactArgs(2),
	}, "QUICK3_DEMO")

	flags := sc.Cmd.Flags()
	flags.Int64("seed", 0, "Random seed; 0 picks one from the clock.")
	flags.Int("rows", 4, "Height of each bar chart in lines.")
	flags.Bool("no-color", false, "Disable colors.")

	sc.Cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, sc, args)
	}
	return sc
}

func runDemo(cmd *cobra.Command, sc *subCommand, args []string) error {
	m, err := cast.ToIntE(args[0])
	if err != nil || m < 1 {
		return errors.Errorf("M must be a positive integer, got %q", args[0])
	}
	n, err := cast.ToIntE(args[1])
	if err != nil || n < 0 {
		return errors.Errorf("N must be a non-negative integer, got %q", args[1])
	}

	seed := sc.Conf.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	values, err := bench.Generate(rand.New(rand.NewSource(seed)), bench.Uniform, n, m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	distinct := bench.DistinctCount(values)
	fmt.Fprintf(out, "%d values, %d distinct, %d rows, seed %d\n", n, distinct, distinct+2, seed)

	bars := trace.NewBars[float64](out, trace.Identity, sc.Conf.GetInt("rows"), sc.Conf.GetBool("no-color"))
	bars.Frame("input", values)
	quick3.Sort(values, quick3.WithSink(trace.Only[float64](bars, quick3.StepAfter, quick3.StepTrivial)))
	bars.Frame("sorted", values)
	return bars.Err()
}
