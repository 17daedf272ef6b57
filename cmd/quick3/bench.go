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
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quick3/quick3"
	"github.com/ajroetker/go-quick3/quick3/contrib/bench"
)

func newBenchCmd() *subCommand {
	sc := newSubCommand(&cobra.Command{
		Use:   "bench",
		Short: "Measure comparisons, swaps, depth and time over generated inputs",
		Args:  cobra.NoArgs,
	}, "QUICK3_BENCH")

	flags := sc.Cmd.Flags()
	flags.Int("n", 10000, "Length of each input.")
	flags.Int("trials", 32, "Number of inputs to sort.")
	flags.Int("workers", 0, "Concurrent trials; 0 uses GOMAXPROCS.")
	flags.String("dist", string(bench.Uniform), "Input distribution: uniform, random, sorted, reversed or equal.")
	flags.Int("m", 100, "Distinct keys for the uniform distribution.")
	flags.Int64("seed", 1, "Seed of the first trial.")
	flags.String("pivot", "first", "Pivot strategy: first or median3.")
	flags.Bool("explicit-stack", false, "Use an explicit window stack instead of recursion.")
	flags.String("profile", "", "Write a cpu or mem profile while benchmarking.")
	flags.String("profile-dir", ".", "Directory for profile output.")

	sc.Cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBench(cmd, sc)
	}
	return sc
}

func runBench(cmd *cobra.Command, sc *subCommand) error {
	conf := sc.Conf

	dist, err := bench.ParseDistribution(conf.GetString("dist"))
	if err != nil {
		return err
	}
	pivot, err := quick3.ParsePivotStrategy(conf.GetString("pivot"))
	if err != nil {
		return err
	}
	cfg := bench.Config{
		N:             conf.GetInt("n"),
		Trials:        conf.GetInt("trials"),
		Workers:       conf.GetInt("workers"),
		Dist:          dist,
		M:             conf.GetInt("m"),
		Seed:          conf.GetInt64("seed"),
		Pivot:         pivot,
		ExplicitStack: conf.GetBool("explicit-stack"),
	}

	switch mode := conf.GetString("profile"); mode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(conf.GetString("profile-dir")),
			profile.Quiet, profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(conf.GetString("profile-dir")),
			profile.Quiet, profile.NoShutdownHook).Stop()
	default:
		return errors.Errorf("unknown profile mode %q, want cpu or mem", mode)
	}

	report, err := bench.Run(cmd.Context(), cfg)
	if report != nil {
		if _, werr := report.WriteTo(cmd.OutOrStdout()); werr != nil {
			return errors.Wrap(werr, "writing report")
		}
	}
	if err != nil {
		return err
	}
	glog.V(1).Infof("bench: %d trials finished in %s", report.Completed, report.Elapsed)
	return nil
}
