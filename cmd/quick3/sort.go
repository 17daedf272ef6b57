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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quick3/quick3"
	"github.com/ajroetker/go-quick3/quick3/contrib/trace"
)

// Above this many values the log trace omits the sequence itself.
const maxLoggedValues = 64

func newSortCmd() *subCommand {
	sc := newSubCommand(&cobra.Command{
		Use:   "sort [file]",
		Short: "Sort whitespace-separated numbers from a file or stdin",
		Long: `
Reads numbers separated by any whitespace from the given file, or from stdin
when no file is given, sorts them and prints one value per line.

--trace selects how partition steps are reported:
  none   no trace (default)
  log    one log line per step (glog, on stderr)
  bars   a bar chart per step, equal zone in red, outside the window in gray
  yaml   every snapshot as a YAML document
  json   every snapshot as a JSON array`,
		Args: cobra.MaximumNArgs(1),
	}, "QUICK3_SORT")

	flags := sc.Cmd.Flags()
	flags.String("trace", "none", "Trace mode: none, log, bars, yaml or json.")
	flags.String("trace-file", "", "Write the trace here instead of stderr.")
	flags.String("pivot", "first", "Pivot strategy: first or median3.")
	flags.Bool("explicit-stack", false, "Use an explicit window stack instead of recursion.")
	flags.Bool("stats", false, "Print comparison, swap and depth counters to stderr.")
	flags.Int("rows", 8, "Height of each bar chart in lines.")
	flags.Bool("no-color", false, "Disable colors in the bar chart.")

	sc.Cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runSort(cmd, sc, args)
	}
	return sc
}

func runSort(cmd *cobra.Command, sc *subCommand, args []string) error {
	conf := sc.Conf

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	values, err := readValues(in)
	if err != nil {
		return err
	}
	glog.V(1).Infof("sort: read %d values", len(values))

	pivot, err := quick3.ParsePivotStrategy(conf.GetString("pivot"))
	if err != nil {
		return err
	}
	opts := []quick3.Option{quick3.WithPivot(pivot)}
	if conf.GetBool("explicit-stack") {
		opts = append(opts, quick3.WithExplicitStack())
	}
	var stats quick3.Stats
	if conf.GetBool("stats") {
		opts = append(opts, quick3.WithStats(&stats))
	}

	traceOut := cmd.ErrOrStderr()
	if path := conf.GetString("trace-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "creating trace file")
		}
		defer f.Close()
		traceOut = f
	}

	var finish func() error
	switch mode := conf.GetString("trace"); mode {
	case "", "none":
	case "log":
		opts = append(opts, quick3.WithSink[float64](trace.Logger[float64]{
			Values: len(values) <= maxLoggedValues,
		}))
	case "bars":
		bars := trace.NewBars[float64](traceOut, trace.Normalize(values),
			conf.GetInt("rows"), conf.GetBool("no-color"))
		bars.Frame("input", values)
		opts = append(opts, quick3.WithSink[float64](bars))
		finish = func() error {
			bars.Frame("sorted", values)
			return bars.Err()
		}
	case "yaml", "json":
		rec := trace.NewRecorder[float64]()
		opts = append(opts, quick3.WithSink[float64](rec))
		finish = func() error {
			if mode == "yaml" {
				return rec.WriteYAML(traceOut)
			}
			return rec.WriteJSON(traceOut)
		}
	default:
		return errors.Errorf("unknown trace mode %q", mode)
	}

	quick3.Sort(values, opts...)
	if finish != nil {
		if err := finish(); err != nil {
			return err
		}
	}
	if err := writeValues(cmd.OutOrStdout(), values); err != nil {
		return err
	}
	if conf.GetBool("stats") {
		fmt.Fprintln(cmd.ErrOrStderr(), stats.String())
	}
	return nil
}

func writeValues(w io.Writer, values []float64) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "writing output")
}
