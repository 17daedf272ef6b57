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

package bench

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-quick3/quick3"
	"github.com/ajroetker/go-quick3/quick3/contrib/workerpool"
)

// sigFigs is the precision of the recorded histograms.
const sigFigs = 3

// Config describes one benchmark run.
type Config struct {
	// N is the length of each generated input.
	N int
	// Trials is the number of independent inputs to sort.
	Trials int
	// Workers bounds the number of concurrent trials; <= 0 uses GOMAXPROCS.
	Workers int
	// Dist and M select the input distribution.
	Dist Distribution
	M    int
	// Seed makes the run reproducible; trial i uses Seed+i.
	Seed int64

	Pivot         quick3.PivotStrategy
	ExplicitStack bool
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.N < 0:
		return errors.Errorf("n must be >= 0, got %d", c.N)
	case c.Trials < 1:
		return errors.Errorf("trials must be >= 1, got %d", c.Trials)
	case c.Dist == Uniform && c.M < 1:
		return errors.Errorf("m must be >= 1 for the uniform distribution, got %d", c.M)
	}
	_, err := ParseDistribution(string(c.Dist))
	return err
}

// Summary condenses one histogram.
type Summary struct {
	Min  int64
	P50  int64
	P99  int64
	Max  int64
	Mean float64
}

func summarize(h *hdrhistogram.Histogram) Summary {
	if h.TotalCount() == 0 {
		return Summary{}
	}
	return Summary{
		Min:  h.Min(),
		P50:  h.ValueAtQuantile(50),
		P99:  h.ValueAtQuantile(99),
		Max:  h.Max(),
		Mean: h.Mean(),
	}
}

// Report aggregates the completed trials of a run.
type Report struct {
	Config    Config
	Host      string
	Completed int
	Elapsed   time.Duration

	Comparisons Summary
	Swaps       Summary
	Partitions  Summary
	MaxDepth    Summary
	// Duration is measured in nanoseconds per sort.
	Duration Summary
}

type trial struct {
	done     bool
	stats    quick3.Stats
	duration time.Duration
	err      error
}

// Run sorts cfg.Trials generated inputs on a worker pool and checks that
// every result is a sorted permutation of its input. If ctx is cancelled
// the trials that finished are still reported alongside the error.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid benchmark config")
	}

	pool := workerpool.New(cfg.Workers)
	defer pool.Close()
	glog.V(1).Infof("bench: %d trials of n=%d dist=%s on %d workers",
		cfg.Trials, cfg.N, cfg.Dist, pool.NumWorkers())

	opts := []quick3.Option{quick3.WithPivot(cfg.Pivot)}
	if cfg.ExplicitStack {
		opts = append(opts, quick3.WithExplicitStack())
	}

	trials := make([]trial, cfg.Trials)
	start := time.Now()
	runErr := pool.Run(ctx, cfg.Trials, func(i int) {
		trials[i] = runTrial(cfg, i, opts)
	})
	elapsed := time.Since(start)

	report, err := aggregate(cfg, trials)
	if err != nil {
		return nil, err
	}
	report.Elapsed = elapsed
	if runErr != nil {
		return report, errors.Wrapf(runErr, "benchmark interrupted after %d of %d trials",
			report.Completed, cfg.Trials)
	}
	return report, nil
}

func runTrial(cfg Config, i int, opts []quick3.Option) trial {
	r := rand.New(rand.NewSource(cfg.Seed + int64(i)))
	data, err := Generate(r, cfg.Dist, cfg.N, cfg.M)
	if err != nil {
		return trial{done: true, err: err}
	}
	want := slices.Clone(data)
	slices.Sort(want)

	t := trial{done: true}
	begin := time.Now()
	quick3.Sort(data, append(slices.Clip(opts), quick3.WithStats(&t.stats))...)
	t.duration = time.Since(begin)

	if !slices.Equal(want, data) {
		t.err = errors.Errorf("trial %d: result is not a sorted permutation of the input", i)
	}
	return t
}

func aggregate(cfg Config, trials []trial) (*Report, error) {
	maxWork := max(int64(cfg.N)*int64(cfg.N), 2)
	comparisons := hdrhistogram.New(1, maxWork, sigFigs)
	swaps := hdrhistogram.New(1, maxWork, sigFigs)
	partitions := hdrhistogram.New(1, max(int64(cfg.N), 2), sigFigs)
	depth := hdrhistogram.New(1, max(int64(cfg.N), 2), sigFigs)
	durations := hdrhistogram.New(1, int64(time.Hour), sigFigs)

	report := &Report{Config: cfg, Host: Host()}
	for _, t := range trials {
		if !t.done {
			continue
		}
		if t.err != nil {
			return nil, t.err
		}
		report.Completed++
		for _, rec := range []struct {
			h *hdrhistogram.Histogram
			v int64
		}{
			{comparisons, t.stats.Comparisons},
			{swaps, t.stats.Swaps},
			{partitions, t.stats.Partitions},
			{depth, int64(t.stats.MaxDepth)},
			{durations, t.duration.Nanoseconds()},
		} {
			if err := rec.h.RecordValue(rec.v); err != nil {
				return nil, errors.Wrapf(err, "recording %d", rec.v)
			}
		}
	}
	report.Comparisons = summarize(comparisons)
	report.Swaps = summarize(swaps)
	report.Partitions = summarize(partitions)
	report.MaxDepth = summarize(depth)
	report.Duration = summarize(durations)
	return report, nil
}

// WriteTo prints the report as a table.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	fmt.Fprintf(cw, "host:    %s\n", r.Host)
	fmt.Fprintf(cw, "input:   n=%s dist=%s m=%d pivot=%s explicit_stack=%t\n",
		humanize.Comma(int64(r.Config.N)), r.Config.Dist, r.Config.M, r.Config.Pivot, r.Config.ExplicitStack)
	fmt.Fprintf(cw, "trials:  %s of %s in %s\n",
		humanize.Comma(int64(r.Completed)), humanize.Comma(int64(r.Config.Trials)), r.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(cw, "\n%-12s %14s %14s %14s %14s %14s\n", "", "min", "p50", "p99", "max", "mean")
	for _, row := range []struct {
		name   string
		s      Summary
		format func(int64) string
	}{
		{"comparisons", r.Comparisons, humanize.Comma},
		{"swaps", r.Swaps, humanize.Comma},
		{"partitions", r.Partitions, humanize.Comma},
		{"max depth", r.MaxDepth, humanize.Comma},
		{"time/sort", r.Duration, func(ns int64) string { return time.Duration(ns).String() }},
	} {
		fmt.Fprintf(cw, "%-12s %14s %14s %14s %14s %14s\n", row.name,
			row.format(row.s.Min), row.format(row.s.P50), row.format(row.s.P99), row.format(row.s.Max),
			row.format(int64(row.s.Mean)))
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
