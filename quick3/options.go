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

package quick3

import (
	"fmt"

	"github.com/pkg/errors"
)

// PivotStrategy selects which element of a window becomes the pivot.
type PivotStrategy uint8

const (
	// PivotFirst uses the first element of the window. Sorted and
	// reverse-sorted inputs degrade to O(N) recursion depth.
	PivotFirst PivotStrategy = iota
	// PivotMedianOf3 moves the median of the first, middle and last
	// elements to the front of the window before partitioning.
	PivotMedianOf3
)

func (p PivotStrategy) String() string {
	switch p {
	case PivotFirst:
		return "first"
	case PivotMedianOf3:
		return "median3"
	}
	return fmt.Sprintf("PivotStrategy(%d)", uint8(p))
}

// ParsePivotStrategy maps "first" and "median3" to a PivotStrategy.
func ParsePivotStrategy(s string) (PivotStrategy, error) {
	switch s {
	case "", "first":
		return PivotFirst, nil
	case "median3", "median-of-3":
		return PivotMedianOf3, nil
	}
	return PivotFirst, errors.Errorf("unknown pivot strategy %q", s)
}

// Stats counts the work done by a sort. It is not safe for concurrent use;
// give each sort its own Stats.
type Stats struct {
	// Comparisons is the number of calls to the comparison function.
	Comparisons int64
	// Swaps is the number of element exchanges.
	Swaps int64
	// Partitions is the number of windows with at least two elements.
	Partitions int64
	// Calls is the number of windows visited, including empty and
	// single-element ones.
	Calls int64
	// MaxDepth is the deepest window visited; the whole sequence is depth 0.
	MaxDepth int
}

// Reset zeroes all counters.
func (s *Stats) Reset() { *s = Stats{} }

func (s *Stats) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d partitions=%d calls=%d max_depth=%d",
		s.Comparisons, s.Swaps, s.Partitions, s.Calls, s.MaxDepth)
}

func (s *Stats) enter(depth int) {
	s.Calls++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

type options struct {
	sink          any
	stats         *Stats
	pivot         PivotStrategy
	explicitStack bool
}

// Option configures a sort.
type Option func(*options)

// WithSink attaches a trace sink. The sink's element type must match the
// sequence being sorted.
func WithSink[T any](sink Sink[T]) Option {
	return func(o *options) { o.sink = sink }
}

// WithStats accumulates work counters into stats. Counters are added to,
// not reset.
func WithStats(stats *Stats) Option {
	return func(o *options) { o.stats = stats }
}

// WithPivot selects the pivot strategy. The default is PivotFirst.
func WithPivot(p PivotStrategy) Option {
	return func(o *options) { o.pivot = p }
}

// WithExplicitStack processes pending windows from a slice-backed stack
// instead of recursing. Steps, comparisons and swaps are identical to the
// recursive form.
func WithExplicitStack() Option {
	return func(o *options) { o.explicitStack = true }
}
