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
	"cmp"
	"fmt"
)

// Sort sorts data in place in ascending order using cmp.Compare. For floats
// NaN sorts before every other value; -0 and +0 compare equal and are not
// normalized.
func Sort[T cmp.Ordered](data []T, opts ...Option) {
	SortSequence(Slice[T](data), cmp.Compare[T], opts...)
}

// SortFunc sorts data in place in ascending order as determined by compare.
func SortFunc[T any](data []T, compare CompareFunc[T], opts ...Option) {
	SortSequence(Slice[T](data), compare, opts...)
}

// SortSequence sorts seq in place in ascending order as determined by
// compare. The sort is not stable. An empty sequence emits no steps; a
// single element emits one StepTrivial step.
func SortSequence[T any](seq Sequence[T], compare CompareFunc[T], opts ...Option) {
	s := newSorter(seq, compare, opts)
	s.run(0, seq.Len()-1)
}

// Partition sorts the inclusive window [lo, hi] of seq in place, leaving
// the rest of the sequence untouched. It fails with ErrInvalidWindow unless
// 0 <= lo <= hi+1 <= seq.Len().
func Partition[T any](seq Sequence[T], compare CompareFunc[T], lo, hi int, opts ...Option) error {
	if err := checkWindow(lo, hi, seq.Len()); err != nil {
		return err
	}
	s := newSorter(seq, compare, opts)
	s.run(lo, hi)
	return nil
}

// sorter carries the per-call state of one sort. Nothing in it survives
// the call.
type sorter[T any] struct {
	seq           Sequence[T]
	compare       CompareFunc[T]
	sink          Sink[T]
	stats         *Stats
	pivot         PivotStrategy
	explicitStack bool
}

func newSorter[T any](seq Sequence[T], compare CompareFunc[T], opts []Option) *sorter[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	s := &sorter[T]{
		seq:           seq,
		compare:       compare,
		stats:         o.stats,
		pivot:         o.pivot,
		explicitStack: o.explicitStack,
	}
	if o.sink != nil {
		sink, ok := o.sink.(Sink[T])
		if !ok {
			panic(fmt.Sprintf("quick3: sink %T cannot observe a sequence of %T", o.sink, *new(T)))
		}
		s.sink = sink
	}
	return s
}

func (s *sorter[T]) run(lo, hi int) {
	if s.explicitStack {
		s.sortStack(lo, hi)
		return
	}
	s.sortRecursive(lo, hi, 0)
}

// sortRecursive sorts [lo, hi]. Both child windows exclude the non-empty
// equal zone, so each is strictly smaller than [lo, hi] and the recursion
// terminates.
func (s *sorter[T]) sortRecursive(lo, hi, depth int) {
	if !s.enter(lo, hi, depth) {
		return
	}
	lt, gt := s.partition(lo, hi, depth)
	s.sortRecursive(lo, lt-1, depth+1)
	s.sortRecursive(gt+1, hi, depth+1)
}

type window struct {
	lo, hi, depth int
}

// sortStack visits windows in the same order as sortRecursive: the high
// window is pushed first so the low window is popped first.
func (s *sorter[T]) sortStack(lo, hi int) {
	stack := []window{{lo, hi, 0}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !s.enter(w.lo, w.hi, w.depth) {
			continue
		}
		lt, gt := s.partition(w.lo, w.hi, w.depth)
		stack = append(stack,
			window{gt + 1, w.hi, w.depth + 1},
			window{w.lo, lt - 1, w.depth + 1},
		)
	}
}

// enter records a visit to [lo, hi] and reports whether it needs to be
// partitioned.
func (s *sorter[T]) enter(lo, hi, depth int) bool {
	if s.stats != nil {
		s.stats.enter(depth)
	}
	if lo == hi {
		s.emit(StepTrivial, lo, lo, lo, lo, depth)
	}
	return lo < hi
}

// partition runs one three-way pass over [lo, hi] and returns the
// inclusive equal zone [lt, gt].
func (s *sorter[T]) partition(lo, hi, depth int) (lt, gt int) {
	s.emit(StepBefore, lo, lo, hi, hi, depth)
	if s.pivot == PivotMedianOf3 {
		if m := s.medianOf3(lo, lo+(hi-lo)/2, hi); m != lo {
			s.swap(lo, m)
		}
	}
	if s.stats != nil {
		s.stats.Partitions++
	}
	lt, gt = s.pass(lo, hi, s.seq.At(lo))
	s.emit(StepAfter, lo, lt, gt, hi, depth)
	return lt, gt
}

// pass is the Dutch National Flag scan. Throughout the loop
// [lo, lt-1] < pivot, [lt, i-1] == pivot, [i, gt] is unexamined and
// [gt+1, hi] > pivot.
func (s *sorter[T]) pass(lo, hi int, pivot T) (lt, gt int) {
	lt, gt = lo, hi
	for i := lo; i <= gt; {
		switch c := s.cmp(s.seq.At(i), pivot); {
		case c > 0:
			// The element swapped in from gt is unexamined, so i stays.
			s.swap(i, gt)
			gt--
		case c < 0:
			s.swap(lt, i)
			lt++
			i++
		default:
			i++
		}
	}
	return lt, gt
}

func (s *sorter[T]) medianOf3(a, b, c int) int {
	x, y, z := s.seq.At(a), s.seq.At(b), s.seq.At(c)
	if s.cmp(x, y) < 0 {
		switch {
		case s.cmp(y, z) < 0:
			return b
		case s.cmp(x, z) < 0:
			return c
		}
		return a
	}
	switch {
	case s.cmp(z, y) < 0:
		return b
	case s.cmp(z, x) < 0:
		return c
	}
	return a
}

func (s *sorter[T]) cmp(a, b T) int {
	if s.stats != nil {
		s.stats.Comparisons++
	}
	return s.compare(a, b)
}

func (s *sorter[T]) swap(i, j int) {
	if s.stats != nil {
		s.stats.Swaps++
	}
	s.seq.Swap(i, j)
}

func (s *sorter[T]) emit(kind StepKind, lo, lt, gt, hi, depth int) {
	if s.sink == nil {
		return
	}
	s.sink.OnPartitionStep(View[T]{seq: s.seq}, Step{
		Kind:  kind,
		Lo:    lo,
		Lt:    lt,
		Gt:    gt,
		Hi:    hi,
		Depth: depth,
	})
}
