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

// Sequence is a finite, zero-indexed collection that can be read and
// rearranged in place. Implementations must provide O(1) At and Swap.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Swap(i, j int)
}

// CompareFunc is a three-way comparison: negative when a < b, zero when
// a == b and positive when a > b. It must define a strict weak order over
// the values being sorted; an inconsistent comparison is not detected and
// may leave the sequence unsorted.
type CompareFunc[T any] func(a, b T) int

// Slice adapts a Go slice to Sequence without copying it.
type Slice[T any] []T

func (s Slice[T]) Len() int      { return len(s) }
func (s Slice[T]) At(i int) T    { return s[i] }
func (s Slice[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// View is a read-only window onto a sequence that is being sorted. It is
// only valid for the duration of the Sink call that received it.
type View[T any] struct {
	seq Sequence[T]
}

// Len returns the length of the whole sequence.
func (v View[T]) Len() int {
	if v.seq == nil {
		return 0
	}
	return v.seq.Len()
}

// At returns the element currently stored at index i.
func (v View[T]) At(i int) T { return v.seq.At(i) }

// Values returns a copy of the current contents of the sequence.
func (v View[T]) Values() []T {
	return v.AppendTo(make([]T, 0, v.Len()))
}

// AppendTo appends the current contents of the sequence to dst.
func (v View[T]) AppendTo(dst []T) []T {
	for i := range v.Len() {
		dst = append(dst, v.seq.At(i))
	}
	return dst
}

// StepKind identifies when a Step was emitted.
type StepKind uint8

const (
	// StepBefore is emitted for a window before it is partitioned. Lt and
	// Gt equal Lo and Hi.
	StepBefore StepKind = iota
	// StepAfter is emitted once a window is partitioned; [Lt, Gt] is the
	// equal zone.
	StepAfter
	// StepTrivial is emitted for a single-element window, with all four
	// boundaries equal.
	StepTrivial
)

var stepKindNames = [...]string{
	StepBefore:  "before",
	StepAfter:   "after",
	StepTrivial: "trivial",
}

func (k StepKind) String() string {
	if int(k) < len(stepKindNames) {
		return stepKindNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k StepKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// MarshalYAML lets yaml.v2 encode the kind by name.
func (k StepKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

// Step describes the boundaries of one partition step. Depth is the
// recursion depth of the window, zero for the whole sequence.
type Step struct {
	Kind  StepKind `json:"kind" yaml:"kind"`
	Lo    int      `json:"lo" yaml:"lo"`
	Lt    int      `json:"lt" yaml:"lt"`
	Gt    int      `json:"gt" yaml:"gt"`
	Hi    int      `json:"hi" yaml:"hi"`
	Depth int      `json:"depth" yaml:"depth"`
}

// Sink observes partition progress. OnPartitionStep runs synchronously on
// the sorting goroutine; the sequence keeps changing after it returns, so
// the view must not be retained.
type Sink[T any] interface {
	OnPartitionStep(view View[T], step Step)
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc[T any] func(view View[T], step Step)

func (f SinkFunc[T]) OnPartitionStep(view View[T], step Step) { f(view, step) }
