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
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSizes = []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000}

func randomInts(r *rand.Rand, n, distinct int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(distinct) - distinct/2
	}
	return data
}

// recordSteps returns a sink that appends every step to steps.
func recordSteps[T any](steps *[]Step) Sink[T] {
	return SinkFunc[T](func(_ View[T], s Step) {
		*steps = append(*steps, s)
	})
}

func TestSortEmpty(t *testing.T) {
	var steps []Step
	var stats Stats
	var empty []float64
	Sort(empty, WithSink(recordSteps[float64](&steps)), WithStats(&stats))
	assert.Empty(t, empty)
	assert.Empty(t, steps)
	assert.Zero(t, stats.Partitions)
	assert.Zero(t, stats.Comparisons)
}

func TestSortSingle(t *testing.T) {
	var steps []Step
	var stats Stats
	data := []float64{42}
	Sort(data, WithSink(recordSteps[float64](&steps)), WithStats(&stats))
	require.Equal(t, []float64{42}, data)
	require.Equal(t, []Step{{Kind: StepTrivial}}, steps)
	assert.Zero(t, stats.Partitions)
	assert.Zero(t, stats.Comparisons)
	assert.Zero(t, stats.Swaps)
}

func TestSortSingleNoSink(t *testing.T) {
	data := []int{7}
	Sort(data)
	require.Equal(t, []int{7}, data)
}

func TestSortTable(t *testing.T) {
	tests := []struct {
		name string
		data []int
	}{
		{"sorted", []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"reverse", []int{8, 7, 6, 5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"all_same", []int{5, 5, 5, 5, 5, 5, 5, 5}},
		{"two_values", []int{2, 1, 2, 1, 2, 1, 1, 2}},
		{"negative", []int{-3, 7, 0, -11, 4, 0, -3}},
		{"pair_sorted", []int{1, 2}},
		{"pair_reverse", []int{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := slices.Clone(tt.data)
			slices.Sort(want)
			got := slices.Clone(tt.data)
			Sort(got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Sort(%v) mismatch (-want +got):\n%s", tt.data, diff)
			}
		})
	}
}

// TestSortMatchesStdlib covers sortedness and permutation invariance: the
// result must equal the stdlib sort of the same multiset.
func TestSortMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(12345))
	for _, n := range testSizes {
		for _, distinct := range []int{1, 2, 10, 1 << 20} {
			data := randomInts(r, n, distinct)
			want := slices.Clone(data)
			slices.Sort(want)

			Sort(data)
			require.True(t, IsSorted(data), "n=%d distinct=%d", n, distinct)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Fatalf("n=%d distinct=%d: mismatch (-want +got):\n%s", n, distinct, diff)
			}
		}
	}
}

func TestSortRandomFloat64(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range testSizes {
		data := make([]float64, n)
		for i := range data {
			data[i] = r.Float64() * 1000
		}
		Sort(data)
		if !IsSorted(data) {
			t.Errorf("Sort(random float64, n=%d) produced unsorted result", n)
		}
	}
}

func TestSortStrings(t *testing.T) {
	data := strings.Fields("pear apple fig apple kiwi banana fig")
	Sort(data)
	require.Equal(t, strings.Fields("apple apple banana fig fig kiwi pear"), data)
}

func TestSortIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	data := randomInts(r, 500, 50)
	Sort(data)
	once := slices.Clone(data)

	var stats Stats
	Sort(data, WithStats(&stats))
	require.Equal(t, once, data)
	assert.Positive(t, stats.Comparisons, "sorted input is still scanned")
}

func TestSortConcreteScenario(t *testing.T) {
	data := []int{5, 3, 5, 1, 5, 2}

	var afterFirst []int
	var steps []Step
	var stats Stats
	sink := SinkFunc[int](func(v View[int], s Step) {
		steps = append(steps, s)
		if s.Kind == StepAfter && s.Depth == 0 {
			afterFirst = v.Values()
		}
	})
	Sort(data, WithSink[int](sink), WithStats(&stats))

	require.Equal(t, []int{1, 2, 3, 5, 5, 5}, data)
	// The first pass groups all three 5s at the end and only [3 1 2]
	// is partitioned further.
	require.Equal(t, []int{3, 1, 2, 5, 5, 5}, afterFirst)
	want := []Step{
		{Kind: StepBefore, Lo: 0, Lt: 0, Gt: 5, Hi: 5, Depth: 0},
		{Kind: StepAfter, Lo: 0, Lt: 3, Gt: 5, Hi: 5, Depth: 0},
		{Kind: StepBefore, Lo: 0, Lt: 0, Gt: 2, Hi: 2, Depth: 1},
		{Kind: StepAfter, Lo: 0, Lt: 2, Gt: 2, Hi: 2, Depth: 1},
		{Kind: StepBefore, Lo: 0, Lt: 0, Gt: 1, Hi: 1, Depth: 2},
		{Kind: StepAfter, Lo: 0, Lt: 0, Gt: 0, Hi: 1, Depth: 2},
		{Kind: StepTrivial, Lo: 1, Lt: 1, Gt: 1, Hi: 1, Depth: 3},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
	for _, s := range steps[2:] {
		assert.LessOrEqual(t, s.Hi, 2, "equal zone [3, 5] must not be revisited: %+v", s)
	}
	assert.Equal(t, Stats{Comparisons: 11, Swaps: 6, Partitions: 3, Calls: 7, MaxDepth: 3}, stats)
}

func TestSortAllEqualIsLinear(t *testing.T) {
	for _, n := range []int{2, 8, 100, 1000} {
		data := make([]int, n)
		for i := range data {
			data[i] = 7
		}
		var steps []Step
		var stats Stats
		Sort(data, WithSink(recordSteps[int](&steps)), WithStats(&stats))

		assert.LessOrEqual(t, stats.Comparisons, int64(2*n), "n=%d", n)
		assert.Equal(t, int64(n), stats.Comparisons, "n=%d", n)
		assert.Zero(t, stats.Swaps, "n=%d", n)
		assert.Equal(t, int64(1), stats.Partitions, "n=%d", n)
		require.Equal(t, []Step{
			{Kind: StepBefore, Lo: 0, Lt: 0, Gt: n - 1, Hi: n - 1},
			{Kind: StepAfter, Lo: 0, Lt: 0, Gt: n - 1, Hi: n - 1},
		}, steps, "n=%d", n)
	}
}

// TestSortDistinctValuesBoundWork checks that every distinct value forms
// exactly one equal zone: one StepAfter or StepTrivial per distinct key.
func TestSortDistinctValuesBoundWork(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for _, distinct := range []int{1, 3, 17, 200} {
		data := randomInts(r, 2000, distinct)
		keys := make(map[int]struct{})
		for _, v := range data {
			keys[v] = struct{}{}
		}
		zones := 0
		sink := SinkFunc[int](func(_ View[int], s Step) {
			if s.Kind != StepBefore {
				zones++
			}
		})
		var stats Stats
		Sort(data, WithSink[int](sink), WithStats(&stats))
		assert.Equal(t, len(keys), zones, "distinct=%d", distinct)
		assert.LessOrEqual(t, stats.Partitions, int64(len(keys)), "distinct=%d", distinct)
	}
}

// TestSortTerminates checks the termination argument: every partitioned
// window has a non-empty equal zone inside it, so both child windows are
// strictly smaller than their parent.
func TestSortTerminates(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	data := randomInts(r, 3000, 100)
	var stats Stats
	sink := SinkFunc[int](func(_ View[int], s Step) {
		if s.Kind != StepAfter {
			return
		}
		require.LessOrEqual(t, s.Lo, s.Lt)
		require.LessOrEqual(t, s.Lt, s.Gt, "equal zone must be non-empty")
		require.LessOrEqual(t, s.Gt, s.Hi)
		size := s.Hi - s.Lo + 1
		require.Less(t, s.Lt-s.Lo, size)
		require.Less(t, s.Hi-s.Gt, size)
	})
	Sort(data, WithSink[int](sink), WithStats(&stats))
	require.True(t, IsSorted(data))
	// Every partition retires at least one element.
	assert.LessOrEqual(t, stats.Partitions, int64(len(data)))
	assert.LessOrEqual(t, stats.Calls, int64(2*len(data)+1))
}

func TestSortAdversarialDepth(t *testing.T) {
	for _, n := range []int{8, 100, 1000} {
		reverse := make([]int, n)
		increasing := make([]int, n)
		for i := range n {
			reverse[i] = n - i
			increasing[i] = i
		}

		var rs Stats
		Sort(reverse, WithStats(&rs))
		require.True(t, IsSorted(reverse))
		// Reverse-sorted input peels one element per window.
		assert.Equal(t, n-1, rs.MaxDepth, "reverse n=%d", n)
		assert.Equal(t, int64(n-1), rs.Partitions, "reverse n=%d", n)
		assert.Equal(t, int64(n*(n+1)/2-1), rs.Comparisons, "reverse n=%d", n)

		var is Stats
		Sort(increasing, WithStats(&is))
		require.True(t, IsSorted(increasing))
		assert.LessOrEqual(t, is.MaxDepth, n-1, "increasing n=%d", n)
		assert.Positive(t, is.MaxDepth, "increasing n=%d", n)
	}
}

func TestSortIncreasingStats(t *testing.T) {
	data := []int{0, 1, 2, 3, 4, 5, 6, 7}
	var stats Stats
	Sort(data, WithStats(&stats))
	assert.Equal(t, Stats{Comparisons: 24, Swaps: 19, Partitions: 5, Calls: 11, MaxDepth: 4}, stats)
}

func TestSortMedianOf3(t *testing.T) {
	n := 1000
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	var stats Stats
	Sort(data, WithPivot(PivotMedianOf3), WithStats(&stats))
	require.True(t, IsSorted(data))
	// The first split is balanced, so the worst case cannot occur.
	assert.Less(t, stats.MaxDepth, n/2+1)

	r := rand.New(rand.NewSource(5))
	for _, size := range testSizes {
		data := randomInts(r, size, 30)
		want := slices.Clone(data)
		slices.Sort(want)
		Sort(data, WithPivot(PivotMedianOf3))
		require.Equal(t, want, data, "n=%d", size)
	}

	var inc Stats
	increasing := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Sort(increasing, WithPivot(PivotMedianOf3), WithStats(&inc))
	assert.Equal(t, Stats{Comparisons: 27, Swaps: 14, Partitions: 4, Calls: 9, MaxDepth: 3}, inc)
}

func TestSortExplicitStackMatchesRecursion(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, pivot := range []PivotStrategy{PivotFirst, PivotMedianOf3} {
		for _, n := range testSizes {
			data := randomInts(r, n, 25)
			other := slices.Clone(data)

			var recSteps, stackSteps []Step
			var recStats, stackStats Stats
			Sort(data, WithPivot(pivot), WithStats(&recStats), WithSink(recordSteps[int](&recSteps)))
			Sort(other, WithPivot(pivot), WithStats(&stackStats), WithSink(recordSteps[int](&stackSteps)), WithExplicitStack())

			require.Equal(t, data, other, "pivot=%v n=%d", pivot, n)
			require.Equal(t, recStats, stackStats, "pivot=%v n=%d", pivot, n)
			if diff := cmp.Diff(recSteps, stackSteps); diff != "" {
				t.Fatalf("pivot=%v n=%d: steps differ (-recursive +stack):\n%s", pivot, n, diff)
			}
		}
	}
}

func TestSortExplicitStackDeepInput(t *testing.T) {
	n := 5000
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	var stats Stats
	Sort(data, WithExplicitStack(), WithStats(&stats))
	require.True(t, IsSorted(data))
	assert.Equal(t, n-1, stats.MaxDepth)
}

func TestSortFloatSpecialValues(t *testing.T) {
	nan := math.NaN()
	data := []float64{3, nan, math.Inf(1), -1, math.Inf(-1), nan, 0}
	Sort(data)
	assert.True(t, math.IsNaN(data[0]))
	assert.True(t, math.IsNaN(data[1]))
	assert.Equal(t, []float64{math.Inf(-1), -1, 0, 3, math.Inf(1)}, data[2:])

	// Signed zeros compare equal and are left in scan order.
	zeros := []float64{0, math.Copysign(0, -1), 1, math.Copysign(0, -1)}
	Sort(zeros)
	assert.Equal(t, 1.0, zeros[3])
	for _, z := range zeros[:3] {
		assert.Zero(t, z)
	}
}

type employee struct {
	name string
	age  int
}

func TestSortFunc(t *testing.T) {
	people := []employee{{"ada", 36}, {"bob", 25}, {"cy", 36}, {"dee", 19}}
	SortFunc(people, func(a, b employee) int { return a.age - b.age })
	ages := make([]int, len(people))
	for i, p := range people {
		ages[i] = p.age
	}
	require.Equal(t, []int{19, 25, 36, 36}, ages)
}

// columnar is a Sequence over two parallel slices that keeps rows aligned.
type columnar struct {
	keys   []int
	labels []string
}

func (c columnar) Len() int { return len(c.keys) }
func (c columnar) At(i int) int { return c.keys[i] }
func (c columnar) Swap(i, j int) {
	c.keys[i], c.keys[j] = c.keys[j], c.keys[i]
	c.labels[i], c.labels[j] = c.labels[j], c.labels[i]
}

func TestSortSequence(t *testing.T) {
	seq := columnar{
		keys:   []int{3, 1, 2, 1},
		labels: []string{"c", "a1", "b", "a2"},
	}
	SortSequence[int](seq, func(a, b int) int { return a - b })
	require.Equal(t, []int{1, 1, 2, 3}, seq.keys)
	require.ElementsMatch(t, []string{"a1", "a2"}, seq.labels[:2])
	require.Equal(t, []string{"b", "c"}, seq.labels[2:])
}

func TestSortSinkTypeMismatchPanics(t *testing.T) {
	sink := SinkFunc[string](func(View[string], Step) {})
	require.Panics(t, func() {
		Sort([]int{2, 1}, WithSink[string](sink))
	})
}

func TestViewIsSnapshot(t *testing.T) {
	data := []int{2, 3, 1}
	var copies [][]int
	sink := SinkFunc[int](func(v View[int], s Step) {
		require.Equal(t, len(data), v.Len())
		copies = append(copies, v.Values())
	})
	Sort(data, WithSink[int](sink))
	require.NotEmpty(t, copies)
	assert.Equal(t, []int{2, 3, 1}, copies[0], "values are copied, not aliased")
}

func TestStepKindString(t *testing.T) {
	assert.Equal(t, "before", StepBefore.String())
	assert.Equal(t, "after", StepAfter.String())
	assert.Equal(t, "trivial", StepTrivial.String())
	assert.Equal(t, "unknown", StepKind(9).String())
}

func TestParsePivotStrategy(t *testing.T) {
	for in, want := range map[string]PivotStrategy{
		"":        PivotFirst,
		"first":   PivotFirst,
		"median3": PivotMedianOf3,
	} {
		got, err := ParsePivotStrategy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEmpty(t, got.String())
	}
	_, err := ParsePivotStrategy("random")
	require.Error(t, err)
}
