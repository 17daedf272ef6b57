// Package quick3 provides a three-way partitioning quicksort (Dijkstra's
// Dutch National Flag partition) over any indexable, swappable sequence.
//
// # Algorithm
//
// Each window [lo, hi] is partitioned around the value at lo in a single
// linear scan into three zones:
//   - [lo, lt-1] holds elements less than the pivot
//   - [lt, gt] holds elements equal to the pivot
//   - [gt+1, hi] holds elements greater than the pivot
//
// Only the less-than and greater-than zones are sorted further. Equal keys
// are never revisited, so the amount of work shrinks with the number of
// distinct values, down to a single linear pass when all elements are equal.
//
// The default pivot is the first element of the window. Sorted or
// reverse-sorted input therefore recurses O(N) deep and performs O(N²)
// comparisons. PivotMedianOf3 is available as an opt-in variant, and
// WithExplicitStack replaces recursion with a heap-allocated stack of
// pending windows when goroutine stack growth is a concern.
//
// # Example Usage
//
//	data := []float64{5, 3, 5, 1, 5, 2}
//	quick3.Sort(data) // [1 2 3 5 5 5]
//
//	var stats quick3.Stats
//	quick3.SortFunc(people, byAge, quick3.WithStats(&stats))
//
// # Tracing
//
// A Sink attached with WithSink observes every partition step: once before
// a window is partitioned, once after, and once for every single-element
// window. Sinks receive a read-only View of the sequence and must not keep
// it after returning. With no sink attached, tracing costs a nil check.
//
// # Concurrency
//
// Sorting is synchronous and single-threaded. A sequence must not be sorted
// by two goroutines at once; distinct sequences may be sorted concurrently.
package quick3
