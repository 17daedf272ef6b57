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

	"github.com/pkg/errors"
)

// Partition3Way performs a single three-way pass over the window [lo, hi]
// of seq around pivot and returns the inclusive bounds of the equal zone:
//   - [lo, lt-1] < pivot
//   - [lt, gt] == pivot
//   - [gt+1, hi] > pivot
//
// If no element equals pivot the equal zone is empty and gt == lt-1.
func Partition3Way[T any](seq Sequence[T], compare CompareFunc[T], lo, hi int, pivot T, opts ...Option) (lt, gt int, err error) {
	if err := checkWindow(lo, hi, seq.Len()); err != nil {
		return 0, 0, err
	}
	s := newSorter(seq, compare, opts)
	lt, gt = s.pass(lo, hi, pivot)
	return lt, gt, nil
}

// Select rearranges data so that data[k] holds the element that would be
// there if data were sorted, with data[:k] <= data[k] <= data[k+1:].
func Select[T cmp.Ordered](data []T, k int, opts ...Option) error {
	return SelectFunc(data, k, cmp.Compare[T], opts...)
}

// SelectFunc is Select with a caller-supplied comparison. It only
// partitions the windows that contain k and stops as soon as k falls in an
// equal zone.
func SelectFunc[T any](data []T, k int, compare CompareFunc[T], opts ...Option) error {
	if k < 0 || k >= len(data) {
		return errors.Wrapf(ErrInvalidIndex, "k=%d len=%d", k, len(data))
	}
	s := newSorter(Slice[T](data), compare, opts)
	lo, hi := 0, len(data)-1
	for depth := 0; ; depth++ {
		if !s.enter(lo, hi, depth) {
			return nil
		}
		lt, gt := s.partition(lo, hi, depth)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return nil
		}
	}
}

// IsSorted reports whether data is in ascending order under cmp.Compare.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(Slice[T](data), cmp.Compare[T])
}

// IsSortedFunc reports whether no element of seq is greater than its
// successor.
func IsSortedFunc[T any](seq Sequence[T], compare CompareFunc[T]) bool {
	for i := 1; i < seq.Len(); i++ {
		if compare(seq.At(i-1), seq.At(i)) > 0 {
			return false
		}
	}
	return true
}
