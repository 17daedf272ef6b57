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

import "github.com/pkg/errors"

var (
	// ErrInvalidWindow is returned by Partition when lo and hi do not
	// describe a window of the sequence.
	ErrInvalidWindow = errors.New("invalid partition window")

	// ErrInvalidIndex is returned by Select when k is out of range.
	ErrInvalidIndex = errors.New("index out of range")
)

// checkWindow accepts 0 <= lo <= hi+1 <= n. An empty window may sit just
// past either end of the sequence.
func checkWindow(lo, hi, n int) error {
	if lo < 0 || hi >= n || lo > hi+1 {
		return errors.Wrapf(ErrInvalidWindow, "lo=%d hi=%d len=%d", lo, hi, n)
	}
	return nil
}
