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

// Package bench generates test inputs for quick3 and measures the work done
// sorting them.
package bench

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// Distribution names a family of generated inputs.
type Distribution string

const (
	// Uniform draws each value from {1/m, 2/m, ..., 1}, so at most m
	// distinct keys appear.
	Uniform Distribution = "uniform"
	// Random draws each value from [0, 1).
	Random Distribution = "random"
	// Sorted is strictly increasing.
	Sorted Distribution = "sorted"
	// Reversed is strictly decreasing, the worst case for first-element
	// pivots.
	Reversed Distribution = "reversed"
	// Equal repeats a single value.
	Equal Distribution = "equal"
)

// Distributions lists every supported distribution.
func Distributions() []Distribution {
	return []Distribution{Uniform, Random, Sorted, Reversed, Equal}
}

// ParseDistribution validates a distribution name.
func ParseDistribution(s string) (Distribution, error) {
	for _, d := range Distributions() {
		if string(d) == s {
			return d, nil
		}
	}
	names := make([]string, 0, len(Distributions()))
	for _, d := range Distributions() {
		names = append(names, string(d))
	}
	return "", errors.Errorf("unknown distribution %q, want one of %s", s, strings.Join(names, ", "))
}

// Generate returns n values drawn from dist. m is the number of distinct
// keys for Uniform and is ignored otherwise.
func Generate(r *rand.Rand, dist Distribution, n, m int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Errorf("negative length %d", n)
	}
	data := make([]float64, n)
	switch dist {
	case Uniform:
		if m < 1 {
			return nil, errors.Errorf("uniform distribution needs m >= 1, got %d", m)
		}
		for i := range data {
			data[i] = float64(1+r.Intn(m)) / float64(m)
		}
	case Random:
		for i := range data {
			data[i] = r.Float64()
		}
	case Sorted:
		for i := range data {
			data[i] = float64(i+1) / float64(n)
		}
	case Reversed:
		for i := range data {
			data[i] = float64(n-i) / float64(n)
		}
	case Equal:
		for i := range data {
			data[i] = 1
		}
	default:
		return nil, errors.Errorf("unknown distribution %q", dist)
	}
	return data, nil
}

// DistinctCount returns the number of distinct values. A three-way sort
// finishes exactly one equal zone per distinct value.
func DistinctCount(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
