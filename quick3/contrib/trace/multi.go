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

package trace

import "github.com/ajroetker/go-quick3/quick3"

// Multi forwards every step to each of its sinks in order.
type Multi[T any] []quick3.Sink[T]

// OnPartitionStep implements quick3.Sink.
func (m Multi[T]) OnPartitionStep(v quick3.View[T], s quick3.Step) {
	for _, sink := range m {
		sink.OnPartitionStep(v, s)
	}
}

// Only forwards the steps whose kind is listed and drops the rest.
func Only[T any](sink quick3.Sink[T], kinds ...quick3.StepKind) quick3.Sink[T] {
	var mask uint32
	for _, k := range kinds {
		mask |= 1 << k
	}
	return quick3.SinkFunc[T](func(v quick3.View[T], s quick3.Step) {
		if mask&(1<<s.Kind) != 0 {
			sink.OnPartitionStep(v, s)
		}
	})
}
