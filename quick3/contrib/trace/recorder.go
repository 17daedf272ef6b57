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

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/ajroetker/go-quick3/quick3"
)

// Snapshot is a copy of the sequence taken at one partition step.
type Snapshot[T any] struct {
	quick3.Step `yaml:",inline"`
	Values      []T `json:"values" yaml:"values"`
}

// Recorder copies the sequence at every step it observes.
type Recorder[T any] struct {
	snapshots []Snapshot[T]
}

// NewRecorder returns an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// OnPartitionStep implements quick3.Sink.
func (r *Recorder[T]) OnPartitionStep(v quick3.View[T], s quick3.Step) {
	r.snapshots = append(r.snapshots, Snapshot[T]{Step: s, Values: v.Values()})
}

// Snapshots returns the recorded snapshots in the order they were taken.
func (r *Recorder[T]) Snapshots() []Snapshot[T] {
	return r.snapshots
}

// Steps returns just the step boundaries of every snapshot.
func (r *Recorder[T]) Steps() []quick3.Step {
	steps := make([]quick3.Step, len(r.snapshots))
	for i, s := range r.snapshots {
		steps[i] = s.Step
	}
	return steps
}

// Reset discards all recorded snapshots.
func (r *Recorder[T]) Reset() {
	r.snapshots = r.snapshots[:0]
}

// WriteYAML writes the snapshots to w as a YAML sequence.
func (r *Recorder[T]) WriteYAML(w io.Writer) error {
	out, err := yaml.Marshal(r.snapshots)
	if err != nil {
		return errors.Wrap(err, "encoding trace as yaml")
	}
	_, err = w.Write(out)
	return errors.Wrap(err, "writing yaml trace")
}

// WriteJSON writes the snapshots to w as an indented JSON array.
func (r *Recorder[T]) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	snapshots := r.snapshots
	if snapshots == nil {
		snapshots = []Snapshot[T]{}
	}
	return errors.Wrap(enc.Encode(snapshots), "writing json trace")
}
