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
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ajroetker/go-quick3/quick3"
)

// Metrics exports step counts and partitioned window sizes to Prometheus.
type Metrics[T any] struct {
	steps   *prometheus.CounterVec
	windows prometheus.Histogram
}

// NewMetrics creates the collectors under namespace and registers them
// with reg.
func NewMetrics[T any](reg prometheus.Registerer, namespace string) (*Metrics[T], error) {
	m := &Metrics[T]{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "partition",
			Name:      "steps_total",
			Help:      "Partition steps observed, by kind.",
		}, []string{"kind"}),
		windows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "partition",
			Name:      "window_size",
			Help:      "Number of elements in each partitioned window.",
			Buckets:   prometheus.ExponentialBuckets(2, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.steps, m.windows} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering partition metrics")
		}
	}
	return m, nil
}

// OnPartitionStep implements quick3.Sink.
func (m *Metrics[T]) OnPartitionStep(_ quick3.View[T], s quick3.Step) {
	m.steps.WithLabelValues(s.Kind.String()).Inc()
	if s.Kind == quick3.StepAfter {
		m.windows.Observe(float64(s.Hi - s.Lo + 1))
	}
}
