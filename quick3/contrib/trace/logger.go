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
	"github.com/golang/glog"

	"github.com/ajroetker/go-quick3/quick3"
)

// Logger logs every step through glog at verbosity Level. With Values set
// the whole sequence is logged too, which is only sensible for short inputs.
type Logger[T any] struct {
	Level  glog.Level
	Values bool
}

// OnPartitionStep implements quick3.Sink.
func (l Logger[T]) OnPartitionStep(v quick3.View[T], s quick3.Step) {
	if !glog.V(l.Level) {
		return
	}
	if l.Values {
		glog.Infof("%-7s depth=%d lo=%d lt=%d gt=%d hi=%d %v",
			s.Kind, s.Depth, s.Lo, s.Lt, s.Gt, s.Hi, v.Values())
		return
	}
	glog.Infof("%-7s depth=%d lo=%d lt=%d gt=%d hi=%d",
		s.Kind, s.Depth, s.Lo, s.Lt, s.Gt, s.Hi)
}
