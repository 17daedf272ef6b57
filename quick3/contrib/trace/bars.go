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
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-quick3/quick3"
)

const barCell = "█"

// Bars draws each snapshot as a block of vertical bars, one column per
// element. Columns outside the window are gray, the equal zone is red and
// the rest of the window uses the default color.
type Bars[T any] struct {
	w      io.Writer
	height func(T) float64
	rows   int

	outside *color.Color
	equal   *color.Color
	inside  *color.Color

	drawn int
	err   error
}

// NewBars returns a renderer writing to w. height maps an element to a bar
// height in (0, 1]; values outside that range are clamped. rows is the
// number of text lines per bar.
func NewBars[T any](w io.Writer, height func(T) float64, rows int, noColor bool) *Bars[T] {
	if rows < 1 {
		rows = 1
	}
	b := &Bars[T]{
		w:       w,
		height:  height,
		rows:    rows,
		outside: color.New(color.FgHiBlack),
		equal:   color.New(color.FgRed),
		inside:  color.New(color.Reset),
	}
	if noColor {
		for _, c := range []*color.Color{b.outside, b.equal, b.inside} {
			c.DisableColor()
		}
	}
	return b
}

// Identity is a height function for values already in (0, 1].
func Identity(v float64) float64 { return v }

// Normalize returns a height function that maps the range of values onto
// (0, 1], keeping the smallest value visible.
func Normalize(values []float64) func(float64) float64 {
	if len(values) == 0 {
		return Identity
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		return func(float64) float64 { return 1 }
	}
	return func(v float64) float64 {
		return 0.05 + 0.95*(v-lo)/(hi-lo)
	}
}

// OnPartitionStep implements quick3.Sink.
func (b *Bars[T]) OnPartitionStep(v quick3.View[T], s quick3.Step) {
	label := fmt.Sprintf("%-7s lo=%d lt=%d gt=%d hi=%d", s.Kind, s.Lo, s.Lt, s.Gt, s.Hi)
	b.draw(label, v.Len(), v.At, s.Lo, s.Lt, s.Gt, s.Hi)
}

// Frame draws the whole of values with no window or equal zone marked, as
// done before and after a sort.
func (b *Bars[T]) Frame(label string, values []T) {
	at := func(i int) T { return values[i] }
	b.draw(label, len(values), at, 0, 0, -1, len(values)-1)
}

// Drawn returns the number of snapshots drawn so far.
func (b *Bars[T]) Drawn() int { return b.drawn }

// Err returns the first write error. Drawing stops after an error.
func (b *Bars[T]) Err() error { return b.err }

func (b *Bars[T]) draw(label string, n int, at func(int) T, lo, lt, gt, hi int) {
	if b.err != nil {
		return
	}
	heights := make([]int, n)
	for k := range heights {
		heights[k] = b.cells(at(k))
	}

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteByte('\n')
	for level := b.rows; level >= 1; level-- {
		for k, h := range heights {
			if h < level {
				sb.WriteByte(' ')
				continue
			}
			switch {
			case k < lo || k > hi:
				sb.WriteString(b.outside.Sprint(barCell))
			case k >= lt && k <= gt:
				sb.WriteString(b.equal.Sprint(barCell))
			default:
				sb.WriteString(b.inside.Sprint(barCell))
			}
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(b.w, sb.String()); err != nil {
		b.err = errors.Wrap(err, "drawing bars")
		return
	}
	b.drawn++
}

// cells converts an element to a bar height in whole rows, at least one.
func (b *Bars[T]) cells(v T) int {
	h := b.height(v)
	if math.IsNaN(h) || h <= 0 {
		return 1
	}
	return max(1, min(b.rows, int(math.Ceil(h*float64(b.rows)))))
}
