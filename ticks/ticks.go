// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks computes tick and grid-line values for numeric chart
// axes.
//
// Compute pads the value range by one tick step on each side that is
// not pinned at zero and then re-derives the ticks from the padded
// range, so that the padding itself lands on a nice value. The
// outermost ticks are guaranteed to bound the data: bars and lines
// are never clipped at the top or bottom of the plot.
package ticks

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidLayout is returned for a bar layout other than Vertical
// or Horizontal.
var ErrInvalidLayout = errors.NewKind("invalid bar layout %q: want vertical or horizontal")

// A Set is the result of a tick computation.
//
// TickValues is strictly increasing with a constant step. MinValue
// and MaxValue are the bounds the axis must render; they enclose
// every tick and the original data range.
type Set struct {
	TickValues []float64 `json:"tickValues"`
	// GridValues is the same slice as TickValues.
	GridValues []float64 `json:"gridValues"`
	MinValue   float64   `json:"minValue"`
	MaxValue   float64   `json:"maxValue"`
}

// Params describes a tick computation.
type Params struct {
	MinValue, MaxValue float64

	// Range is the pixel range the values are drawn over. For a
	// vertical value axis it is usually reversed ([height, 0]).
	Range [2]float64

	// TicksCount is the desired number of ticks. It is advisory.
	TicksCount int

	// MinSpacing, if positive, is the minimum distance in pixels
	// between adjacent ticks. Coarser steps are chosen until it
	// is satisfied.
	MinSpacing float64
}

// Compute returns the tick set for p.
//
// The zero baseline is pinned: if p.MinValue is 0, the returned
// MinValue is 0 too. A degenerate range (MinValue == MaxValue) yields
// a single tick. NaN or infinite bounds yield no ticks.
//
// Compute is not idempotent: feeding its bounds back in may coarsen
// the step and widen the range again, most visibly with small
// TicksCount.
func Compute(p Params) Set {
	min, max := p.MinValue, p.MaxValue

	t0, ok := niceGrid(min, max, p.TicksCount, p.spacing(min, max))
	if !ok {
		return Set{MinValue: min, MaxValue: max}
	}

	// Pad by one step on each unpinned side.
	step := t0.step()
	max += step
	if min != 0 {
		min -= step
	}

	t1, ok := niceGrid(min, max, p.TicksCount, p.spacing(min, max))
	if !ok {
		return Set{MinValue: min, MaxValue: max}
	}

	// The generator only returns ticks inside the range, which may
	// still leave the outer tick at or inside the data. Push it
	// out by one more step.
	if t1.step() > 0 {
		if t1.last() <= p.MaxValue {
			t1.hi++
			max = math.Max(max, t1.last())
		}
		if p.MinValue != 0 && t1.first() >= p.MinValue {
			t1.lo--
			min = math.Min(min, t1.first())
		}
	}

	vals := t1.values()
	if n := len(vals); n > 0 {
		min = math.Min(min, vals[0])
		max = math.Max(max, vals[n-1])
	}
	return Set{
		TickValues: vals,
		GridValues: vals,
		MinValue:   min,
		MaxValue:   max,
	}
}

// spacing returns the tick predicate enforcing p.MinSpacing over the
// value range [min, max], or nil if there is no spacing constraint.
func (p Params) spacing(min, max float64) func([]float64) bool {
	width := math.Abs(p.Range[1] - p.Range[0])
	if p.MinSpacing <= 0 || width == 0 || min == max {
		return nil
	}
	s := scale.Linear{Min: min, Max: max}
	return func(ticks []float64) bool {
		if len(ticks) < 2 {
			return true
		}
		d := (s.Map(ticks[1]) - s.Map(ticks[0])) * width
		return d >= p.MinSpacing
	}
}

// Pixels maps the tick values onto the pixel range rng. If the set is
// degenerate every tick maps to rng[0].
func (s Set) Pixels(rng [2]float64) []float64 {
	out := make([]float64, len(s.TickValues))
	if s.MinValue == s.MaxValue {
		for i := range out {
			out[i] = rng[0]
		}
		return out
	}
	l := scale.Linear{Min: s.MinValue, Max: s.MaxValue}
	for i, v := range s.TickValues {
		out[i] = rng[0] + l.Map(v)*(rng[1]-rng[0])
	}
	return out
}

// Step returns the distance between adjacent ticks, or 0 if there are
// fewer than two.
func (s Set) Step() float64 {
	if len(s.TickValues) < 2 {
		return 0
	}
	return s.TickValues[1] - s.TickValues[0]
}
