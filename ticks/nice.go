// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Tick levels enumerate the "nice" steps 1, 2, 5, 10, 20, 50, ... in
// increasing order: level l has step mults[l mod 3] × 10^(l div 3).
var mults = [3]float64{1, 2, 5}

// eps absorbs floating point error when deciding whether a multiple
// of the step falls inside a range.
const eps = 1e-9

// grid is the sequence of multiples i×step(level) for lo ≤ i ≤ hi.
//
// A degenerate grid (from an empty value range) has a single fixed
// value and no step.
type grid struct {
	level  int
	lo, hi int64

	degenerate bool
	single     float64
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// tickValue returns the i'th multiple of the step at level. Negative
// exponents divide by a power of ten rather than multiplying by its
// inexact reciprocal.
func tickValue(level int, i int64) float64 {
	e := floorDiv(level, 3)
	m := mults[level-3*e]
	if e >= 0 {
		return float64(i) * m * math.Pow10(e)
	}
	return float64(i) * m / math.Pow10(-e)
}

func stepAt(level int) float64 {
	return tickValue(level, 1)
}

// bounds returns the indexes of the first and last multiples of
// step(level) in [min, max].
func bounds(level int, min, max float64) (lo, hi int64) {
	e := floorDiv(level, 3)
	m := mults[level-3*e]
	var a, b float64
	if e >= 0 {
		s := m * math.Pow10(e)
		a, b = min/s, max/s
	} else {
		p := math.Pow10(-e)
		a, b = min*p/m, max*p/m
	}
	return int64(math.Ceil(a - eps)), int64(math.Floor(b + eps))
}

func (g grid) len() int {
	if g.degenerate {
		return 1
	}
	if g.hi < g.lo {
		return 0
	}
	return int(g.hi-g.lo) + 1
}

func (g grid) step() float64 {
	if g.degenerate || g.len() < 2 {
		return 0
	}
	return stepAt(g.level)
}

func (g grid) first() float64 {
	if g.degenerate {
		return g.single
	}
	return tickValue(g.level, g.lo)
}

func (g grid) last() float64 {
	if g.degenerate {
		return g.single
	}
	return tickValue(g.level, g.hi)
}

func (g grid) values() []float64 {
	if g.degenerate {
		return []float64{g.single}
	}
	vals := make([]float64, 0, g.len())
	for i := g.lo; i <= g.hi; i++ {
		vals = append(vals, tickValue(g.level, i))
	}
	return vals
}

// Nice returns about count evenly spaced "nice" values covering the
// inside of [min, max]. The step is the one of 1, 2 or 5 × 10^k
// closest to (max-min)/count in log space, so count is only a hint.
//
// If min == max, Nice returns the single value min. If either bound
// is NaN or infinite, it returns nil.
func Nice(min, max float64, count int) []float64 {
	g, ok := niceGrid(min, max, count, nil)
	if !ok {
		return nil
	}
	return g.values()
}

// A ticker enumerates the grids covering [min, max] by level.
type ticker struct {
	min, max float64
}

func (t ticker) grid(level int) grid {
	lo, hi := bounds(level, t.min, t.max)
	return grid{level: level, lo: lo, hi: hi}
}

// CountTicks implements scale.Ticker.
func (t ticker) CountTicks(level int) int {
	n := t.grid(level).len()
	if n < 0 || n > math.MaxInt32 {
		return math.MaxInt32
	}
	return n
}

// TicksAtLevel implements scale.Ticker.
func (t ticker) TicksAtLevel(level int) interface{} {
	return t.grid(level).values()
}

// closeEnough reports whether level is coarse enough for the target
// step: the geometric mean of its step and the next coarser step must
// exceed target. The mean is taken in log space.
func closeEnough(level int, target float64) bool {
	a, b := math.Log10(stepAt(level)), math.Log10(stepAt(level+1))
	return (a+b)/2 > math.Log10(target)
}

// niceGrid computes the grid for Nice. If pred is non-nil, the grid
// is additionally coarsened until pred accepts its ticks.
func niceGrid(min, max float64, count int, pred func(ticks []float64) bool) (grid, bool) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return grid{}, false
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return grid{degenerate: true, single: min}, true
	}
	if count < 1 {
		count = 1
	}

	target := (max - min) / float64(count)
	if math.IsInf(target, 0) {
		return grid{}, false
	}
	guess := 3 * int(math.Floor(math.Log10(target)))

	t := ticker{min, max}
	o := scale.TickOptions{
		Max: 200*count + 2,
		// Log10 may be off by one near powers of ten, so start
		// a little more than a decade below the guess.
		MinLevel: guess - 4,
		MaxLevel: guess + 60,
	}
	// FindLevel gives the finest level that does not produce too
	// many ticks. Coarsen from there to the nice step.
	level, ok := o.FindLevel(t, guess)
	if !ok {
		return grid{}, false
	}
	for ; level <= o.MaxLevel; level++ {
		if closeEnough(level, target) && (pred == nil || pred(t.grid(level).values())) {
			break
		}
	}
	if level > o.MaxLevel {
		if pred != nil {
			// The extra constraint is unsatisfiable; fall back
			// to the plain step.
			return niceGrid(min, max, count, nil)
		}
		return grid{}, false
	}
	// A coarse step may miss [min, max] entirely. Refine until
	// there is at least one tick.
	for level > o.MinLevel && t.CountTicks(level) == 0 {
		level--
	}
	return t.grid(level), true
}
