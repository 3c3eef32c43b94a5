// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

// Layout is the orientation of a bar chart.
type Layout string

const (
	// Vertical bars grow upwards; the value axis runs over the
	// chart height.
	Vertical Layout = "vertical"
	// Horizontal bars grow rightwards; the value axis runs over
	// the chart width.
	Horizontal Layout = "horizontal"
)

// ParseLayout parses "vertical" or "horizontal".
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case Vertical, Horizontal:
		return l, nil
	}
	return "", ErrInvalidLayout.New(s)
}

// BarParams describes the value axis of a bar chart.
type BarParams struct {
	Width, Height      float64
	Layout             Layout
	TicksCount         int
	MinValue, MaxValue float64
}

// BarTicks computes the value-axis ticks of a bar chart. Vertical
// layouts draw values over [Height, 0], horizontal ones over
// [0, Width].
func BarTicks(p BarParams) (Set, error) {
	var rng [2]float64
	switch p.Layout {
	case Vertical:
		rng = [2]float64{p.Height, 0}
	case Horizontal:
		rng = [2]float64{0, p.Width}
	default:
		return Set{}, ErrInvalidLayout.New(string(p.Layout))
	}
	return Compute(Params{
		MinValue:   p.MinValue,
		MaxValue:   p.MaxValue,
		Range:      rng,
		TicksCount: p.TicksCount,
	}), nil
}

// LineTicks computes the value-axis ticks of a line chart of the
// given pixel height.
func LineTicks(height float64, count int, min, max float64) Set {
	return Compute(Params{
		MinValue:   min,
		MaxValue:   max,
		Range:      [2]float64{height, 0},
		TicksCount: count,
	})
}
