// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract flattens chart series into plain numbers for range
// computation.
//
// Line and stacked-line charts hand their series to the tick
// calculator through these functions: MaxOf and MinOf give the extent
// of unstacked series, StackedMaxOf and StackedMinOf the extent of the
// same series drawn on top of each other.
package extract

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// A Point is one sample of a series. X is a category (string) or a
// timestamp (time.Time); any comparable value works.
type Point struct {
	X interface{} `json:"x"`
	Y float64     `json:"y"`
}

// A Series is one visual line. Data is ordered by X.
type Series struct {
	ID   string  `json:"id"`
	Data []Point `json:"data"`
}

// FlattenPoints concatenates the points of every series. It neither
// deduplicates nor sorts.
func FlattenPoints(series []Series) []Point {
	n := 0
	for _, s := range series {
		n += len(s.Data)
	}
	out := make([]Point, 0, n)
	for _, s := range series {
		out = append(out, s.Data...)
	}
	return out
}

// Ys returns the Y values of points.
func Ys(points []Point) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	return ys
}

// MaxOf returns the largest Y in points, or -Inf if points is empty.
func MaxOf(points []Point) float64 {
	if len(points) == 0 {
		return math.Inf(-1)
	}
	return slice.Max(Ys(points)).(float64)
}

// MinOf returns the smallest Y in points, or +Inf if points is empty.
func MinOf(points []Point) float64 {
	if len(points) == 0 {
		return math.Inf(1)
	}
	return slice.Min(Ys(points)).(float64)
}

// Bounds returns the smallest and largest Y across all series. Both
// are NaN if there are no points.
func Bounds(series []Series) (min, max float64) {
	return stats.Bounds(Ys(FlattenPoints(series)))
}

// StackedSums returns, for each distinct X in first-seen order, the
// sum of Y across series.
//
// The series are assumed to share the same ordered X axis; this is
// not checked.
func StackedSums(series []Series) (xs []interface{}, sums []float64) {
	groups := make(map[interface{}][]float64)
	for _, s := range series {
		for _, p := range s.Data {
			k := key(p.X)
			if _, ok := groups[k]; !ok {
				xs = append(xs, p.X)
			}
			groups[k] = append(groups[k], p.Y)
		}
	}
	sums = make([]float64, len(xs))
	for i, x := range xs {
		sums[i] = vec.Sum(groups[key(x)])
	}
	return xs, sums
}

// StackedMaxOf returns the largest per-X sum of the stacked series,
// or -Inf if there are no points.
func StackedMaxOf(series []Series) float64 {
	_, sums := StackedSums(series)
	if len(sums) == 0 {
		return math.Inf(-1)
	}
	return slice.Max(sums).(float64)
}

// StackedMinOf returns the smallest per-X sum of the stacked series,
// or +Inf if there are no points.
func StackedMinOf(series []Series) float64 {
	_, sums := StackedSums(series)
	if len(sums) == 0 {
		return math.Inf(1)
	}
	return slice.Min(sums).(float64)
}

// key maps x to a value that compares equal for equal instants.
// Values that cannot be map keys are keyed by their printed form.
func key(x interface{}) interface{} {
	if t, ok := x.(time.Time); ok {
		return t.UnixNano()
	}
	if x != nil && !reflect.TypeOf(x).Comparable() {
		return fmt.Sprintf("%#v", x)
	}
	return x
}
