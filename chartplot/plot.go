// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/ledgerlens/chartkit/extract"
	"github.com/ledgerlens/chartkit/ticks"
	"github.com/sirupsen/logrus"
)

type linePlot struct {
	series  []extract.Series
	stacked bool
	ticks   ticks.Set

	// xs is the X axis in first-seen order.
	xs []interface{}
}

func newLinePlot(in *input, stacked bool, height float64, count int, lg logrus.FieldLogger) *linePlot {
	lp := &linePlot{
		series:  extract.Lines(in.Lines, in.DataKey, in.AxisKey, lg),
		stacked: stacked,
	}
	lp.xs, _ = extract.StackedSums(lp.series)

	var min, max float64
	if stacked {
		min, max = math.Min(0, extract.StackedMinOf(lp.series)), extract.StackedMaxOf(lp.series)
	} else {
		min, max = extract.Bounds(lp.series)
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		min, max = 0, 0
	}
	lp.ticks = ticks.LineTicks(height, count, min, max)
	return lp
}

// table returns one row per point with columns "series", "x", "x
// index" and "y". Stacked plots carry the running total in "y".
func (lp *linePlot) table() *table.Table {
	index := make(map[string]int, len(lp.xs))
	for i, x := range lp.xs {
		index[fmt.Sprint(x)] = i
	}

	var names, xs []string
	var idxs []int
	var ys []float64
	base := make([]float64, len(lp.xs))
	for _, s := range lp.series {
		for _, p := range s.Data {
			x := fmt.Sprint(p.X)
			i := index[x]
			y := p.Y
			if lp.stacked {
				base[i] += y
				y = base[i]
			}
			names = append(names, s.ID)
			xs = append(xs, x)
			idxs = append(idxs, i)
			ys = append(ys, y)
		}
	}
	return new(table.Builder).
		Add("series", names).
		Add("x", xs).
		Add("x index", idxs).
		Add("y", ys).
		Done()
}

func (lp *linePlot) plot(tab *table.Table) *gg.Plot {
	plot := gg.NewPlot(tab)

	// Pin the value axis to the computed tick bounds.
	y := gg.NewLinearScaler()
	if lp.ticks.MinValue < lp.ticks.MaxValue {
		y.SetMin(lp.ticks.MinValue).SetMax(lp.ticks.MaxValue)
	} else {
		y.Include(lp.ticks.MinValue)
	}
	plot.SetScale("y", y)

	plot.Add(gg.LayerLines{
		X:     "x index",
		Y:     "y",
		Color: "series",
	})
	plot.Add(gg.LayerPoints{
		X:     "x index",
		Y:     "y",
		Color: "series",
	})
	return plot
}
