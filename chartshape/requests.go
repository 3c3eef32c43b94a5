// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/ledgerlens/chartkit/band"
	"github.com/ledgerlens/chartkit/colorscale"
	"github.com/ledgerlens/chartkit/extract"
	"github.com/ledgerlens/chartkit/field"
	"github.com/ledgerlens/chartkit/series"
	"github.com/ledgerlens/chartkit/ticks"
)

type ticksRequest struct {
	MinValue   float64     `json:"minValue"`
	MaxValue   float64     `json:"maxValue"`
	Range      *[2]float64 `json:"range"`
	TicksCount int         `json:"ticksCount"`
	MinSpacing float64     `json:"minSpacing"`

	// Layout, if set, computes bar ticks over Width or Height
	// instead of Range.
	Layout string  `json:"layout"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ticksResponse struct {
	ticks.Set
	Pixels []float64 `json:"pixels,omitempty"`
}

func ticksCmd(e *env, dec *json.Decoder) (interface{}, error) {
	var req ticksRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	count := req.TicksCount
	if count <= 0 {
		count = e.cfg.Ticks.Count
	}
	if req.Layout != "" {
		layout, err := ticks.ParseLayout(req.Layout)
		if err != nil {
			return nil, err
		}
		s, err := ticks.BarTicks(ticks.BarParams{
			Width:      req.Width,
			Height:     req.Height,
			Layout:     layout,
			TicksCount: count,
			MinValue:   req.MinValue,
			MaxValue:   req.MaxValue,
		})
		if err != nil {
			return nil, err
		}
		return &ticksResponse{Set: s}, nil
	}

	rng := [2]float64{req.Height, 0}
	if req.Range != nil {
		rng = *req.Range
	}
	spacing := req.MinSpacing
	if spacing <= 0 {
		spacing = e.cfg.Ticks.MinSpacing
	}
	s := ticks.Compute(ticks.Params{
		MinValue:   req.MinValue,
		MaxValue:   req.MaxValue,
		Range:      rng,
		TicksCount: count,
		MinSpacing: spacing,
	})
	return &ticksResponse{Set: s, Pixels: s.Pixels(rng)}, nil
}

type fontSpec struct {
	FontSize   interface{} `json:"fontSize"`
	FontFamily string      `json:"fontFamily"`
	FontWeight string      `json:"fontWeight"`
}

func (f fontSpec) font(def band.Font) (band.Font, error) {
	out := def
	if f.FontSize != nil {
		size, err := band.ParseFontSize(f.FontSize)
		if err != nil {
			return band.Font{}, err
		}
		out.Size = size
	}
	if f.FontFamily != "" {
		out.Family = f.FontFamily
	}
	if f.FontWeight != "" {
		out.Weight = f.FontWeight
	}
	return out, nil
}

type bandsRequest struct {
	Domain  []string   `json:"domain"`
	Range   [2]float64 `json:"range"`
	Padding *float64   `json:"padding"`
	Gutter  *float64   `json:"gutter"`
	Font    fontSpec   `json:"font"`
}

type bandsResponse struct {
	band.Plan
	Step      float64 `json:"step"`
	Bandwidth float64 `json:"bandwidth"`
}

func bandsCmd(e *env, dec *json.Decoder) (interface{}, error) {
	var req bandsRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	o := band.Options{
		Domain:  req.Domain,
		Range:   req.Range,
		Padding: e.cfg.Band.Padding,
		Gutter:  e.cfg.Band.Gutter,
	}
	if req.Padding != nil {
		o.Padding = *req.Padding
	}
	if req.Gutter != nil {
		o.Gutter = *req.Gutter
	}
	var err error
	if o.Font, err = req.Font.font(e.cfg.Font); err != nil {
		return nil, err
	}
	s := band.Scale{Domain: o.Domain, Range: o.Range, Padding: o.Padding}
	return &bandsResponse{
		Plan:      band.VisibleLabels(o, e.measure),
		Step:      s.Step(),
		Bandwidth: s.Bandwidth(),
	}, nil
}

func (e *env) palette(name string, n int) (colorscale.Palette, error) {
	if name == "" {
		name = e.cfg.Palette
	}
	return colorscale.Named(name, n)
}

type pieRequest struct {
	Records    []field.Record `json:"records"`
	IDField    string         `json:"idField"`
	ValueField string         `json:"valueField"`
	LabelField string         `json:"labelField"`
	Sort       series.Sort    `json:"sort"`
	Palette    string         `json:"palette"`
}

func pieCmd(e *env, dec *json.Decoder) (interface{}, error) {
	var req pieRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	pal, err := e.palette(req.Palette, len(req.Records))
	if err != nil {
		return nil, err
	}
	if req.Sort.Order == "" {
		req.Sort.Order = series.Order(e.cfg.Sort.Order)
	}
	res, err := series.Pie(req.Records, series.PieOptions{
		ID:      field.ParseAccessor(req.IDField),
		Value:   field.ParseAccessor(req.ValueField),
		Label:   field.ParseAccessor(req.LabelField),
		Sort:    req.Sort,
		Palette: pal,
		Logger:  e.log,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

type barRequest struct {
	Buckets    map[string][]field.Record `json:"buckets"`
	IndexBy    string                    `json:"indexBy"`
	KeyField   string                    `json:"keyField"`
	KeyValue   string                    `json:"keyValue"`
	Order      string                    `json:"order"`
	Palette    string                    `json:"palette"`
	Layout     string                    `json:"layout"`
	Width      float64                   `json:"width"`
	Height     float64                   `json:"height"`
	TicksCount int                       `json:"ticksCount"`
}

type barResponse struct {
	series.BarResult
	IndexBy string    `json:"indexBy"`
	Ticks   ticks.Set `json:"ticks"`
}

func barCmd(e *env, dec *json.Decoder) (interface{}, error) {
	var req barRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	order := req.Order
	if order == "" {
		order = e.cfg.Sort.Order
	}
	keyField := field.ParseAccessor(req.KeyField).Or(field.Key("name"))
	pal, err := e.palette(req.Palette, countKeys(req.Buckets, keyField))
	if err != nil {
		return nil, err
	}
	if req.IndexBy == "" {
		req.IndexBy = "index"
	}
	res, err := series.StackedBar(series.SortedBuckets(req.Buckets), series.BarOptions{
		IndexBy:  req.IndexBy,
		KeyField: keyField,
		KeyValue: field.ParseAccessor(req.KeyValue),
		Order:    series.Order(order),
		Palette:  pal,
		Logger:   e.log,
	})
	if err != nil {
		return nil, err
	}

	layout := ticks.Vertical
	if req.Layout != "" {
		if layout, err = ticks.ParseLayout(req.Layout); err != nil {
			return nil, err
		}
	}
	count := req.TicksCount
	if count <= 0 {
		count = e.cfg.Ticks.Count
	}
	min, max := series.BarExtents(res.Data, res.Keys)
	ts, err := ticks.BarTicks(ticks.BarParams{
		Width:      req.Width,
		Height:     req.Height,
		Layout:     layout,
		TicksCount: count,
		MinValue:   min,
		MaxValue:   max,
	})
	if err != nil {
		return nil, err
	}
	return &barResponse{BarResult: res, IndexBy: req.IndexBy, Ticks: ts}, nil
}

// countKeys returns the number of distinct segment keys in buckets.
func countKeys(buckets map[string][]field.Record, key field.Accessor) int {
	seen := make(map[string]bool)
	for _, recs := range buckets {
		for _, r := range recs {
			if k := key.StringOf(r); k != "" {
				seen[k] = true
			}
		}
	}
	return len(seen)
}

// printBarTable prints one row per bar and one column per key.
func printBarTable(w io.Writer, r *barResponse) error {
	idx := make([]string, len(r.Data))
	for i, rec := range r.Data {
		idx[i] = fmt.Sprint(rec[r.IndexBy])
	}
	b := new(table.Builder).Add(r.IndexBy, idx)
	for _, k := range r.Keys {
		col := make([]float64, len(r.Data))
		for i, rec := range r.Data {
			col[i], _ = rec[k].(float64)
		}
		b.Add(k, col)
	}
	if err := table.Fprint(w, b.Done()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "ticks %v [%v, %v]\n\n", r.Ticks.TickValues, r.Ticks.MinValue, r.Ticks.MaxValue)
	return err
}

type linesRequest struct {
	Lines      []field.Record `json:"lines"`
	DataKey    string         `json:"dataKey"`
	AxisKey    string         `json:"axisKey"`
	Stacked    bool           `json:"stacked"`
	Height     float64        `json:"height"`
	TicksCount int            `json:"ticksCount"`
}

type linesResponse struct {
	Series []extract.Series `json:"series"`
	Ticks  ticks.Set        `json:"ticks"`
}

func linesCmd(e *env, dec *json.Decoder) (interface{}, error) {
	var req linesRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	if req.DataKey == "" {
		req.DataKey = "data"
	}
	if req.AxisKey == "" {
		req.AxisKey = "y"
	}
	count := req.TicksCount
	if count <= 0 {
		count = e.cfg.Ticks.Count
	}
	ss := extract.Lines(req.Lines, req.DataKey, req.AxisKey, e.log)
	min, max := lineBounds(ss, req.Stacked)
	return &linesResponse{
		Series: ss,
		Ticks:  ticks.LineTicks(req.Height, count, min, max),
	}, nil
}

// lineBounds returns the value range of ss. Stacked series start at a
// zero baseline. Empty input gives [0, 0].
func lineBounds(ss []extract.Series, stacked bool) (min, max float64) {
	if stacked {
		min, max = math.Min(0, extract.StackedMinOf(ss)), extract.StackedMaxOf(ss)
	} else {
		min, max = extract.Bounds(ss)
	}
	if !finite(min) || !finite(max) {
		return 0, 0
	}
	return min, max
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
