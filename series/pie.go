// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"sort"

	"github.com/ledgerlens/chartkit/colorscale"
	"github.com/ledgerlens/chartkit/field"
	"github.com/sirupsen/logrus"
)

// A Slice is one pie segment. Value is never 0.
type Slice struct {
	ID      string                 `json:"id"`
	Value   float64                `json:"value"`
	Label   string                 `json:"label"`
	Color   string                 `json:"color"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Sort selects the field and direction slices are ordered by.
//
// Field "value", "id" and "label" sort by the slice's own fields. Any
// other field is a dotted path looked up first in the slice details
// and then in the source record. Numbers compare numerically; anything
// else compares as text. An empty Field sorts by value.
type Sort struct {
	Field string `json:"field" yaml:"field"`
	Order Order  `json:"order" yaml:"order"`
}

// PieOptions configures Pie.
type PieOptions struct {
	// ID, Value and Label locate the slice fields in each record.
	// They default to "id", "value" and ID.
	ID, Value, Label field.Accessor

	Sort Sort

	// Details, if non-nil, computes the extra tooltip data of a
	// record's slice.
	Details func(field.Record) map[string]interface{}

	// Palette colours the slices. It defaults to
	// colorscale.Category10.
	Palette colorscale.Palette

	Logger logrus.FieldLogger
}

// A PieResult is the output of Pie. Palette[i] is the colour of
// Data[i].
type PieResult struct {
	Data    []Slice  `json:"data"`
	Palette []string `json:"palette"`
}

type pieEntry struct {
	Slice
	rec field.Record
}

// Pie turns records into sorted, coloured pie slices.
//
// Records whose value is exactly 0 produce no slice. Colours come from
// an ordinal scale over the remaining ids in input order, so an id
// keeps its colour wherever sorting places it.
func Pie(records []field.Record, o PieOptions) (PieResult, error) {
	order, err := ParseOrder(string(o.Sort.Order))
	if err != nil {
		return PieResult{}, err
	}
	idAcc := o.ID.Or(field.Key("id"))
	valAcc := o.Value.Or(field.Key("value"))
	labelAcc := o.Label.Or(idAcc)

	entries := make([]pieEntry, 0, len(records))
	ids := make([]string, 0, len(records))
	for _, rec := range records {
		v := valAcc.Number(rec, o.Logger)
		if v == 0 {
			continue
		}
		e := pieEntry{rec: rec}
		e.ID = idAcc.StringOf(rec)
		e.Value = v
		e.Label = labelAcc.StringOf(rec)
		if o.Details != nil {
			e.Details = o.Details(rec)
		}
		entries = append(entries, e)
		ids = append(ids, e.ID)
	}

	colors := colorscale.NewOrdinal(ids, o.Palette)
	for i := range entries {
		entries[i].Color = colors.Hex(entries[i].ID)
	}

	sortPie(entries, o.Sort.Field, order)

	res := PieResult{
		Data:    make([]Slice, len(entries)),
		Palette: make([]string, len(entries)),
	}
	for i, e := range entries {
		res.Data[i] = e.Slice
		res.Palette[i] = e.Color
	}
	return res, nil
}

func sortPie(entries []pieEntry, fieldName string, order Order) {
	var key func(e *pieEntry) interface{}
	switch fieldName {
	case "", "value":
		key = func(e *pieEntry) interface{} { return e.Value }
	case "id":
		key = func(e *pieEntry) interface{} { return e.ID }
	case "label":
		key = func(e *pieEntry) interface{} { return e.Label }
	default:
		acc := field.ParseAccessor(fieldName)
		key = func(e *pieEntry) interface{} {
			if v, ok := acc.Resolve(field.Record(e.Details)); ok {
				return v
			}
			v, _ := acc.Resolve(e.rec)
			return v
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return compare(key(&entries[i]), key(&entries[j]), order)
	})
}

// compare reports whether a sorts before b in order. Missing values
// sort last in either direction.
func compare(a, b interface{}, order Order) bool {
	if a == nil || b == nil {
		return a != nil
	}
	x, xok := field.Float(a)
	y, yok := field.Float(b)
	if xok && yok {
		less, _ := order.less(x, y)
		return less
	}
	s, t := fmt.Sprint(a), fmt.Sprint(b)
	if s == t {
		return false
	}
	if order == Asc {
		return s < t
	}
	return s > t
}
