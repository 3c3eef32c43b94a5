// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/ledgerlens/chartkit/colorscale"
	"github.com/ledgerlens/chartkit/field"
	"github.com/sirupsen/logrus"
)

// DetailsSuffix is appended to a key to name the entry holding the
// source record of that key's segment.
const DetailsSuffix = "_DETAILS"

// A Bucket is the set of raw records sharing one index value, such
// as a date.
type Bucket struct {
	Index   string
	Records []field.Record
}

// SortedBuckets converts a map of index value to records into buckets
// ordered by index.
func SortedBuckets(m map[string][]field.Record) []Bucket {
	out := make([]Bucket, 0, len(m))
	for idx, recs := range m {
		out = append(out, Bucket{idx, recs})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// A BarRecord is one stacked bar: the index value under the index key,
// the value of every key present in the bucket and, for each such key
// k, the source record under k+DetailsSuffix.
type BarRecord map[string]interface{}

// BarOptions configures StackedBar.
type BarOptions struct {
	// IndexBy is the name of the index entry in each BarRecord.
	// It defaults to "index".
	IndexBy string

	// KeyField locates the segment key of a raw record and
	// KeyValue its value. They default to "name" and "value".
	KeyField, KeyValue field.Accessor

	// Order sorts the keys by their total over all buckets.
	Order Order

	// Palette colours the keys in Keys order. It defaults to
	// colorscale.Category10.
	Palette colorscale.Palette

	Logger logrus.FieldLogger
}

// A BarResult is the output of StackedBar. Palette[i] is the colour of
// Keys[i].
type BarResult struct {
	Data    []BarRecord `json:"data"`
	Keys    []string    `json:"keys"`
	Palette []string    `json:"palette"`
}

// StackedBar builds one BarRecord per bucket, in bucket order, and the
// list of keys to stack.
//
// Records repeating a key within one bucket are summed and the last
// one becomes the details. Keys whose total over all buckets is
// exactly 0 are left out of Keys. The rest are ordered by total, ties
// by name; the order does not depend on the order of buckets.
func StackedBar(buckets []Bucket, o BarOptions) (BarResult, error) {
	order, err := ParseOrder(string(o.Order))
	if err != nil {
		return BarResult{}, err
	}
	indexBy := o.IndexBy
	if indexBy == "" {
		indexBy = "index"
	}
	keyAcc := o.KeyField.Or(field.Key("name"))
	valAcc := o.KeyValue.Or(field.Key("value"))
	lg := field.Logger(o.Logger)

	data := make([]BarRecord, len(buckets))
	for i, b := range buckets {
		rec := BarRecord{indexBy: b.Index}
		for _, r := range b.Records {
			key := keyAcc.StringOf(r)
			if key == "" || key == indexBy {
				lg.WithFields(logrus.Fields{
					"index": b.Index,
					"key":   key,
				}).Warn("skipping record with unusable key")
				continue
			}
			v := valAcc.Number(r, lg)
			if prev, ok := rec[key].(float64); ok {
				v += prev
			}
			rec[key] = v
			rec[key+DetailsSuffix] = r
		}
		data[i] = rec
	}

	// Total in index order so that floating point sums do not
	// depend on bucket order.
	byIndex := make([]int, len(buckets))
	for i := range byIndex {
		byIndex[i] = i
	}
	sort.SliceStable(byIndex, func(i, j int) bool {
		return buckets[byIndex[i]].Index < buckets[byIndex[j]].Index
	})
	totals := make(map[string]float64)
	for _, i := range byIndex {
		for k, v := range data[i] {
			if v, ok := v.(float64); ok && k != indexBy {
				totals[k] += v
			}
		}
	}

	keys := make([]string, 0, len(totals))
	for k, t := range totals {
		if t != 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if less, ok := order.less(totals[keys[i]], totals[keys[j]]); ok {
			return less
		}
		return keys[i] < keys[j]
	})

	colors := colorscale.NewOrdinal(keys, o.Palette)
	pal := make([]string, len(keys))
	for i, k := range keys {
		pal[i] = colors.Hex(k)
	}
	return BarResult{Data: data, Keys: keys, Palette: pal}, nil
}

// BandValues holds the stacked extent of each bar: the sum of its
// positive segments and the sum of its negative segments.
type BandValues struct {
	PositiveBandValues []float64 `json:"positiveBandValues"`
	NegativeBandValues []float64 `json:"negativeBandValues"`
}

// ExtractBarChartValues sums, for every record in data, the values of
// keys by sign. Element i of each list belongs to data[i]; a bar with
// no segments of one sign has 0 there. Missing keys are skipped.
func ExtractBarChartValues(data []BarRecord, keys []string) BandValues {
	bv := BandValues{
		PositiveBandValues: make([]float64, len(data)),
		NegativeBandValues: make([]float64, len(data)),
	}
	var pos, neg []float64
	for i, rec := range data {
		pos, neg = pos[:0], neg[:0]
		for _, k := range keys {
			v, ok := rec[k]
			if !ok {
				continue
			}
			switch x := field.Number(v, k, nil); {
			case x > 0:
				pos = append(pos, x)
			case x < 0:
				neg = append(neg, x)
			}
		}
		bv.PositiveBandValues[i] = vec.Sum(pos)
		bv.NegativeBandValues[i] = vec.Sum(neg)
	}
	return bv
}

// BarExtents returns the lowest stacked bottom and the highest stacked
// top over data. Both are 0 for empty data.
func BarExtents(data []BarRecord, keys []string) (min, max float64) {
	bv := ExtractBarChartValues(data, keys)
	for _, s := range bv.NegativeBandValues {
		min = math.Min(min, s)
	}
	for _, s := range bv.PositiveBandValues {
		max = math.Max(max, s)
	}
	return min, max
}
