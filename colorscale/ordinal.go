// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorscale

import (
	"image/color"

	"github.com/cespare/xxhash/v2"
)

// An Ordinal maps ids onto a palette.
//
// Ids in the domain get palette colours in domain order, wrapping
// around when the domain is longer than the palette. Other ids are
// hashed onto the palette, so an Ordinal is a pure function of its
// domain and palette.
type Ordinal struct {
	palette Palette
	index   map[string]int
}

// NewOrdinal returns an ordinal scale over domain. Duplicate ids keep
// the position of their first occurrence. An empty palette falls back
// to Category10.
func NewOrdinal(domain []string, p Palette) *Ordinal {
	if len(p) == 0 {
		p = Category10
	}
	o := &Ordinal{palette: p, index: make(map[string]int, len(domain))}
	n := 0
	for _, id := range domain {
		if _, ok := o.index[id]; !ok {
			o.index[id] = n
			n++
		}
	}
	return o
}

// Color returns the colour of id.
func (o *Ordinal) Color(id string) color.RGBA {
	i, ok := o.index[id]
	if !ok {
		return o.palette[xxhash.Sum64String(id)%uint64(len(o.palette))]
	}
	return o.palette[i%len(o.palette)]
}

// Hex returns the colour of id as "#rrggbb".
func (o *Ordinal) Hex(id string) string {
	return Hex(o.Color(id))
}
