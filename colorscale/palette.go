// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorscale assigns colours to series ids.
package colorscale

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette"
	"gopkg.in/src-d/go-errors.v1"
)

// ErrUnknownPalette is returned by Named.
var ErrUnknownPalette = errors.NewKind("unknown palette %q")

// A Palette is a fixed, ordered list of colours.
type Palette []color.RGBA

var (
	// Category10 is d3's schemeCategory10.
	Category10 = mustParse("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	// Tableau10 is d3's schemeTableau10.
	Tableau10 = mustParse("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")

	// Cost is the sequential gradient used for spend heat scales,
	// from light to dark.
	Cost = palette.RGBGradient{Colors: []color.RGBA{
		{0xde, 0xeb, 0xf7, 0xff},
		{0x9e, 0xca, 0xe1, 0xff},
		{0x42, 0x92, 0xc6, 0xff},
		{0x08, 0x45, 0x94, 0xff},
	}}
)

// mustParse splits a run of 6-digit hex colours.
func mustParse(s string) Palette {
	p := make(Palette, 0, len(s)/6)
	for i := 0; i+6 <= len(s); i += 6 {
		c, err := ParseHex(s[i : i+6])
		if err != nil {
			panic(err)
		}
		p = append(p, c)
	}
	return p
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	r, g, b, _ := color.RGBAModel.Convert(c).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Strings returns the palette as "#rrggbb" strings.
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = Hex(c)
	}
	return out
}

// Sample returns n colours evenly spaced along g, including both ends.
func Sample(g palette.Continuous, n int) Palette {
	p := make(Palette, n)
	for i := range p {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		p[i] = color.RGBAModel.Convert(g.Map(x)).(color.RGBA)
	}
	return p
}

// Named returns the palette called name: "category10", "tableau10" or
// "cost" sampled to n colours. n is only used by sampled palettes.
func Named(name string, n int) (Palette, error) {
	switch strings.ToLower(name) {
	case "", "category10":
		return Category10, nil
	case "tableau10":
		return Tableau10, nil
	case "cost":
		if n < 2 {
			n = 2
		}
		return Sample(Cost, n), nil
	}
	return nil, ErrUnknownPalette.New(name)
}
