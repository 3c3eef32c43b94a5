// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package band lays out categorical (band) axes and thins their
// labels so that neighbouring labels never overlap.
package band

import "math"

// A Scale maps an ordered categorical domain onto equal-width bands
// of a pixel range.
//
// Padding is the fraction of each step left empty between bands and
// at both ends of the range, in [0, 1).
type Scale struct {
	Domain  []string
	Range   [2]float64
	Padding float64
}

func (s Scale) width() float64 {
	return math.Abs(s.Range[1] - s.Range[0])
}

// Step returns the distance in pixels between the starts of adjacent
// bands.
func (s Scale) Step() float64 {
	return s.width() / math.Max(1, float64(len(s.Domain))+s.Padding)
}

// Bandwidth returns the width of a single band.
func (s Scale) Bandwidth() float64 {
	return s.Step() * (1 - s.Padding)
}

// Index returns the position of key in the domain, or -1.
func (s Scale) Index(key string) int {
	for i, k := range s.Domain {
		if k == key {
			return i
		}
	}
	return -1
}

// Position returns the pixel at which key's band starts. A reversed
// range lays the domain out from Range[1] towards Range[0] so that the
// first key still sits at Range[0].
func (s Scale) Position(key string) (float64, bool) {
	i := s.Index(key)
	if i < 0 {
		return 0, false
	}
	lo := math.Min(s.Range[0], s.Range[1])
	if s.Range[1] < s.Range[0] {
		i = len(s.Domain) - 1 - i
	}
	step := s.Step()
	return lo + step*s.Padding + step*float64(i), true
}

// Center returns the pixel at the middle of key's band.
func (s Scale) Center(key string) (float64, bool) {
	x, ok := s.Position(key)
	if !ok {
		return 0, false
	}
	return x + s.Bandwidth()/2, true
}
