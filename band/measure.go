// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package band

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// A Measurer reports the rendered width in pixels of a label.
type Measurer interface {
	Measure(label string, f Font) float64
}

// FixedMeasurer estimates widths as the rune count times a fixed
// fraction of the font size. It needs no font data.
type FixedMeasurer float64

// Measure implements Measurer.
func (m FixedMeasurer) Measure(label string, f Font) float64 {
	return float64(utf8.RuneCountInString(label)) * float64(m) * f.size()
}

// FaceMeasurer measures labels with the Go fonts.
//
// Faces are created on first use and kept for the life of the
// measurer. Widths are cached by label and face. A FaceMeasurer is
// safe for concurrent use.
type FaceMeasurer struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[string]font.Face

	widths *ristretto.Cache
}

var ttfs = map[string][]byte{
	"sans":      goregular.TTF,
	"sans-bold": gobold.TTF,
	"mono":      gomono.TTF,
	"mono-bold": gomonobold.TTF,
}

// NewFaceMeasurer returns a measurer caching up to about maxWidths
// label widths.
func NewFaceMeasurer(maxWidths int64) (*FaceMeasurer, error) {
	if maxWidths < 1 {
		maxWidths = 1
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxWidths,
		MaxCost:     maxWidths,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating width cache: %w", err)
	}
	return &FaceMeasurer{
		fonts:  make(map[string]*opentype.Font),
		faces:  make(map[string]font.Face),
		widths: c,
	}, nil
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(label string, f Font) float64 {
	fk := f.key()
	key := fk + "\x00" + label
	if w, ok := m.widths.Get(key); ok {
		return w.(float64)
	}

	m.mu.Lock()
	face, err := m.face(f, fk)
	var w float64
	if err == nil {
		w = float64(font.MeasureString(face, label)) / 64
	}
	m.mu.Unlock()
	if err != nil {
		// Unreachable with the embedded fonts.
		return FixedMeasurer(0.6).Measure(label, f)
	}

	m.widths.Set(key, w, 1)
	return w
}

// face returns the face for f. m.mu must be held.
func (m *FaceMeasurer) face(f Font, fk string) (font.Face, error) {
	if face, ok := m.faces[fk]; ok {
		return face, nil
	}
	name := "sans"
	if f.mono() {
		name = "mono"
	}
	if f.bold() {
		name += "-bold"
	}
	otf, ok := m.fonts[name]
	if !ok {
		var err error
		otf, err = opentype.Parse(ttfs[name])
		if err != nil {
			return nil, fmt.Errorf("parsing %s font: %w", name, err)
		}
		m.fonts[name] = otf
	}
	// At 72 DPI one point is one pixel.
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    f.size(),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s face: %w", fk, err)
	}
	m.faces[fk] = face
	return face, nil
}

// Close releases the measurer's faces and cache.
func (m *FaceMeasurer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, face := range m.faces {
		face.Close()
		delete(m.faces, k)
	}
	m.widths.Close()
}
