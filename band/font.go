// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package band

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/src-d/go-errors.v1"
)

// DefaultFontSize is used for fonts with no positive size.
const DefaultFontSize = 12

// ErrInvalidFontSize is returned by ParseFontSize.
var ErrInvalidFontSize = errors.NewKind("invalid font size %v")

// A Font describes how axis labels are rendered.
type Font struct {
	// Size is the font size in pixels.
	Size float64 `json:"fontSize" yaml:"size"`
	// Family is a CSS-style family list. Families naming a
	// monospace font select the Go Mono faces; anything else
	// selects Go Regular.
	Family string `json:"fontFamily" yaml:"family"`
	// Weight is "bold", a numeric weight, or empty for normal.
	Weight string `json:"fontWeight" yaml:"weight"`
}

func (f Font) size() float64 {
	if f.Size <= 0 || math.IsNaN(f.Size) || math.IsInf(f.Size, 0) {
		return DefaultFontSize
	}
	return f.Size
}

func (f Font) mono() bool {
	fam := strings.ToLower(f.Family)
	return strings.Contains(fam, "mono") || strings.Contains(fam, "courier") || strings.Contains(fam, "consolas")
}

func (f Font) bold() bool {
	w := strings.ToLower(strings.TrimSpace(f.Weight))
	switch w {
	case "bold", "bolder":
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 600
}

// key identifies the face f selects.
func (f Font) key() string {
	var b strings.Builder
	if f.mono() {
		b.WriteString("mono")
	} else {
		b.WriteString("sans")
	}
	if f.bold() {
		b.WriteString("-bold")
	}
	fmt.Fprintf(&b, "/%g", f.size())
	return b.String()
}

// ParseFontSize parses a CSS-style font size: a number, or a string
// such as "12", "12px" or "9pt". Points are converted to pixels at 96
// DPI.
func ParseFontSize(v interface{}) (float64, error) {
	var size float64
	switch v := v.(type) {
	case float64:
		size = v
	case float32:
		size = float64(v)
	case int:
		size = float64(v)
	case int64:
		size = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrInvalidFontSize.New(v)
		}
		size = f
	case string:
		s := strings.TrimSpace(strings.ToLower(v))
		scale := 1.0
		switch {
		case strings.HasSuffix(s, "px"):
			s = strings.TrimSuffix(s, "px")
		case strings.HasSuffix(s, "pt"):
			s = strings.TrimSuffix(s, "pt")
			scale = 96.0 / 72
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, ErrInvalidFontSize.New(v)
		}
		size = f * scale
	default:
		return 0, ErrInvalidFontSize.New(v)
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return 0, ErrInvalidFontSize.New(v)
	}
	return size, nil
}
