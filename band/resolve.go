// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package band

// A Plan is the subset of a domain whose labels are drawn.
type Plan struct {
	// Labels are the domain entries at indexes divisible by
	// Coefficient, in domain order.
	Labels []string `json:"labels"`
	// Coefficient is the stride, at least 1.
	Coefficient int `json:"coefficient"`
}

// Resolve thins domain to the smallest stride at which no two adjacent
// surviving labels overlap. widths[i] is the rendered width of
// domain[i] including any gutter, and step is the band step in pixels.
//
// Two survivors a and b collide if (widths[a]+widths[b])/2 is at least
// the distance between their bands. Only survivors adjacent at the
// current stride are compared. Resolve tries at most len(domain)
// strides; at the last one only the first label is left, which never
// collides.
func Resolve(domain []string, step float64, widths []float64) Plan {
	n := len(domain)
	if n <= 1 {
		return Plan{Labels: append([]string(nil), domain...), Coefficient: 1}
	}
	for c := 1; c < n; c++ {
		if !collides(c, step, widths) {
			return Plan{Labels: stride(domain, c), Coefficient: c}
		}
	}
	return Plan{Labels: domain[:1:1], Coefficient: n}
}

func collides(c int, step float64, widths []float64) bool {
	gap := float64(c) * step
	for i := c; i < len(widths); i += c {
		if (widths[i-c]+widths[i])/2 >= gap {
			return true
		}
	}
	return false
}

func stride(domain []string, c int) []string {
	out := make([]string, 0, (len(domain)+c-1)/c)
	for i := 0; i < len(domain); i += c {
		out = append(out, domain[i])
	}
	return out
}

// Options describes a band axis whose labels are to be thinned.
type Options struct {
	Domain  []string
	Range   [2]float64
	Padding float64
	Font    Font
	// Gutter is added to every measured label width.
	Gutter float64
}

// VisibleLabels measures every label of o.Domain once with m and
// resolves the labels that fit the band scale described by o.
func VisibleLabels(o Options, m Measurer) Plan {
	s := Scale{Domain: o.Domain, Range: o.Range, Padding: o.Padding}
	widths := make([]float64, len(o.Domain))
	for i, label := range o.Domain {
		widths[i] = m.Measure(label, o.Font) + o.Gutter
	}
	return Resolve(o.Domain, s.Step(), widths)
}
