// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-moremath/scale"
)

func TestNice(t *testing.T) {
	for _, test := range []struct {
		min, max float64
		count    int
		want     []float64
	}{
		{0, 100, 6, []float64{0, 20, 40, 60, 80, 100}},
		{100, 0, 6, []float64{0, 20, 40, 60, 80, 100}},
		{0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{-1, 1, 4, []float64{-1, -0.5, 0, 0.5, 1}},
		{10, 95, 5, []float64{20, 40, 60, 80}},
		{5, 5, 4, []float64{5}},
		{0, 0, 6, []float64{0}},
		{0, 10, 0, []float64{0, 10}},
	} {
		got := Nice(test.min, test.max, test.count)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Nice(%v, %v, %v) = %v; wanted %v", test.min, test.max, test.count, got, test.want)
		}
	}

	if got := Nice(math.NaN(), 1, 4); got != nil {
		t.Errorf("Nice(NaN, 1, 4) = %v; wanted nil", got)
	}
	if got := Nice(0, math.Inf(1), 4); got != nil {
		t.Errorf("Nice(0, +Inf, 4) = %v; wanted nil", got)
	}
}

func TestCompute(t *testing.T) {
	for _, test := range []struct {
		min, max float64
		count    int
		want     Set
	}{
		// Zero baseline stays pinned; the top is padded by a step.
		{0, 100, 6, set(0, 120, 0, 20, 40, 60, 80, 100, 120)},
		// The padded pass lands on a coarser step whose last
		// tick sits on the data max, so one more tick is added.
		{0, 100, 2, set(0, 200, 0, 100, 200)},
		// Both sides padded.
		{10, 95, 5, set(-10, 115, 0, 20, 40, 60, 80, 100)},
		// Both sides corrected.
		{50, 100, 2, set(0, 150, 0, 50, 100, 150)},
		{-50, -10, 4, set(-60, 0, -60, -40, -20, 0)},
		// Degenerate ranges are valid inputs.
		{0, 0, 6, set(0, 0, 0)},
		{5, 5, 6, set(5, 5, 5)},
	} {
		got := Compute(Params{MinValue: test.min, MaxValue: test.max, Range: [2]float64{300, 0}, TicksCount: test.count})
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Compute(%v, %v, %v) = %+v; wanted %+v", test.min, test.max, test.count, got, test.want)
		}
	}
}

func set(min, max float64, ticks ...float64) Set {
	return Set{TickValues: ticks, GridValues: ticks, MinValue: min, MaxValue: max}
}

func TestComputeInvariants(t *testing.T) {
	ranges := [][2]float64{
		{0, 1}, {0, 0.37}, {-3.2, 7.9}, {12.5, 12.75}, {-1000, -999},
		{0, 1234567}, {-0.004, 0.002}, {3, 3}, {0, 1e-6}, {-7, 0},
		{1e6, 1.0001e6}, {0.1, 0.3},
	}
	for _, r := range ranges {
		for count := 1; count <= 12; count++ {
			p := Params{MinValue: r[0], MaxValue: r[1], Range: [2]float64{0, 500}, TicksCount: count}
			s := Compute(p)
			checkSet(t, p, s)

			// Recomputing from the expanded bounds must never
			// shrink them.
			p2 := p
			p2.MinValue, p2.MaxValue = s.MinValue, s.MaxValue
			s2 := Compute(p2)
			checkSet(t, p2, s2)
		}
	}
}

func checkSet(t *testing.T, p Params, s Set) {
	t.Helper()
	if s.MinValue > p.MinValue || s.MaxValue < p.MaxValue {
		t.Errorf("%+v: bounds [%v, %v] do not cover the data", p, s.MinValue, s.MaxValue)
	}
	n := len(s.TickValues)
	if n == 0 {
		t.Errorf("%+v: no ticks", p)
		return
	}
	if s.TickValues[0] < s.MinValue || s.TickValues[n-1] > s.MaxValue {
		t.Errorf("%+v: ticks %v outside [%v, %v]", p, s.TickValues, s.MinValue, s.MaxValue)
	}
	if &s.GridValues[0] != &s.TickValues[0] {
		t.Errorf("%+v: grid values should share the tick slice", p)
	}
	for i := 1; i < n; i++ {
		if s.TickValues[i] <= s.TickValues[i-1] {
			t.Errorf("%+v: ticks %v not strictly increasing", p, s.TickValues)
			return
		}
		d, d0 := s.TickValues[i]-s.TickValues[i-1], s.TickValues[1]-s.TickValues[0]
		if math.Abs(d-d0) > 1e-9*d0 {
			t.Errorf("%+v: ticks %v not evenly spaced", p, s.TickValues)
			return
		}
	}
}

func TestRecomputeKeepsTicks(t *testing.T) {
	first := Compute(Params{MinValue: 0, MaxValue: 100, TicksCount: 6})
	second := Compute(Params{MinValue: first.MinValue, MaxValue: first.MaxValue, TicksCount: 6})
	have := map[float64]bool{}
	for _, v := range second.TickValues {
		have[v] = true
	}
	for _, v := range first.TickValues {
		if !have[v] {
			t.Errorf("recomputed ticks %v lost %v from %v", second.TickValues, v, first.TickValues)
		}
	}
}

func TestRecomputeGrows(t *testing.T) {
	// With few ticks the padding step can coarsen on every pass, so
	// repeated recomputation keeps widening the range.
	want := []Set{
		set(0, 200, 0, 100, 200),
		set(0, 400, 0, 200, 400),
		set(0, 600, 0, 200, 400, 600),
	}
	p := Params{MinValue: 0, MaxValue: 100, TicksCount: 2}
	for i, w := range want {
		s := Compute(p)
		if !reflect.DeepEqual(s, w) {
			t.Fatalf("pass %d: Compute(%+v) = %+v; wanted %+v", i, p, s, w)
		}
		p.MinValue, p.MaxValue = s.MinValue, s.MaxValue
	}
}

func TestNiceExtremes(t *testing.T) {
	for _, test := range []struct {
		min, max float64
		count    int
		want     int
	}{
		{0, 1e300, 6, 6},
		{1e-300, 2e-300, 6, 6},
		{-1e200, 1e200, 4, 5},
	} {
		got := Nice(test.min, test.max, test.count)
		if len(got) != test.want {
			t.Errorf("Nice(%v, %v, %v) = %v; wanted %d ticks", test.min, test.max, test.count, got, test.want)
			continue
		}
		tol := 1e-9 * (test.max - test.min)
		if got[0] < test.min-tol || got[len(got)-1] > test.max+tol {
			t.Errorf("Nice(%v, %v, %v) = %v; ticks outside the range", test.min, test.max, test.count, got)
		}
	}
}

func TestTickerLevels(t *testing.T) {
	var tk scale.Ticker = ticker{0, 100}
	if n := tk.CountTicks(3); n != 11 {
		t.Errorf("CountTicks(step 10) = %d; wanted 11", n)
	}
	want := []float64{0, 50, 100}
	if got := tk.TicksAtLevel(5); !reflect.DeepEqual(got, want) {
		t.Errorf("TicksAtLevel(step 50) = %v; wanted %v", got, want)
	}
}

func TestMinSpacing(t *testing.T) {
	p := Params{MinValue: 0, MaxValue: 100, Range: [2]float64{0, 100}, TicksCount: 10, MinSpacing: 30}
	s := Compute(p)
	if want := set(0, 150, 0, 50, 100, 150); !reflect.DeepEqual(s, want) {
		t.Fatalf("Compute(%+v) = %+v; wanted %+v", p, s, want)
	}
	px := s.Pixels(p.Range)
	for i := 1; i < len(px); i++ {
		if px[i]-px[i-1] < p.MinSpacing {
			t.Errorf("ticks %v at pixels %v are closer than %v", s.TickValues, px, p.MinSpacing)
		}
	}
}

func TestPixels(t *testing.T) {
	s := set(0, 100, 0, 50, 100)
	if got, want := s.Pixels([2]float64{100, 0}), []float64{100, 50, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("Pixels reversed = %v; wanted %v", got, want)
	}
	d := set(0, 0, 0)
	if got, want := d.Pixels([2]float64{100, 0}), []float64{100}; !reflect.DeepEqual(got, want) {
		t.Errorf("Pixels degenerate = %v; wanted %v", got, want)
	}
	if s.Step() != 50 || d.Step() != 0 {
		t.Errorf("Step = %v, %v; wanted 50, 0", s.Step(), d.Step())
	}
}

func TestBarTicks(t *testing.T) {
	s, err := BarTicks(BarParams{Height: 100, Layout: Vertical, TicksCount: 6})
	if err != nil {
		t.Fatal(err)
	}
	if want := set(0, 0, 0); !reflect.DeepEqual(s, want) {
		t.Errorf("degenerate BarTicks = %+v; wanted %+v", s, want)
	}

	s, err = BarTicks(BarParams{Width: 400, Layout: Horizontal, TicksCount: 6, MaxValue: 100})
	if err != nil {
		t.Fatal(err)
	}
	if want := set(0, 120, 0, 20, 40, 60, 80, 100, 120); !reflect.DeepEqual(s, want) {
		t.Errorf("horizontal BarTicks = %+v; wanted %+v", s, want)
	}

	_, err = BarTicks(BarParams{Layout: "diagonal"})
	if !ErrInvalidLayout.Is(err) {
		t.Errorf("BarTicks with bad layout returned %v; wanted ErrInvalidLayout", err)
	}
}

func TestParseLayout(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Layout
		ok   bool
	}{
		{"vertical", Vertical, true},
		{"horizontal", Horizontal, true},
		{"Vertical", "", false},
		{"", "", false},
	} {
		got, err := ParseLayout(test.in)
		if got != test.want || (err == nil) != test.ok {
			t.Errorf("ParseLayout(%q) = %q, %v", test.in, got, err)
		}
	}
}

func TestLineTicks(t *testing.T) {
	s := LineTicks(200, 6, 0, 100)
	if want := set(0, 120, 0, 20, 40, 60, 80, 100, 120); !reflect.DeepEqual(s, want) {
		t.Errorf("LineTicks = %+v; wanted %+v", s, want)
	}
}
