// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ledgerlens/chartkit/band"
	"github.com/ledgerlens/chartkit/field"
	"github.com/ledgerlens/chartkit/internal/config"
	"github.com/ledgerlens/chartkit/series"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"
)

func testEnv() *env {
	lg, _ := test.NewNullLogger()
	return &env{log: lg, cfg: config.Default(), measure: band.FixedMeasurer(0.6)}
}

func TestWithEnvFlags(t *testing.T) {
	got, err := withEnvFlags([]string{"chartshape", "pie", "a.json"}, `--palette tableau10 --config "my conf.yaml"`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"chartshape", "--palette", "tableau10", "--config", "my conf.yaml", "pie", "a.json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("withEnvFlags = %q; wanted %q", got, want)
	}
	if _, err := withEnvFlags([]string{"x"}, `"unterminated`); err == nil {
		t.Errorf("withEnvFlags with an unterminated quote should fail")
	}
}

func TestTicksCmd(t *testing.T) {
	e := testEnv()
	r, err := ticksCmd(e, decoder([]byte(`{"minValue": 0, "maxValue": 0, "layout": "vertical", "height": 100, "ticksCount": 6}`)))
	if err != nil {
		t.Fatal(err)
	}
	s := r.(*ticksResponse).Set
	if !reflect.DeepEqual(s.TickValues, []float64{0}) || s.MinValue != 0 || s.MaxValue != 0 {
		t.Errorf("degenerate bar ticks = %+v", s)
	}

	r, err = ticksCmd(e, decoder([]byte(`{"minValue": 0, "maxValue": 100, "range": [120, 0]}`)))
	if err != nil {
		t.Fatal(err)
	}
	tr := r.(*ticksResponse)
	if want := []float64{0, 20, 40, 60, 80, 100, 120}; !reflect.DeepEqual(tr.TickValues, want) {
		t.Errorf("ticks = %v; wanted %v", tr.TickValues, want)
	}
	if want := []float64{120, 100, 80, 60, 40, 20, 0}; !reflect.DeepEqual(tr.Pixels, want) {
		t.Errorf("pixels = %v; wanted %v", tr.Pixels, want)
	}

	if _, err := ticksCmd(e, decoder([]byte(`{"layout": "diagonal"}`))); err == nil {
		t.Errorf("bad layout should fail")
	}
	if _, err := ticksCmd(e, decoder([]byte(`{"bogus": 1}`))); err == nil {
		t.Errorf("unknown request field should fail")
	}
}

func TestBandsCmd(t *testing.T) {
	e := testEnv()
	req := `{"domain": ["Jan","Feb","Mar","Apr"], "range": [0, 80], "padding": 0, "gutter": 4, "font": {"fontSize": "10px"}}`
	r, err := bandsCmd(e, decoder([]byte(req)))
	if err != nil {
		t.Fatal(err)
	}
	br := r.(*bandsResponse)
	if br.Step != 20 || br.Coefficient != 2 || !reflect.DeepEqual(br.Labels, []string{"Jan", "Mar"}) {
		t.Errorf("bands = %+v", br)
	}

	if _, err := bandsCmd(e, decoder([]byte(`{"font": {"fontSize": "big"}}`))); err == nil {
		t.Errorf("bad font size should fail")
	}
}

func TestPieCmd(t *testing.T) {
	e := testEnv()
	req := `{"records": [{"id": "a", "total": 0}, {"id": "b", "total": 5}], "valueField": "total"}`
	r, err := pieCmd(e, decoder([]byte(req)))
	if err != nil {
		t.Fatal(err)
	}
	res := r.(*series.PieResult)
	if len(res.Data) != 1 || res.Data[0].ID != "b" || res.Data[0].Value != 5 || len(res.Palette) != 1 {
		t.Errorf("pie = %+v", res)
	}

	if _, err := pieCmd(e, decoder([]byte(`{"sort": {"order": "up"}}`))); !series.ErrInvalidOrder.Is(err) {
		t.Errorf("bad sort order returned %v; wanted ErrInvalidOrder", err)
	}
}

const barReq = `{
	"buckets": {
		"2020-02": [{"name": "A", "value": 1}],
		"2020-01": [{"name": "A", "value": 5}, {"name": "B", "value": -2}]
	},
	"indexBy": "month",
	"height": 200
}`

func TestBarCmd(t *testing.T) {
	e := testEnv()
	r, err := barCmd(e, decoder([]byte(barReq)))
	if err != nil {
		t.Fatal(err)
	}
	br := r.(*barResponse)
	if !reflect.DeepEqual(br.Keys, []string{"A", "B"}) {
		t.Errorf("keys = %v; wanted [A B]", br.Keys)
	}
	if br.Data[0]["month"] != "2020-01" {
		t.Errorf("first bar = %v; wanted 2020-01", br.Data[0])
	}
	if br.Ticks.MinValue > -2 || br.Ticks.MaxValue < 5 {
		t.Errorf("ticks %+v do not cover [-2, 5]", br.Ticks)
	}

	var buf bytes.Buffer
	if err := printBarTable(&buf, br); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"month", "2020-01", "2020-02", "A", "B", "ticks"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestBarCmdSampledPalette(t *testing.T) {
	e := testEnv()
	req := `{
		"buckets": {"2020-01": [
			{"svc": "ec2", "usd": 9}, {"svc": "rds", "usd": 4}, {"svc": "s3", "usd": 2}
		]},
		"keyField": "svc",
		"keyValue": "usd",
		"palette": "cost",
		"height": 100
	}`
	r, err := barCmd(e, decoder([]byte(req)))
	if err != nil {
		t.Fatal(err)
	}
	br := r.(*barResponse)
	seen := map[string]bool{}
	for _, c := range br.Palette {
		seen[c] = true
	}
	if len(br.Keys) != 3 || len(seen) != 3 {
		t.Errorf("keys %v got colours %v; wanted 3 distinct", br.Keys, br.Palette)
	}
}

func TestCountKeys(t *testing.T) {
	buckets := map[string][]field.Record{
		"w1": {{"name": "a"}, {"name": "b"}, {"value": 1}},
		"w2": {{"name": "b"}, {"name": "c"}},
	}
	if got := countKeys(buckets, field.Key("name")); got != 3 {
		t.Errorf("countKeys = %d; wanted 3", got)
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, os.ErrClosed }

func TestPrintBarTableError(t *testing.T) {
	e := testEnv()
	r, err := barCmd(e, decoder([]byte(barReq)))
	if err != nil {
		t.Fatal(err)
	}
	if err := printBarTable(failWriter{}, r.(*barResponse)); err == nil {
		t.Errorf("printBarTable to a failing writer returned nil error")
	}
}

func TestLinesCmd(t *testing.T) {
	e := testEnv()
	req := `{"lines": [
		{"id": "ec2", "data": [{"x": "jan", "y": 3}, {"x": "feb", "y": 4}]},
		{"id": "s3", "data": [{"x": "jan", "y": 1}, {"x": "feb", "y": 2}]}
	], "stacked": true, "height": 300}`
	r, err := linesCmd(e, decoder([]byte(req)))
	if err != nil {
		t.Fatal(err)
	}
	lr := r.(*linesResponse)
	if len(lr.Series) != 2 || lr.Series[1].Data[1].Y != 2 {
		t.Errorf("series = %+v", lr.Series)
	}
	if lr.Ticks.MinValue != 0 || lr.Ticks.MaxValue < 6 {
		t.Errorf("stacked ticks %+v do not cover [0, 6]", lr.Ticks)
	}

	r, err = linesCmd(e, decoder([]byte(`{"lines": []}`)))
	if err != nil {
		t.Fatal(err)
	}
	if s := r.(*linesResponse).Ticks; s.MinValue != 0 || s.MaxValue != 0 {
		t.Errorf("empty lines ticks = %+v; wanted [0, 0]", s)
	}
}

func TestRunAll(t *testing.T) {
	e := testEnv()
	dir := t.TempDir()
	var paths []string
	for i, max := range []string{"10", "100", "1000"} {
		p := filepath.Join(dir, string(rune('a'+i))+".json")
		if err := os.WriteFile(p, []byte(`{"maxValue": `+max+`, "range": [0, 500]}`), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	out, err := e.runAll(paths, ticksCmd)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{10, 100, 1000} {
		if got := out[i].(*ticksResponse).MaxValue; got < want {
			t.Errorf("response %d has max %v; wanted at least %v", i, got, want)
		}
	}

	var buf bytes.Buffer
	if err := e.writeJSON(&buf, out); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != 3 {
		t.Errorf("writeJSON wrote %d lines; wanted 3", n)
	}

	_, err = e.runAll([]string{filepath.Join(dir, "missing.json")}, ticksCmd)
	if err == nil {
		t.Errorf("runAll on a missing file should fail")
	}
}

func TestWriteBarWorkbook(t *testing.T) {
	e := testEnv()
	r, err := barCmd(e, decoder([]byte(barReq)))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bars.xlsx")
	if err := writeBarWorkbook(path, []*barResponse{r.(*barResponse)}); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for cell, want := range map[string]string{
		"A1": "month", "B1": "A", "C1": "B",
		"A2": "2020-01", "B2": "5", "C2": "-2",
		"A3": "2020-02", "B3": "1",
	} {
		got, err := f.GetCellValue(barSheet, cell)
		if err != nil || got != want {
			t.Errorf("cell %s = %q, %v; wanted %q", cell, got, err, want)
		}
	}
}
