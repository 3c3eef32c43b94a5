// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartplot renders a preview of line series as SVG.
//
// chartplot reads line-chart input in the same JSON form as
// "chartshape lines": an object with a "lines" list, each line holding
// its points under dataKey. The value axis is laid out with the same
// tick computation the dashboard uses, so the preview shows exactly
// the bounds the dashboard would draw.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/ledgerlens/chartkit/field"
	"github.com/sirupsen/logrus"
)

type input struct {
	Lines   []field.Record `json:"lines"`
	DataKey string         `json:"dataKey"`
	AxisKey string         `json:"axisKey"`
}

func main() {
	log.SetPrefix("chartplot: ")
	log.SetFlags(0)

	var (
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable   = flag.Bool("table", false, "output a table instead of a plot")
		flagStacked = flag.Bool("stacked", false, "stack the series")
		flagTicks   = flag.Int("ticks", 6, "desired number of value-axis `ticks`")
		flagWidth   = flag.Int("w", 600, "plot width in `pixels`")
		flagHeight  = flag.Int("h", 350, "plot height in `pixels`")
		flagDataKey = flag.String("data", "data", "`key` holding each line's points")
		flagAxisKey = flag.String("y", "y", "`key` holding each point's value")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := "-"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	in, err := readInput(path)
	if err != nil {
		log.Fatal(err)
	}
	if in.DataKey == "" {
		in.DataKey = *flagDataKey
	}
	if in.AxisKey == "" {
		in.AxisKey = *flagAxisKey
	}

	lg := logrus.New()
	lg.SetOutput(os.Stderr)
	lp := newLinePlot(in, *flagStacked, float64(*flagHeight), *flagTicks, lg)

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	tab := lp.table()
	if *flagTable {
		table.Fprint(f, tab)
		return
	}

	p := lp.plot(tab)
	if path != "-" {
		p.Add(gg.Title(strings.TrimSuffix(path, ".json")))
	}
	p.WriteSVG(f, *flagWidth, *flagHeight)
}

func readInput(path string) (*input, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var in input
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &in, nil
}
