// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartshape shapes dashboard data for charting.
//
// Usage:
//
//	chartshape [global flags] ticks|bands|pie|bar|lines [flags] [file...]
//
// Each input file holds one JSON request; with no files the request is
// read from standard input. One JSON response is written per request,
// in argument order. Output is indented when standard output is a
// terminal.
//
// Global flags may also be given in $CHARTSHAPE_FLAGS, which is split
// like a shell command line and inserted before the command-line
// arguments. Defaults come from the YAML file named by --config.
//
// "bar --table" prints the bars as a text table, and "bar --xlsx file"
// additionally saves them to a spreadsheet.
package main

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/ledgerlens/chartkit/band"
	"github.com/ledgerlens/chartkit/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	lg := logrus.New()
	lg.SetOutput(os.Stderr)

	args, err := withEnvFlags(os.Args, os.Getenv("CHARTSHAPE_FLAGS"))
	if err != nil {
		lg.Fatalf("CHARTSHAPE_FLAGS: %v", err)
	}
	e := &env{log: lg}
	if err := app(e).Run(args); err != nil {
		lg.Fatal(err)
	}
}

// withEnvFlags inserts the shell-split words of extra after args[0].
func withEnvFlags(args []string, extra string) ([]string, error) {
	words, err := shellquote.Split(extra)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(args)+len(words))
	out = append(out, args[:1]...)
	out = append(out, words...)
	return append(out, args[1:]...), nil
}

// env is the state shared by all requests of one run.
type env struct {
	log     *logrus.Logger
	cfg     *config.Config
	measure band.Measurer
	indent  bool
}

func app(e *env) *cli.App {
	return &cli.App{
		Name:  "chartshape",
		Usage: "shape dashboard data into chart-ready JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "load chart defaults from YAML `file`",
				EnvVars: []string{"CHARTSHAPE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"CHARTSHAPE_LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "ticks",
				Usage:   "default number of ticks",
				EnvVars: []string{"CHARTSHAPE_TICKS"},
			},
			&cli.StringFlag{
				Name:    "palette",
				Usage:   "default colour palette",
				EnvVars: []string{"CHARTSHAPE_PALETTE"},
			},
			&cli.BoolFlag{
				Name:  "fixed-measure",
				Usage: "estimate label widths instead of measuring them with the Go fonts",
			},
		},
		Before: e.setup,
		After:  e.teardown,
		Commands: []*cli.Command{
			{
				Name:      "ticks",
				Usage:     "compute value-axis ticks",
				ArgsUsage: "[file...]",
				Action:    e.action(ticksCmd),
			},
			{
				Name:      "bands",
				Usage:     "thin band-axis labels so they do not overlap",
				ArgsUsage: "[file...]",
				Action:    e.action(bandsCmd),
			},
			{
				Name:      "pie",
				Usage:     "build pie slices",
				ArgsUsage: "[file...]",
				Action:    e.action(pieCmd),
			},
			{
				Name:      "bar",
				Usage:     "build stacked bar records and their value axis",
				ArgsUsage: "[file...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "table",
						Usage: "print the bar records as a table instead of JSON",
					},
					&cli.StringFlag{
						Name:  "xlsx",
						Usage: "also write the bar records to the spreadsheet `file`",
					},
				},
				Action: e.barAction,
			},
			{
				Name:      "lines",
				Usage:     "decode line series and their value axis",
				ArgsUsage: "[file...]",
				Action:    e.action(linesCmd),
			},
		},
	}
}

func (e *env) setup(ctx *cli.Context) error {
	lvl, err := logrus.ParseLevel(ctx.String("log-level"))
	if err != nil {
		return err
	}
	e.log.SetLevel(lvl)

	e.cfg, err = config.Load(ctx.String("config"))
	if err != nil {
		return err
	}
	if n := int(ctx.Int("ticks")); n > 0 {
		e.cfg.Ticks.Count = n
	}
	if p := ctx.String("palette"); p != "" {
		e.cfg.Palette = p
	}

	if ctx.Bool("fixed-measure") {
		e.measure = band.FixedMeasurer(0.6)
	} else {
		m, err := band.NewFaceMeasurer(e.cfg.WidthCache)
		if err != nil {
			return err
		}
		e.measure = m
	}
	e.indent = isTerminal(os.Stdout)
	e.log.WithFields(logrus.Fields{
		"palette": e.cfg.Palette,
		"ticks":   e.cfg.Ticks.Count,
	}).Debug("configured")
	return nil
}

func (e *env) teardown(ctx *cli.Context) error {
	if m, ok := e.measure.(*band.FaceMeasurer); ok {
		m.Close()
	}
	return nil
}

func (e *env) action(h handler) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		out, err := e.runAll(ctx.Args().Slice(), h)
		if err != nil {
			return err
		}
		return e.writeJSON(os.Stdout, out)
	}
}

func (e *env) barAction(ctx *cli.Context) error {
	out, err := e.runAll(ctx.Args().Slice(), barCmd)
	if err != nil {
		return err
	}
	if path := ctx.String("xlsx"); path != "" {
		rs := make([]*barResponse, len(out))
		for i, r := range out {
			rs[i] = r.(*barResponse)
		}
		if err := writeBarWorkbook(path, rs); err != nil {
			return err
		}
	}
	if !ctx.Bool("table") {
		return e.writeJSON(os.Stdout, out)
	}
	for _, r := range out {
		if err := printBarTable(os.Stdout, r.(*barResponse)); err != nil {
			return fmt.Errorf("printing table: %w", err)
		}
	}
	return nil
}
