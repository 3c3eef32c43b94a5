// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// A handler shapes one decoded request. It must be safe to call
// concurrently.
type handler func(e *env, dec *json.Decoder) (interface{}, error)

// runAll runs h over the request in each path, or over standard input
// if there are no paths, and returns the responses in path order.
func (e *env) runAll(paths []string, h handler) ([]interface{}, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	out := make([]interface{}, len(paths))
	var g errgroup.Group
	g.SetLimit(8)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := readInput(path)
			if err != nil {
				return err
			}
			r, err := h(e, decoder(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// decoder returns a strict JSON decoder over data. Numbers are kept
// as json.Number so that record values are coerced in one place.
func decoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	return dec
}

func (e *env) writeJSON(w io.Writer, out []interface{}) error {
	enc := json.NewEncoder(w)
	if e.indent {
		enc.SetIndent("", "  ")
	}
	for _, r := range out {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
