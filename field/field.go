// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field resolves values out of loosely typed records.
//
// Upstream dashboard data arrives as decoded JSON: maps of maps with
// numbers that are sometimes numbers, sometimes strings and sometimes
// missing altogether. An Accessor names a value in such a record either
// by a single key or by a path of keys through nested maps. Number
// coerces a resolved value to float64 on a best-effort basis.
package field

import (
	"fmt"
	"strings"
)

// A Record is one decoded source record.
type Record map[string]interface{}

// An Accessor locates a value in a Record.
//
// An Accessor is either a single key (see Key) or a path of keys
// through nested records (see Path). A key may contain dots; only
// ParseAccessor splits on them.
type Accessor struct {
	path []string
}

// Key returns an Accessor for the top-level key name.
func Key(name string) Accessor {
	return Accessor{path: []string{name}}
}

// Path returns an Accessor that walks segs through nested records.
func Path(segs ...string) Accessor {
	p := make([]string, len(segs))
	copy(p, segs)
	return Accessor{path: p}
}

// ParseAccessor parses a dotted path such as "cost.total". A string
// without dots is equivalent to Key.
func ParseAccessor(s string) Accessor {
	if s == "" {
		return Accessor{}
	}
	return Path(strings.Split(s, ".")...)
}

// IsZero reports whether a is the zero Accessor, which resolves
// nothing.
func (a Accessor) IsZero() bool {
	return len(a.path) == 0
}

// Or returns a if it is set and def otherwise.
func (a Accessor) Or(def Accessor) Accessor {
	if a.IsZero() {
		return def
	}
	return a
}

// String returns the dotted form of a.
func (a Accessor) String() string {
	return strings.Join(a.path, ".")
}

// Resolve returns the value at a in rec. ok is false if any segment
// of the path is missing or an intermediate value is not a record.
func (a Accessor) Resolve(rec Record) (v interface{}, ok bool) {
	if len(a.path) == 0 {
		return nil, false
	}
	var cur interface{} = map[string]interface{}(rec)
	for _, seg := range a.path {
		m, isMap := asMap(cur)
		if !isMap {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// StringOf resolves a in rec and formats the result. Missing values
// format as the empty string.
func (a Accessor) StringOf(rec Record) string {
	v, ok := a.Resolve(rec)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch v := v.(type) {
	case map[string]interface{}:
		return v, true
	case Record:
		return v, true
	}
	return nil, false
}
