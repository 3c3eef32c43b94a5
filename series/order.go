// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series builds chart-ready pie slices and stacked bar
// records from raw dashboard records.
package series

import "gopkg.in/src-d/go-errors.v1"

// ErrInvalidOrder is returned for a sort order other than Desc or Asc.
var ErrInvalidOrder = errors.NewKind("invalid sort order %q: want desc or asc")

// Order is a sort direction.
type Order string

const (
	Desc Order = "desc"
	Asc  Order = "asc"
)

// ParseOrder parses "desc" or "asc". The empty string is Desc.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case "":
		return Desc, nil
	case Desc, Asc:
		return o, nil
	}
	return "", ErrInvalidOrder.New(s)
}

// less orders a before b in direction o, with ok false on a tie.
func (o Order) less(a, b float64) (less, ok bool) {
	if a == b {
		return false, false
	}
	if o == Asc {
		return a < b, true
	}
	return a > b, true
}
