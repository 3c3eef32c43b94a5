// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Number coerces v to a float64.
//
// nil becomes 0. Numeric strings are parsed. Any other value that is
// not a finite number is logged as a warning on lg (the standard
// logrus logger if lg is nil) and replaced by 0, so that one bad
// record does not blank an entire chart. name is only used in the
// warning.
func Number(v interface{}, name string, lg logrus.FieldLogger) float64 {
	x, ok := toFloat(v)
	if ok && !math.IsNaN(x) && !math.IsInf(x, 0) {
		return x
	}
	if v == nil {
		return 0
	}
	Logger(lg).WithFields(logrus.Fields{
		"field": name,
		"value": v,
	}).Warn("non-numeric value replaced by 0")
	return 0
}

// Number resolves a in rec and coerces the result with Number.
// Missing values are 0 without a warning.
func (a Accessor) Number(rec Record, lg logrus.FieldLogger) float64 {
	v, ok := a.Resolve(rec)
	if !ok {
		return 0
	}
	return Number(v, a.String(), lg)
}

// Float converts v to a float64 like Number but reports failure
// instead of logging it.
func Float(v interface{}) (float64, bool) {
	x, ok := toFloat(v)
	return x, ok && !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Logger returns lg, or the standard logrus logger if lg is nil.
func Logger(lg logrus.FieldLogger) logrus.FieldLogger {
	if lg == nil {
		return logrus.StandardLogger()
	}
	return lg
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		x, err := v.Float64()
		return x, err == nil
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return x, err == nil
	}
	return 0, false
}
