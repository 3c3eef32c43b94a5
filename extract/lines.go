// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"github.com/ledgerlens/chartkit/field"
	"github.com/sirupsen/logrus"
)

// Lines decodes raw line-chart input into series.
//
// Each element of raw is one line. Its points are the list stored
// under dataKey; each point carries its Y value under axisKey and its
// X under "x". The line's ID is taken from "id" and defaults to
// dataKey. Y values go through field.Number, so malformed values are
// logged on lg and count as 0.
func Lines(raw []field.Record, dataKey, axisKey string, lg logrus.FieldLogger) []Series {
	out := make([]Series, 0, len(raw))
	for _, line := range raw {
		s := Series{ID: field.Key("id").StringOf(line)}
		if s.ID == "" {
			s.ID = dataKey
		}
		pts, _ := line[dataKey].([]interface{})
		for _, p := range pts {
			rec, ok := asRecord(p)
			if !ok {
				field.Logger(lg).WithField("series", s.ID).Warn("skipping malformed point")
				continue
			}
			s.Data = append(s.Data, Point{
				X: rec["x"],
				Y: field.Key(axisKey).Number(rec, lg),
			})
		}
		out = append(out, s)
	}
	return out
}

func asRecord(v interface{}) (field.Record, bool) {
	switch v := v.(type) {
	case map[string]interface{}:
		return v, true
	case field.Record:
		return v, true
	}
	return nil, false
}
