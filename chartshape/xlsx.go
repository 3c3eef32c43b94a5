// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const barSheet = "Sheet1"

// writeBarWorkbook writes the bar records of rs to a workbook at path:
// a header row of the index name and keys, then one row per bar.
// Responses are written one below the other, separated by a blank row.
func writeBarWorkbook(path string, rs []*barResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	row := 1
	for _, r := range rs {
		header := append([]string{r.IndexBy}, r.Keys...)
		for col, h := range header {
			if err := setCell(f, col+1, row, h); err != nil {
				return err
			}
		}
		row++
		for _, rec := range r.Data {
			if err := setCell(f, 1, row, fmt.Sprint(rec[r.IndexBy])); err != nil {
				return err
			}
			for i, k := range r.Keys {
				v, _ := rec[k].(float64)
				if err := setCell(f, i+2, row, v); err != nil {
					return err
				}
			}
			row++
		}
		row++
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(barSheet, cell, v)
}
