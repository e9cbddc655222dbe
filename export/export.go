// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes engine.Snapshot series to CSV and Excel files,
// the "history export (external)" collaborator spec.md §6 names. It
// depends only on package engine; engine never imports export.
//
// Excel writing is grounded on the excelize.v2 usage shape of
// jndunlap-gohypo's adapters/excel/reader.go (that file reads; this one
// writes the mirror-image calls against the same library).
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// header returns the column titles shared by both formats: time, dpa,
// dislocation density, then one column per tracked cluster size for
// interstitials and vacancies.
func header(n int) []string {
	h := []string{"time_s", "dpa", "dislocation_density_cm2"}
	for size := 1; size <= n; size++ {
		h = append(h, fmt.Sprintf("Ci_%d", size))
	}
	for size := 1; size <= n; size++ {
		h = append(h, fmt.Sprintf("Cv_%d", size))
	}
	return h
}

func row(snap engine.Snapshot) []float64 {
	r := make([]float64, 0, 3+2*len(snap.Interstitials))
	r = append(r, snap.Time, snap.Dpa, snap.DislocationDensity)
	r = append(r, snap.Interstitials...)
	r = append(r, snap.Vacancies...)
	return r
}

// CSV writes history as a plain CSV file at path, one row per snapshot.
func CSV(path string, history []engine.Snapshot) error {
	if len(history) == 0 {
		return chk.Err("cannot export an empty snapshot history")
	}
	f, err := os.Create(path)
	if err != nil {
		return chk.Err("cannot create CSV export file %q: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	n := len(history[0].Interstitials)
	if err := w.Write(header(n)); err != nil {
		return chk.Err("cannot write CSV header: %v", err)
	}
	for _, snap := range history {
		values := row(snap)
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = fmt.Sprintf("%g", v)
		}
		if err := w.Write(record); err != nil {
			return chk.Err("cannot write CSV row: %v", err)
		}
	}
	return nil
}

// Excel writes history as a single-sheet .xlsx workbook at path.
func Excel(path string, history []engine.Snapshot) error {
	if len(history) == 0 {
		return chk.Err("cannot export an empty snapshot history")
	}
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	n := len(history[0].Interstitials)
	for col, title := range header(n) {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return chk.Err("cannot address header cell: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return chk.Err("cannot write header cell: %v", err)
		}
	}

	for rIdx, snap := range history {
		values := row(snap)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rIdx+2)
			if err != nil {
				return chk.Err("cannot address data cell: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return chk.Err("cannot write data cell: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return chk.Err("cannot save Excel export %q: %v", path, err)
	}
	return nil
}
