// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package results reads experiment result tables and aggregates them
// into the (mode, configuration) grids the bar charts are drawn from.
package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/janniklinde/OOCExperiments/internal/csvtab"
)

// A Row is one line of a results table: a mode (e.g. a GC or cache
// strategy), a configuration (e.g. a heap size), and its repetition
// measurements. Single-repetition tables carry one value, which may
// be NaN for a run that failed or timed out.
type Row struct {
	Mode string
	Conf string
	Reps []float64
}

// ReadTable reads a results table. The header must contain mode,
// conf, and rep1; additional consecutive repN columns (rep2, rep3,
// ...) extend the repetition count. An empty or "NaN" repetition
// field denotes a failed run and parses as NaN.
func ReadTable(path string) ([]Row, error) {
	t, err := csvtab.ReadFile(path, "mode", "conf", "rep1")
	if err != nil {
		return nil, err
	}

	repCols := []string{"rep1"}
	for i := 2; t.Has(fmt.Sprintf("rep%d", i)); i++ {
		repCols = append(repCols, fmt.Sprintf("rep%d", i))
	}

	rows := make([]Row, 0, len(t.Rows))
	for i, rec := range t.Rows {
		row := Row{
			Mode: t.Col(rec, "mode"),
			Conf: t.Col(rec, "conf"),
			Reps: make([]float64, 0, len(repCols)),
		}
		for _, col := range repCols {
			field := strings.TrimSpace(t.Col(rec, col))
			if field == "" {
				row.Reps = append(row.Reps, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: bad %s: %w", path, i+2, col, err)
			}
			row.Reps = append(row.Reps, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
