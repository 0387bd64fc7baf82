// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// Order selects how the distinct mode and configuration sets are
// ordered in an aggregated table.
type Order int

const (
	// OrderSorted lists modes and configurations lexically.
	OrderSorted Order = iota
	// OrderFirstSeen lists them in order of first appearance.
	OrderFirstSeen
)

// DupPolicy selects how a repeated (mode, conf) key is handled.
type DupPolicy int

const (
	// DupError rejects the table with a DuplicateKeyError.
	DupError DupPolicy = iota
	// DupOverwrite keeps the later row.
	DupOverwrite
)

// Options configures Aggregate. The zero value errors on duplicates,
// orders sets lexically, and leaves configurations unsorted by size.
type Options struct {
	Order   Order
	Dup     DupPolicy
	MemSort bool // order configurations by parsed memory size
}

// A DuplicateKeyError reports two rows sharing a (mode, conf) key
// under DupError.
type DuplicateKeyError struct {
	Mode string
	Conf string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate result row for mode=%s conf=%s", e.Mode, e.Conf)
}

// A Table is an aggregated results grid: the value of every mode at
// every configuration, with NaN marking combinations that have no
// row.
type Table struct {
	Modes []string
	Confs []string

	values map[[2]string]float64
}

// Value returns the aggregated value for (mode, conf), or NaN when
// the combination has no data.
func (t *Table) Value(mode, conf string) float64 {
	v, ok := t.values[[2]string{mode, conf}]
	if !ok {
		return math.NaN()
	}
	return v
}

// Series returns mode's value at every configuration, in Confs order.
func (t *Table) Series(mode string) []float64 {
	vs := make([]float64, len(t.Confs))
	for i, conf := range t.Confs {
		vs[i] = t.Value(mode, conf)
	}
	return vs
}

// Aggregate reduces rows to a Table. Each row's repetitions collapse
// to their arithmetic mean; a single-repetition row contributes its
// lone value unchanged (possibly NaN for a failed run).
func Aggregate(rows []Row, opts Options) (*Table, error) {
	t := &Table{values: make(map[[2]string]float64, len(rows))}

	seenMode := make(map[string]bool)
	seenConf := make(map[string]bool)
	for _, row := range rows {
		key := [2]string{row.Mode, row.Conf}
		if _, dup := t.values[key]; dup && opts.Dup == DupError {
			return nil, &DuplicateKeyError{Mode: row.Mode, Conf: row.Conf}
		}
		t.values[key] = collapse(row.Reps)

		if !seenMode[row.Mode] {
			seenMode[row.Mode] = true
			t.Modes = append(t.Modes, row.Mode)
		}
		if !seenConf[row.Conf] {
			seenConf[row.Conf] = true
			t.Confs = append(t.Confs, row.Conf)
		}
	}

	if opts.Order == OrderSorted {
		sort.Strings(t.Modes)
		sort.Strings(t.Confs)
	}
	if opts.MemSort {
		t.Confs = SortConfsBySize(t.Confs)
	}
	return t, nil
}

func collapse(reps []float64) float64 {
	switch len(reps) {
	case 0:
		return math.NaN()
	case 1:
		return reps[0]
	}
	return stats.Mean(reps)
}
