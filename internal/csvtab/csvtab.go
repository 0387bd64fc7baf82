// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtab reads CSV files with a fixed, case-sensitive header
// into column-addressable tables. It is shared by the eventlog and
// results readers.
package csvtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// A Table is one fully parsed CSV file. Rows hold the data records in
// input order; fields are addressed by column name through Col.
type Table struct {
	Path string
	Rows [][]string

	cols map[string]int
}

// A ColumnError reports required columns absent from a file's header.
type ColumnError struct {
	Path    string
	Missing []string // sorted
}

func (e *ColumnError) Error() string {
	msg := fmt.Sprintf("%s: missing required column", e.Path)
	if len(e.Missing) > 1 {
		msg += "s"
	}
	sep := " "
	for _, c := range e.Missing {
		msg += sep + c
		sep = ", "
	}
	return msg
}

// A NoRowsError reports a file that has a header but no data rows.
type NoRowsError struct {
	Path string
}

func (e *NoRowsError) Error() string {
	return fmt.Sprintf("%s: no data rows found", e.Path)
}

// An EmptyError reports a file with no content at all, not even a
// header line.
type EmptyError struct {
	Path string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s: empty file or missing header", e.Path)
}

// Degradable reports whether err is a condition an optional input is
// allowed to degrade on: the file is missing, empty, or has no data
// rows. A present file with a wrong header is never degradable.
func Degradable(err error) bool {
	var noRows *NoRowsError
	var empty *EmptyError
	return errors.Is(err, os.ErrNotExist) ||
		errors.As(err, &noRows) ||
		errors.As(err, &empty)
}

// ReadFile parses the CSV file at path and verifies that every column
// in required is present in the header. Extra columns are retained
// and ignored by callers that do not ask for them.
func ReadFile(path string, required ...string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f, path, required)
}

func read(r io.Reader, path string, required []string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &EmptyError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t := &Table{Path: path, cols: make(map[string]int, len(header))}
	for i, name := range header {
		if _, ok := t.cols[name]; !ok {
			t.cols[name] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &ColumnError{Path: path, Missing: missing}
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.Rows = append(t.Rows, rec)
	}
	if len(t.Rows) == 0 {
		return nil, &NoRowsError{Path: path}
	}
	return t, nil
}

// Has reports whether the table's header contains the named column.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Col returns the named field of row. The column must exist; readers
// only ask for columns they validated through ReadFile.
func (t *Table) Col(row []string, name string) string {
	i, ok := t.cols[name]
	if !ok {
		panic(fmt.Sprintf("csvtab: column %q was not validated", name))
	}
	if i >= len(row) {
		return ""
	}
	return row[i]
}
