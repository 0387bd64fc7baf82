// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvtab

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "log.csv", "ThreadID,CallerID,StartNanos,EndNanos,NumBytes\n0,A,100,200,42\n1,B,300,400,7\n")
	tab, err := ReadFile(path, "ThreadID", "CallerID", "StartNanos", "EndNanos")
	if err != nil {
		t.Fatal(err)
	}
	if len(tab.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(tab.Rows))
	}
	if got := tab.Col(tab.Rows[1], "CallerID"); got != "B" {
		t.Errorf("CallerID = %q, want %q", got, "B")
	}
	// Extra columns are retained but harmless.
	if !tab.Has("NumBytes") {
		t.Errorf("extra column NumBytes not visible")
	}
}

func TestMissingColumn(t *testing.T) {
	path := writeFile(t, "log.csv", "ThreadID,CallerID,StartNanos\n0,A,100\n")
	_, err := ReadFile(path, "ThreadID", "CallerID", "StartNanos", "EndNanos")
	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("got %v, want ColumnError", err)
	}
	if want := []string{"EndNanos"}; !reflect.DeepEqual(colErr.Missing, want) {
		t.Errorf("Missing = %v, want %v", colErr.Missing, want)
	}
	if Degradable(err) {
		t.Errorf("ColumnError must not be degradable")
	}
}

func TestMissingColumnsSorted(t *testing.T) {
	path := writeFile(t, "log.csv", "CallerID\nA\n")
	_, err := ReadFile(path, "ThreadID", "CallerID", "StartNanos", "EndNanos")
	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("got %v, want ColumnError", err)
	}
	want := []string{"EndNanos", "StartNanos", "ThreadID"}
	if !reflect.DeepEqual(colErr.Missing, want) {
		t.Errorf("Missing = %v, want %v", colErr.Missing, want)
	}
}

func TestDegradableConditions(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"), "x")
	if !Degradable(err) {
		t.Errorf("missing file: Degradable = false, want true")
	}

	empty := writeFile(t, "empty.csv", "")
	_, err = ReadFile(empty, "x")
	var emptyErr *EmptyError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("empty file: got %v, want EmptyError", err)
	}
	if !Degradable(err) {
		t.Errorf("empty file: Degradable = false, want true")
	}

	headerOnly := writeFile(t, "header.csv", "x,y\n")
	_, err = ReadFile(headerOnly, "x")
	var noRows *NoRowsError
	if !errors.As(err, &noRows) {
		t.Fatalf("header only: got %v, want NoRowsError", err)
	}
	if !Degradable(err) {
		t.Errorf("header only: Degradable = false, want true")
	}
}
