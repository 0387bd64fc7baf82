// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventlog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/janniklinde/OOCExperiments/internal/csvtab"
)

func TestReadEntries(t *testing.T) {
	entries, err := ReadEntries("testdata/compute.csv")
	if err != nil {
		t.Fatal(err)
	}
	want := []TimeEntry{
		{0, "MatrixMultiply", 100, 200},
		{1, "Checkpoint", 150, 250},
		{0, "MatrixMultiply", 300, 400},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestReadEntriesIgnoresNumBytes(t *testing.T) {
	entries, err := ReadEntries("testdata/diskread.csv")
	if err != nil {
		t.Fatal(err)
	}
	want := []TimeEntry{{2, "DiskRead", 120, 180}}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %v, want %v", entries, want)
	}
}

func TestReadEntriesMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("ThreadID,CallerID,StartNanos\n0,A,100\n"), 0666); err != nil {
		t.Fatal(err)
	}
	_, err := ReadEntries(path)
	var colErr *csvtab.ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("got %v, want ColumnError", err)
	}
	if want := []string{"EndNanos"}; !reflect.DeepEqual(colErr.Missing, want) {
		t.Errorf("Missing = %v, want %v", colErr.Missing, want)
	}
}

func TestReadEntriesBadValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("ThreadID,CallerID,StartNanos,EndNanos\n0,A,abc,200\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadEntries(path); err == nil {
		t.Fatal("got nil error for unparseable StartNanos")
	}
}

func TestReadCacheSamples(t *testing.T) {
	samples, err := ReadCacheSamples("testdata/cache.csv")
	if err != nil {
		t.Fatal(err)
	}
	want := []CacheSample{
		{100, 0, 1024},
		{200, 512, 2048},
		{300, 0, 1536},
	}
	if !reflect.DeepEqual(samples, want) {
		t.Errorf("samples = %v, want %v", samples, want)
	}
	min, max, ok := SampleBounds(samples)
	if !ok || min != 100 || max != 300 {
		t.Errorf("SampleBounds = %d, %d, %v, want 100, 300, true", min, max, ok)
	}
}

func TestReadRunSettings(t *testing.T) {
	rs, err := ReadRunSettings("testdata/settings.csv")
	if err != nil {
		t.Fatal(err)
	}
	want := RunSettings{CacheHardLimitBytes: 4096, CacheEvictionLimitBytes: 3072}
	if rs != want {
		t.Errorf("settings = %v, want %v", rs, want)
	}
}

func TestBounds(t *testing.T) {
	entries := []TimeEntry{
		{0, "A", 300, 400},
		{1, "B", 100, 150},
		{2, "C", 200, 500},
	}
	min, max, ok := Bounds(entries)
	if !ok || min != 100 || max != 500 {
		t.Errorf("Bounds = %d, %d, %v, want 100, 500, true", min, max, ok)
	}
	if _, _, ok := Bounds(nil); ok {
		t.Errorf("Bounds(nil) ok = true, want false")
	}
}
