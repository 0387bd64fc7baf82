// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/janniklinde/OOCExperiments/eventlog"
	"github.com/janniklinde/OOCExperiments/results"
	"github.com/janniklinde/OOCExperiments/timeline"
)

func testTimelineFigure(t *testing.T) *Figure {
	t.Helper()
	compute := []eventlog.TimeEntry{
		{ThreadID: 0, CallerID: "MatrixMultiply", StartNanos: 100, EndNanos: 2_000_000},
		{ThreadID: 0, CallerID: "Checkpoint", StartNanos: 3_000_000, EndNanos: 4_000_000},
		{ThreadID: 1, CallerID: "MatrixMultiply", StartNanos: 500, EndNanos: 3_500_000},
	}
	reads := []eventlog.TimeEntry{
		{ThreadID: 7, CallerID: "read", StartNanos: 50, EndNanos: 1_000_000},
	}
	samples := []eventlog.CacheSample{
		{TimestampNanos: 100, ScheduledEvictionBytes: 0, CacheSizeBytes: 1024},
		{TimestampNanos: 4_000_000, ScheduledEvictionBytes: 512, CacheSizeBytes: 2048},
	}
	settings := &eventlog.RunSettings{CacheHardLimitBytes: 4096, CacheEvictionLimitBytes: 3072}

	unit, err := ParseUnit("ms")
	if err != nil {
		t.Fatal(err)
	}
	set := timeline.Build(compute, true)
	fig, err := Timeline(set, reads, nil, samples, settings, TimelineOptions{Unit: unit})
	if err != nil {
		t.Fatal(err)
	}
	return fig
}

func TestTimelineWriteFile(t *testing.T) {
	fig := testTimelineFigure(t)
	for _, name := range []string{"timeline.png", "timeline.svg", "timeline.pdf"} {
		path := filepath.Join(t.TempDir(), name)
		if err := fig.WriteFile(path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: wrote empty file", name)
		}
	}
}

func TestGlobalBounds(t *testing.T) {
	compute := timeline.Build([]eventlog.TimeEntry{
		{ThreadID: 0, CallerID: "A", StartNanos: 500, EndNanos: 900},
	}, false)
	reads := timeline.Build([]eventlog.TimeEntry{
		{ThreadID: 1, CallerID: "read", StartNanos: 200, EndNanos: 600},
	}, false)
	samples := []eventlog.CacheSample{
		{TimestampNanos: 100, CacheSizeBytes: 1},
		{TimestampNanos: 2000, CacheSizeBytes: 2},
	}

	origin, end := globalBounds(compute, []timeline.Set{reads}, samples)
	if origin != 100 || end != 2000 {
		t.Errorf("got origin=%d end=%d, want 100, 2000", origin, end)
	}

	// An empty track must not pull the bounds toward zero.
	origin, end = globalBounds(compute, []timeline.Set{{}}, nil)
	if origin != 500 || end != 900 {
		t.Errorf("got origin=%d end=%d, want 500, 900", origin, end)
	}

	// Neither must an empty compute set when the other series carry
	// events.
	origin, end = globalBounds(timeline.Set{}, []timeline.Set{reads}, nil)
	if origin != 200 || end != 600 {
		t.Errorf("empty compute: got origin=%d end=%d, want 200, 600", origin, end)
	}
}

func TestWriteFileUnsupportedExtension(t *testing.T) {
	fig := testTimelineFigure(t)
	err := fig.WriteFile(filepath.Join(t.TempDir(), "timeline.gif"))
	if err == nil || !strings.Contains(err.Error(), ".gif") {
		t.Errorf("got %v, want unsupported format error naming .gif", err)
	}
}

func TestResultBars(t *testing.T) {
	rows := []results.Row{
		{Mode: "gc1", Conf: "512m", Reps: []float64{10, 12, 14}},
		{Mode: "gc1", Conf: "4g", Reps: []float64{9, 9, 9}},
		{Mode: "serial", Conf: "512m", Reps: []float64{math.NaN()}},
	}
	table, err := results.Aggregate(rows, results.Options{})
	if err != nil {
		t.Fatal(err)
	}
	fig, err := ResultBars(table, BarsOptions{Title: "exp1 Results", MaxLegend: 1})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "results.png")
	if err := fig.WriteFile(path); err != nil {
		t.Fatal(err)
	}
}

func TestResultBarsNoData(t *testing.T) {
	table, err := results.Aggregate(nil, results.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ResultBars(table, BarsOptions{}); err == nil {
		t.Error("got nil error for empty table")
	}
}
