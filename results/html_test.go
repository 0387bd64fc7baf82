// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"math"
	"strings"
	"testing"
)

func TestFormatHTML(t *testing.T) {
	rows := []Row{
		{Mode: "gc1", Conf: "512m", Reps: []float64{10.0}},
		{Mode: "serial", Conf: "4g", Reps: []float64{math.NaN()}},
	}
	table, err := Aggregate(rows, Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := FormatHTML(&buf, table, "exp1 Results"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"exp1 Results", "gc1", "serial", "512m", "4g", "10.00", "&mdash;"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
