// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "testing"

func TestParseUnit(t *testing.T) {
	tests := []struct {
		name    string
		divisor float64
	}{
		{"ns", 1},
		{"us", 1e3},
		{"ms", 1e6},
		{"s", 1e9},
	}
	for _, test := range tests {
		u, err := ParseUnit(test.name)
		if err != nil {
			t.Errorf("ParseUnit(%q): %v", test.name, err)
			continue
		}
		if u.Divisor != test.divisor {
			t.Errorf("ParseUnit(%q).Divisor = %v, want %v", test.name, u.Divisor, test.divisor)
		}
	}

	for _, bad := range []string{"", "sec", "NS", "m"} {
		if _, err := ParseUnit(bad); err == nil {
			t.Errorf("ParseUnit(%q) succeeded, want error", bad)
		}
	}
}

func TestUnitScale(t *testing.T) {
	u, err := ParseUnit("ms")
	if err != nil {
		t.Fatal(err)
	}
	if got := u.Scale(2_500_000); got != 2.5 {
		t.Errorf("Scale = %v, want 2.5", got)
	}
}
