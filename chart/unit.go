// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart renders event-log timelines and result tables as
// static chart images using gonum/plot.
package chart

import "fmt"

// A Unit is the time unit of a chart's x-axis. Divisor converts
// nanoseconds into the unit.
type Unit struct {
	Name    string
	Divisor float64
}

// ParseUnit resolves a unit flag value. Divisors are fixed powers of
// 1000.
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "ns":
		return Unit{"ns", 1}, nil
	case "us":
		return Unit{"us", 1e3}, nil
	case "ms":
		return Unit{"ms", 1e6}, nil
	case "s":
		return Unit{"s", 1e9}, nil
	}
	return Unit{}, fmt.Errorf("unsupported time unit %q (want ns, us, ms, or s)", name)
}

// Scale converts a nanosecond quantity into the unit.
func (u Unit) Scale(ns int64) float64 {
	return float64(ns) / u.Divisor
}

// AxisLabel is the x-axis caption for timelines in this unit.
func (u Unit) AxisLabel() string {
	return fmt.Sprintf("Time (%s) relative to first event", u.Name)
}
