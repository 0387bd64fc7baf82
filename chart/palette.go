// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "image/color"

// palette is a fixed 20-color cycle (the usual "tab20" ordering), so
// that a given sorted label set always maps to the same colors from
// run to run.
var palette = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
	color.NRGBA{0xae, 0xc7, 0xe8, 0xff},
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff},
	color.NRGBA{0xff, 0xbb, 0x78, 0xff},
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.NRGBA{0x98, 0xdf, 0x8a, 0xff},
	color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	color.NRGBA{0xff, 0x98, 0x96, 0xff},
	color.NRGBA{0x94, 0x67, 0xbd, 0xff},
	color.NRGBA{0xc5, 0xb0, 0xd5, 0xff},
	color.NRGBA{0x8c, 0x56, 0x4b, 0xff},
	color.NRGBA{0xc4, 0x9c, 0x94, 0xff},
	color.NRGBA{0xe3, 0x77, 0xc2, 0xff},
	color.NRGBA{0xf7, 0xb6, 0xd2, 0xff},
	color.NRGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.NRGBA{0xc7, 0xc7, 0xc7, 0xff},
	color.NRGBA{0xbc, 0xbd, 0x22, 0xff},
	color.NRGBA{0xdb, 0xdb, 0x8d, 0xff},
	color.NRGBA{0x17, 0xbe, 0xcf, 0xff},
	color.NRGBA{0x9e, 0xda, 0xe5, 0xff},
}

// Fixed colors for track elements that never take a palette slot.
var (
	idleColor      = color.NRGBA{0xd3, 0xd3, 0xd3, 0xff}
	diskReadColor  = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
	diskWriteColor = color.NRGBA{0xff, 0x7f, 0x0e, 0xff}
	cacheSizeColor = color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}
	evictionColor  = color.NRGBA{0x94, 0x67, 0xbd, 0xff}
	hardLimitColor = color.NRGBA{0xd6, 0x27, 0x28, 0xff}
	softLimitColor = color.NRGBA{0x8c, 0x56, 0x4b, 0xff}
)

// Colors maps each label onto the cyclic palette by its index in the
// given order. Callers pass labels sorted, so the assignment is
// deterministic for a given label set.
func Colors(labels []string) map[string]color.Color {
	m := make(map[string]color.Color, len(labels))
	for i, l := range labels {
		m[l] = palette[i%len(palette)]
	}
	return m
}
