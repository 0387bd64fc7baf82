// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Configuration names are usually JVM memory settings, either a bare
// size ("512m", "4g") or a full heap flag ("-Xmx4g"). The flag form
// wins when both could match, so a name like "run-Xmx2g-v512m" sorts
// by the heap size, not the first size-looking token.
var (
	heapFlagPat = regexp.MustCompile(`(?i)-?Xmx(\d+(?:\.\d+)?)\s*([kmgtp]?)`)
	bareSizePat = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*([kmgtp]?)b?\s*$`)
)

var sizeFactors = map[string]float64{
	"":  1,
	"k": 1 << 10,
	"m": 1 << 20,
	"g": 1 << 30,
	"t": 1 << 40,
	"p": 1 << 50,
}

// ParseSize interprets conf as a byte size. Suffixes k/m/g/t/p are
// powers of 1024; a missing suffix means bytes. ok is false when conf
// matches neither the heap-flag nor the bare-size pattern.
func ParseSize(conf string) (bytes float64, ok bool) {
	m := heapFlagPat.FindStringSubmatch(conf)
	if m == nil {
		m = bareSizePat.FindStringSubmatch(conf)
	}
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return n * sizeFactors[strings.ToLower(m[2])], true
}

// SortConfsBySize returns confs reordered so that parseable sizes
// come first in ascending byte magnitude, followed by unparseable
// names in their original relative order. The sort is stable: equal
// sizes also keep input order.
func SortConfsBySize(confs []string) []string {
	out := make([]string, len(confs))
	copy(out, confs)

	sizes := make(map[string]float64, len(out))
	parseable := func(c string) bool {
		_, ok := sizes[c]
		return ok
	}
	for _, c := range out {
		if n, ok := ParseSize(c); ok {
			sizes[c] = n
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := parseable(out[i]), parseable(out[j])
		if pi != pj {
			return pi
		}
		if !pi {
			return false
		}
		return sizes[out[i]] < sizes[out[j]]
	})
	return out
}
