// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeline turns raw event-log intervals into per-thread
// segment sequences ready for Gantt-style rendering.
package timeline

import (
	"sort"

	"github.com/janniklinde/OOCExperiments/eventlog"
)

// IdleLabel is the sentinel label of synthetic gap segments.
const IdleLabel = "idle"

// A Segment is one horizontal bar on a thread's lane: either a
// recorded interval carrying its caller's label, or a synthetic idle
// gap.
type Segment struct {
	StartNanos int64
	DurNanos   int64
	Label      string
}

// Idle reports whether s is a synthetic gap segment.
func (s Segment) Idle() bool { return s.Label == IdleLabel }

// A Thread is the segment sequence of one thread, sorted by start
// time.
type Thread struct {
	ThreadID int
	Segments []Segment
}

// A Set holds the segments of every thread in a log, plus the raw
// time bounds of the log. Threads are ordered by ascending ThreadID.
//
// MinStartNanos and MaxEndNanos cover all input entries, malformed
// ones included, so that timelines built from related logs share an
// origin even when some intervals were dropped.
type Set struct {
	Threads       []Thread
	MinStartNanos int64
	MaxEndNanos   int64
}

// Build groups entries by thread, orders each thread's entries by
// ascending start time (stable, so ties keep input order), and emits
// one segment per well-formed interval. Entries with non-positive
// duration are dropped.
//
// When includeIdle is set, a synthetic idle segment is emitted
// between an emitted interval and the next interval on the same
// thread whenever the gap between them is strictly positive. No idle
// segment ever follows a thread's last interval.
func Build(entries []eventlog.TimeEntry, includeIdle bool) Set {
	var set Set
	if len(entries) == 0 {
		return set
	}
	set.MinStartNanos, set.MaxEndNanos, _ = eventlog.Bounds(entries)

	byThread := make(map[int][]eventlog.TimeEntry)
	for _, e := range entries {
		byThread[e.ThreadID] = append(byThread[e.ThreadID], e)
	}

	ids := make([]int, 0, len(byThread))
	for id := range byThread {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		tes := byThread[id]
		sort.SliceStable(tes, func(i, j int) bool {
			return tes[i].StartNanos < tes[j].StartNanos
		})

		var segs []Segment
		for i, e := range tes {
			dur := e.EndNanos - e.StartNanos
			if dur <= 0 {
				continue
			}
			segs = append(segs, Segment{StartNanos: e.StartNanos, DurNanos: dur, Label: e.CallerID})

			if includeIdle && i+1 < len(tes) {
				gap := tes[i+1].StartNanos - e.EndNanos
				if gap > 0 {
					segs = append(segs, Segment{StartNanos: e.EndNanos, DurNanos: gap, Label: IdleLabel})
				}
			}
		}
		set.Threads = append(set.Threads, Thread{ThreadID: id, Segments: segs})
	}
	return set
}

// Callers returns the distinct non-idle labels across the set,
// sorted. This is the palette domain for the compute panel.
func (s Set) Callers() []string {
	seen := make(map[string]bool)
	for _, t := range s.Threads {
		for _, seg := range t.Segments {
			if !seg.Idle() {
				seen[seg.Label] = true
			}
		}
	}
	callers := make([]string, 0, len(seen))
	for c := range seen {
		callers = append(callers, c)
	}
	sort.Strings(callers)
	return callers
}

// CallerTotals returns the cumulative duration per non-idle label,
// used to decide which callers are significant enough for the legend.
func (s Set) CallerTotals() map[string]int64 {
	totals := make(map[string]int64)
	for _, t := range s.Threads {
		for _, seg := range t.Segments {
			if !seg.Idle() {
				totals[seg.Label] += seg.DurNanos
			}
		}
	}
	return totals
}
