// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventlog reads the CSV logs emitted by the experiment
// harness: per-thread compute and disk I/O intervals, cache-size
// samples, and the run-settings file.
package eventlog

import (
	"fmt"
	"strconv"

	"github.com/janniklinde/OOCExperiments/internal/csvtab"
)

// A TimeEntry is one recorded interval on a thread, from a compute or
// disk event log. Intervals with EndNanos <= StartNanos can appear in
// logs from crashed runs; they are kept here and dropped during
// segment building.
type TimeEntry struct {
	ThreadID   int
	CallerID   string
	StartNanos int64
	EndNanos   int64
}

// A CacheSample is a point-in-time snapshot of the cache, not an
// interval.
type CacheSample struct {
	TimestampNanos         int64
	ScheduledEvictionBytes int64
	CacheSizeBytes         int64
}

// RunSettings holds the cache limits a run was configured with.
type RunSettings struct {
	CacheHardLimitBytes     int64
	CacheEvictionLimitBytes int64
}

// Degradable reports whether err may be tolerated for an optional
// input file (missing, empty, or headed but row-less). See
// csvtab.Degradable.
func Degradable(err error) bool {
	return csvtab.Degradable(err)
}

// ReadEntries reads a compute or disk event log. Disk logs carry an
// extra NumBytes column, which is ignored.
func ReadEntries(path string) ([]TimeEntry, error) {
	t, err := csvtab.ReadFile(path, "ThreadID", "CallerID", "StartNanos", "EndNanos")
	if err != nil {
		return nil, err
	}
	entries := make([]TimeEntry, 0, len(t.Rows))
	for i, row := range t.Rows {
		tid, err := strconv.Atoi(t.Col(row, "ThreadID"))
		if err != nil {
			return nil, rowErr(path, i, "ThreadID", err)
		}
		start, err := strconv.ParseInt(t.Col(row, "StartNanos"), 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "StartNanos", err)
		}
		end, err := strconv.ParseInt(t.Col(row, "EndNanos"), 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "EndNanos", err)
		}
		entries = append(entries, TimeEntry{
			ThreadID:   tid,
			CallerID:   t.Col(row, "CallerID"),
			StartNanos: start,
			EndNanos:   end,
		})
	}
	return entries, nil
}

// ReadCacheSamples reads a cache-size log.
func ReadCacheSamples(path string) ([]CacheSample, error) {
	t, err := csvtab.ReadFile(path, "Timestamp", "ScheduledEvictionSize", "CacheSize")
	if err != nil {
		return nil, err
	}
	samples := make([]CacheSample, 0, len(t.Rows))
	for i, row := range t.Rows {
		ts, err := strconv.ParseInt(t.Col(row, "Timestamp"), 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "Timestamp", err)
		}
		sched, err := strconv.ParseInt(t.Col(row, "ScheduledEvictionSize"), 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "ScheduledEvictionSize", err)
		}
		size, err := strconv.ParseInt(t.Col(row, "CacheSize"), 10, 64)
		if err != nil {
			return nil, rowErr(path, i, "CacheSize", err)
		}
		samples = append(samples, CacheSample{
			TimestampNanos:         ts,
			ScheduledEvictionBytes: sched,
			CacheSizeBytes:         size,
		})
	}
	return samples, nil
}

// ReadRunSettings reads the run-settings file. Only the first data
// row is used; the harness writes exactly one.
func ReadRunSettings(path string) (RunSettings, error) {
	var rs RunSettings
	t, err := csvtab.ReadFile(path, "CacheHardLimit", "CacheEvictionLimit")
	if err != nil {
		return rs, err
	}
	row := t.Rows[0]
	rs.CacheHardLimitBytes, err = strconv.ParseInt(t.Col(row, "CacheHardLimit"), 10, 64)
	if err != nil {
		return rs, rowErr(path, 0, "CacheHardLimit", err)
	}
	rs.CacheEvictionLimitBytes, err = strconv.ParseInt(t.Col(row, "CacheEvictionLimit"), 10, 64)
	if err != nil {
		return rs, rowErr(path, 0, "CacheEvictionLimit", err)
	}
	return rs, nil
}

func rowErr(path string, row int, col string, err error) error {
	// Row numbers are reported 1-based counting the header line, the
	// way spreadsheet tools display them.
	return fmt.Errorf("%s: row %d: bad %s: %w", path, row+2, col, err)
}

// Bounds returns the minimum start and maximum end over entries,
// including malformed ones. ok is false when entries is empty.
func Bounds(entries []TimeEntry) (min, max int64, ok bool) {
	if len(entries) == 0 {
		return 0, 0, false
	}
	min, max = entries[0].StartNanos, entries[0].EndNanos
	for _, e := range entries[1:] {
		if e.StartNanos < min {
			min = e.StartNanos
		}
		if e.EndNanos > max {
			max = e.EndNanos
		}
	}
	return min, max, true
}

// SampleBounds returns the minimum and maximum timestamp over cache
// samples. ok is false when samples is empty.
func SampleBounds(samples []CacheSample) (min, max int64, ok bool) {
	if len(samples) == 0 {
		return 0, 0, false
	}
	min, max = samples[0].TimestampNanos, samples[0].TimestampNanos
	for _, s := range samples[1:] {
		if s.TimestampNanos < min {
			min = s.TimestampNanos
		}
		if s.TimestampNanos > max {
			max = s.TimestampNanos
		}
	}
	return min, max, true
}
