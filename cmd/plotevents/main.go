// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotevents renders the event logs of one experiment run as a
// Gantt-style timeline image: one lane per thread on the compute
// panel, with disk-read, disk-write, and cache-size tracks aligned
// above it on a shared time axis.
//
// Usage:
//
//	plotevents [options] [ComputeEventLog.csv]
//
// The compute log is required; disk and cache logs are optional and
// degrade to an empty track with a warning when missing or empty.
// All logs share the case-sensitive header ThreadID, CallerID,
// StartNanos, EndNanos (disk logs may carry an extra NumBytes column,
// which is ignored).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/janniklinde/OOCExperiments/chart"
	"github.com/janniklinde/OOCExperiments/eventlog"
	"github.com/janniklinde/OOCExperiments/timeline"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: plotevents [options] [ComputeEventLog.csv]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagDiskRead    = flag.String("disk-read-csv", "DiskReadEventLog.csv", "disk read event log `path` (optional input)")
	flagDiskWrite   = flag.String("disk-write-csv", "DiskWriteEventLog.csv", "disk write event log `path` (optional input)")
	flagCache       = flag.String("cache-csv", "CacheSizeLog.csv", "cache size log `path` (optional input)")
	flagRunSettings = flag.String("run-settings-csv", "RunSettings.csv", "run settings `path` (optional input)")
	flagOutput      = flag.String("output", "timeline.png", "output image `path` (.png, .svg, or .pdf)")
	flagUnit        = flag.String("unit", "s", "time `unit` for the x-axis: ns, us, ms, or s")
	flagShowIdle    = flag.Bool("show-idle", false, "draw idle gaps as gray bars instead of leaving them blank")
	flagLegendMin   = flag.Int64("legend-min", 0, "minimum cumulative `nanoseconds` for a caller to appear in the legend")
	flagTitle       = flag.String("title", "", "compute panel title")
)

func main() {
	log.SetPrefix("plotevents: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
	}

	computePath := "ComputeEventLog.csv"
	if flag.NArg() == 1 {
		computePath = flag.Arg(0)
	}

	unit, err := chart.ParseUnit(*flagUnit)
	if err != nil {
		log.Fatal(err)
	}

	compute, err := eventlog.ReadEntries(computePath)
	if err != nil {
		log.Fatal(err)
	}

	reads := optionalEntries(*flagDiskRead)
	writes := optionalEntries(*flagDiskWrite)

	var samples []eventlog.CacheSample
	samples, err = eventlog.ReadCacheSamples(*flagCache)
	if err != nil {
		if !eventlog.Degradable(err) {
			log.Fatal(err)
		}
		log.Printf("warning: %v; skipping", err)
	}

	var settings *eventlog.RunSettings
	if len(samples) > 0 {
		rs, err := eventlog.ReadRunSettings(*flagRunSettings)
		switch {
		case err == nil:
			settings = &rs
		case eventlog.Degradable(err):
			log.Printf("warning: %v; drawing cache track without limit lines", err)
		default:
			log.Fatal(err)
		}
	}

	set := timeline.Build(compute, *flagShowIdle)
	fig, err := chart.Timeline(set, reads, writes, samples, settings, chart.TimelineOptions{
		Unit:           unit,
		Title:          *flagTitle,
		LegendMinNanos: *flagLegendMin,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := fig.WriteFile(*flagOutput); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", *flagOutput)
}

func optionalEntries(path string) []eventlog.TimeEntry {
	entries, err := eventlog.ReadEntries(path)
	if err != nil {
		if !eventlog.Degradable(err) {
			log.Fatal(err)
		}
		log.Printf("warning: %v; skipping", err)
		return nil
	}
	return entries
}
