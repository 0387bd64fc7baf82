// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotresults renders every experiment's results table under a root
// directory as a grouped bar chart saved next to its source: one bar
// cluster per configuration, one bar per mode. Repetition columns
// (rep1 or rep1..rep3) collapse to their mean; a missing or NaN value
// marks a failed run and draws as a hatched placeholder.
//
// Usage:
//
//	plotresults [options]
//
// Every direct subdirectory of -experiments-root that contains a
// results.csv yields one chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/janniklinde/OOCExperiments/chart"
	"github.com/janniklinde/OOCExperiments/results"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: plotresults [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagRoot       = flag.String("experiments-root", "experiments", "`directory` containing experiment folders with results.csv files")
	flagOutputName = flag.String("output-name", "results.png", "`filename` for the chart inside each experiment directory")
	flagTitle      = flag.String("title", "", "chart title (default \"<experiment> Results\")")
	flagOrder      = flag.String("order", "sorted", "mode/configuration `order`: sorted or first-seen")
	flagOnDup      = flag.String("on-duplicate", "error", "`policy` for duplicate (mode, conf) rows: error or overwrite")
	flagMemSort    = flag.Bool("mem-sort", false, "order configurations by parsed memory size (4g after 512m)")
	flagMaxLegend  = flag.Int("max-legend", 0, "keep at most `n` modes in the legend (0 = all)")
	flagHTML       = flag.Bool("html", false, "also write an HTML table next to each chart")
)

var orderNames = map[string]results.Order{
	"sorted":     results.OrderSorted,
	"first-seen": results.OrderFirstSeen,
}

var dupNames = map[string]results.DupPolicy{
	"error":     results.DupError,
	"overwrite": results.DupOverwrite,
}

func main() {
	log.SetPrefix("plotresults: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	order, orderOK := orderNames[*flagOrder]
	dup, dupOK := dupNames[*flagOnDup]
	if flag.NArg() != 0 || !orderOK || !dupOK {
		flag.Usage()
	}
	opts := results.Options{Order: order, Dup: dup, MemSort: *flagMemSort}

	dirs, err := os.ReadDir(*flagRoot)
	if err != nil {
		log.Fatal(err)
	}

	count := 0
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		csvPath := filepath.Join(*flagRoot, dir.Name(), "results.csv")
		if _, err := os.Stat(csvPath); err != nil {
			continue
		}
		if err := plotOne(csvPath, dir.Name(), opts); err != nil {
			log.Fatal(err)
		}
		count++
	}
	if count == 0 {
		log.Fatalf("no experiments with results.csv found under %q", *flagRoot)
	}
}

func plotOne(csvPath, name string, opts results.Options) error {
	rows, err := results.ReadTable(csvPath)
	if err != nil {
		return err
	}
	table, err := results.Aggregate(rows, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", csvPath, err)
	}

	title := *flagTitle
	if title == "" {
		title = name + " Results"
	}

	fig, err := chart.ResultBars(table, chart.BarsOptions{
		Title:     title,
		MaxLegend: *flagMaxLegend,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", csvPath, err)
	}

	outPath := filepath.Join(filepath.Dir(csvPath), *flagOutputName)
	if err := fig.WriteFile(outPath); err != nil {
		return err
	}
	fmt.Printf("Saved plot to %s\n", outPath)

	if *flagHTML {
		htmlPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".html"
		f, err := os.Create(htmlPath)
		if err != nil {
			return err
		}
		if err := results.FormatHTML(f, table, title); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Saved table to %s\n", htmlPath)
	}
	return nil
}
