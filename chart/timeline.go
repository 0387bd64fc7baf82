// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/janniklinde/OOCExperiments/eventlog"
	"github.com/janniklinde/OOCExperiments/timeline"
)

// TimelineOptions configures the timeline figure.
type TimelineOptions struct {
	Unit  Unit
	Title string // compute panel title; empty means "Thread timelines"

	// LegendMinNanos drops callers whose cumulative duration is
	// below the cutoff from the legend. Zero keeps every caller.
	LegendMinNanos int64
}

// Lane geometry, in data units per panel. The numbers only matter
// relative to each other; they set bar thickness versus spacing.
type laneGeom struct {
	base, height, gap float64
}

var (
	diskGeom    = laneGeom{base: 3, height: 3, gap: 2}
	computeGeom = laneGeom{base: 6, height: 4, gap: 3}
)

// Timeline builds the multi-panel timeline figure: disk-read and
// disk-write tracks, an optional cache track, and the per-thread
// compute panel, all sharing one x-range normalized to the global
// origin. The global origin and end cover every input series.
func Timeline(set timeline.Set, reads, writes []eventlog.TimeEntry, samples []eventlog.CacheSample, settings *eventlog.RunSettings, opts TimelineOptions) (*Figure, error) {
	readSet := timeline.Build(reads, false)
	writeSet := timeline.Build(writes, false)
	origin, end := globalBounds(set, []timeline.Set{readSet, writeSet}, samples)

	span := opts.Unit.Scale(end - origin)
	margin := span * 0.02
	if span <= 0 {
		margin = 1
	}
	xmax := span + margin

	fig := &Figure{WidthIn: 12}

	readPanel, err := trackPanel("Disk Reads", readSet, diskReadColor, origin, xmax, opts.Unit)
	if err != nil {
		return nil, err
	}
	fig.Add(readPanel, trackRatio(readSet))

	writePanel, err := trackPanel("Disk Writes", writeSet, diskWriteColor, origin, xmax, opts.Unit)
	if err != nil {
		return nil, err
	}
	fig.Add(writePanel, trackRatio(writeSet))

	if len(samples) > 0 {
		cp, err := cachePanel(samples, settings, origin, xmax, opts.Unit)
		if err != nil {
			return nil, err
		}
		fig.Add(cp, 2.5)
	}

	fig.Add(computePanel(set, origin, xmax, opts), computeRatio(set))

	total := 0.0
	for _, pn := range fig.panels {
		total += pn.ratio
	}
	fig.HeightIn = 1.2 * total
	if fig.HeightIn < 5 {
		fig.HeightIn = 5
	}
	return fig, nil
}

// globalBounds merges the time bounds of every non-empty input series
// so all panels share one origin. Empty sets contribute nothing; in
// particular an empty compute set must not drag the origin to zero.
func globalBounds(compute timeline.Set, tracks []timeline.Set, samples []eventlog.CacheSample) (origin, end int64) {
	have := false
	merge := func(min, max int64) {
		if !have {
			origin, end = min, max
			have = true
			return
		}
		if min < origin {
			origin = min
		}
		if max > end {
			end = max
		}
	}
	if len(compute.Threads) > 0 {
		merge(compute.MinStartNanos, compute.MaxEndNanos)
	}
	for _, s := range tracks {
		if len(s.Threads) > 0 {
			merge(s.MinStartNanos, s.MaxEndNanos)
		}
	}
	if min, max, ok := eventlog.SampleBounds(samples); ok {
		merge(min, max)
	}
	return origin, end
}

func trackRatio(s timeline.Set) float64 {
	r := 0.6 * float64(len(s.Threads))
	if r < 1.5 {
		r = 1.5
	}
	return r
}

func computeRatio(s timeline.Set) float64 {
	r := 0.7 * float64(len(s.Threads))
	if r < 3 {
		r = 3
	}
	return r
}

// lanes converts a thread set into rectangles and y ticks, one lane
// per thread, thread IDs ascending from the bottom of the panel.
func lanes(s timeline.Set, pick func(label string) color.Color, origin int64, u Unit, geom laneGeom) (*rectBars, []plot.Tick, float64) {
	bars := &rectBars{}
	ticks := make([]plot.Tick, 0, len(s.Threads))
	for i, th := range s.Threads {
		y := geom.base + float64(i)*(geom.height+geom.gap)
		ticks = append(ticks, plot.Tick{
			Value: y + geom.height/2,
			Label: strconv.Itoa(th.ThreadID),
		})
		for _, seg := range th.Segments {
			x0 := u.Scale(seg.StartNanos - origin)
			bars.rects = append(bars.rects, rect{
				x0:    x0,
				x1:    x0 + u.Scale(seg.DurNanos),
				y0:    y,
				y1:    y + geom.height,
				color: pick(seg.Label),
			})
		}
	}
	ymax := geom.base + float64(len(s.Threads))*(geom.height+geom.gap)
	return bars, ticks, ymax
}

func trackPanel(label string, s timeline.Set, c color.Color, origin int64, xmax float64, u Unit) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = label
	p.X.Min, p.X.Max = 0, xmax
	p.X.Tick.Marker = unlabeledTicks{plot.DefaultTicks{}}
	addGrid(p)

	if len(s.Threads) == 0 {
		p.Y.Min, p.Y.Max = 0, 1
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: xmax / 2, Y: 0.5}},
			Labels: []string{"No events"},
		})
		if err != nil {
			return nil, err
		}
		p.Add(labels)
		return p, nil
	}

	bars, ticks, ymax := lanes(s, func(string) color.Color { return c }, origin, u, diskGeom)
	p.Y.Min, p.Y.Max = 0, ymax
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Add(bars)
	return p, nil
}

func computePanel(s timeline.Set, origin int64, xmax float64, opts TimelineOptions) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Thread timelines"
	}
	p.X.Label.Text = opts.Unit.AxisLabel()
	p.X.Min, p.X.Max = 0, xmax
	addGrid(p)

	colors := Colors(s.Callers())
	pick := func(label string) color.Color {
		if label == timeline.IdleLabel {
			return idleColor
		}
		return colors[label]
	}

	bars, ticks, ymax := lanes(s, pick, origin, opts.Unit, computeGeom)
	p.Y.Min, p.Y.Max = 0, ymax
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.Add(bars)

	totals := s.CallerTotals()
	hasIdle := false
	for _, th := range s.Threads {
		for _, seg := range th.Segments {
			if seg.Idle() {
				hasIdle = true
			}
		}
	}
	for _, caller := range s.Callers() {
		if totals[caller] < opts.LegendMinNanos {
			continue
		}
		p.Legend.Add(caller, swatch{colors[caller]})
	}
	if hasIdle {
		p.Legend.Add(timeline.IdleLabel, swatch{idleColor})
	}
	p.Legend.Top = true
	return p
}

func cachePanel(samples []eventlog.CacheSample, settings *eventlog.RunSettings, origin int64, xmax float64, u Unit) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Cache [bytes]"
	p.X.Min, p.X.Max = 0, xmax
	p.X.Tick.Marker = unlabeledTicks{plot.DefaultTicks{}}
	addGrid(p)

	sizeXYs := make(plotter.XYs, len(samples))
	evictXYs := make(plotter.XYs, len(samples))
	for i, s := range samples {
		x := u.Scale(s.TimestampNanos - origin)
		sizeXYs[i] = plotter.XY{X: x, Y: float64(s.CacheSizeBytes)}
		evictXYs[i] = plotter.XY{X: x, Y: float64(s.ScheduledEvictionBytes)}
	}

	sizeLine, err := plotter.NewLine(sizeXYs)
	if err != nil {
		return nil, err
	}
	sizeLine.LineStyle.Color = cacheSizeColor
	p.Add(sizeLine)
	p.Legend.Add("cache size", sizeLine)

	evictLine, err := plotter.NewLine(evictXYs)
	if err != nil {
		return nil, err
	}
	evictLine.LineStyle.Color = evictionColor
	p.Add(evictLine)
	p.Legend.Add("scheduled eviction", evictLine)

	if settings != nil {
		if err := addLimitLine(p, "hard limit", float64(settings.CacheHardLimitBytes), hardLimitColor, xmax); err != nil {
			return nil, err
		}
		if err := addLimitLine(p, "eviction limit", float64(settings.CacheEvictionLimitBytes), softLimitColor, xmax); err != nil {
			return nil, err
		}
	}
	p.Legend.Top = true
	return p, nil
}

func addLimitLine(p *plot.Plot, name string, y float64, c color.Color, xmax float64) error {
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: xmax, Y: y}})
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(line)
	p.Legend.Add(name, line)
	return nil
}

func addGrid(p *plot.Plot) {
	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)
}

// unlabeledTicks keeps a ticker's tick marks but blanks the labels,
// for upper panels that share the bottom panel's x-axis.
type unlabeledTicks struct {
	plot.Ticker
}

func (t unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}
