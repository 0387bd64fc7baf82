// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/janniklinde/OOCExperiments/results"
)

// BarsOptions configures the grouped result chart.
type BarsOptions struct {
	Title  string
	XLabel string // default "JVM Memory Configuration"
	YLabel string // default "Average Runtime [s]"

	// MaxLegend keeps only the first MaxLegend modes in the legend.
	// Zero keeps all of them.
	MaxLegend int
}

var barWidth = vg.Points(18)

// ResultBars renders an aggregated results table as a grouped bar
// chart: one cluster per configuration, one bar per mode. NaN cells
// draw as full-height hatched placeholders so that "no data" cannot
// be mistaken for a zero runtime.
func ResultBars(t *results.Table, opts BarsOptions) (*Figure, error) {
	if len(t.Modes) == 0 || len(t.Confs) == 0 {
		return nil, errors.New("no data available to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	if p.X.Label.Text == "" {
		p.X.Label.Text = "JVM Memory Configuration"
	}
	p.Y.Label.Text = opts.YLabel
	if p.Y.Label.Text == "" {
		p.Y.Label.Text = "Average Runtime [s]"
	}
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	colors := Colors(t.Modes)
	decor := &barDecor{}
	n := len(t.Modes)
	for j, mode := range t.Modes {
		offset := vg.Length(float64(j)-float64(n-1)/2) * barWidth

		vals := t.Series(mode)
		plotVals := make(plotter.Values, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				decor.entries = append(decor.entries, barDecorEntry{
					x: float64(i), offset: offset, value: math.NaN(),
				})
				continue
			}
			plotVals[i] = v
			decor.entries = append(decor.entries, barDecorEntry{
				x: float64(i), offset: offset, value: v,
			})
		}

		bc, err := plotter.NewBarChart(plotVals, barWidth)
		if err != nil {
			return nil, err
		}
		bc.Color = colors[mode]
		bc.LineStyle.Width = 0
		bc.Offset = offset
		p.Add(bc)
		if opts.MaxLegend == 0 || j < opts.MaxLegend {
			p.Legend.Add(mode, bc)
		}
	}
	p.Add(decor)
	p.NominalX(t.Confs...)
	p.Y.Min = 0
	p.Legend.Top = true

	fig := &Figure{WidthIn: 8, HeightIn: 5}
	fig.Add(p, 1)
	return fig, nil
}

// barDecor draws the per-bar extras the stock BarChart cannot: value
// labels above bars, and hatched full-height placeholders for NaN
// cells.
type barDecor struct {
	entries []barDecorEntry
}

type barDecorEntry struct {
	x      float64 // cluster index in nominal-x coordinates
	offset vg.Length
	value  float64 // NaN means placeholder
}

var _ plot.Plotter = (*barDecor)(nil)

var placeholderStyle = draw.LineStyle{
	Color: color.NRGBA{0x99, 0x99, 0x99, 0xff},
	Width: vg.Points(0.75),
}

// Plot implements the plot.Plotter interface.
func (d *barDecor) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	sty := plt.X.Tick.Label
	sty.Font.Size = vg.Points(8)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YBottom

	for _, e := range d.entries {
		cx := trX(e.x) + e.offset
		if math.IsNaN(e.value) {
			d.placeholder(c, cx)
			continue
		}
		pt := vg.Point{X: cx, Y: trY(e.value) + vg.Points(3)}
		if c.Contains(pt) {
			c.FillText(sty, pt, fmt.Sprintf("%.2f", e.value))
		}
	}
}

func (d *barDecor) placeholder(c draw.Canvas, cx vg.Length) {
	x0, x1 := cx-barWidth/2, cx+barWidth/2
	y0, y1 := c.Min.Y, c.Max.Y

	c.StrokeLines(placeholderStyle, []vg.Point{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	})

	// 45 degree hatching, clipped to the placeholder box.
	h := y1 - y0
	step := vg.Points(6)
	for xs := x0 - h; xs < x1; xs += step {
		t0, t1 := 0.0, 1.0
		if xs < x0 {
			t0 = float64((x0 - xs) / h)
		}
		if xs+h > x1 {
			t1 = float64((x1 - xs) / h)
		}
		if t0 >= t1 {
			continue
		}
		c.StrokeLines(placeholderStyle, []vg.Point{
			{X: xs + h*vg.Length(t0), Y: y0 + h*vg.Length(t0)},
			{X: xs + h*vg.Length(t1), Y: y0 + h*vg.Length(t1)},
		})
	}
}
