// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A rect is an axis-aligned filled rectangle in data coordinates.
type rect struct {
	x0, x1, y0, y1 float64
	color          color.Color
}

// rectBars draws filled rectangles without outlines. It is the
// workhorse behind the Gantt lanes: one rect per interval segment.
type rectBars struct {
	rects []rect
}

var _ plot.Plotter = (*rectBars)(nil)
var _ plot.DataRanger = (*rectBars)(nil)

// Plot implements the plot.Plotter interface.
func (b *rectBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, r := range b.rects {
		pts := []vg.Point{
			{X: trX(r.x0), Y: trY(r.y0)},
			{X: trX(r.x1), Y: trY(r.y0)},
			{X: trX(r.x1), Y: trY(r.y1)},
			{X: trX(r.x0), Y: trY(r.y1)},
		}
		c.FillPolygon(r.color, c.ClipPolygonXY(pts))
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *rectBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, r := range b.rects {
		xmin = math.Min(xmin, r.x0)
		xmax = math.Max(xmax, r.x1)
		ymin = math.Min(ymin, r.y0)
		ymax = math.Max(ymax, r.y1)
	}
	return
}

// A swatch is a legend thumbnail: a plain filled box of one color.
type swatch struct {
	color color.Color
}

var _ plot.Thumbnailer = swatch{}

// Thumbnail implements the plot.Thumbnailer interface.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	}
	c.FillPolygon(s.color, pts)
}
