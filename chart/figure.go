// Copyright 2024 The OOCExperiments Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const pngDPI = 200

// A Figure is a vertical stack of plots sharing one canvas. Panels
// are stacked top to bottom in the order they were added, each taking
// a share of the height proportional to its ratio.
type Figure struct {
	WidthIn  float64
	HeightIn float64

	panels []panel
}

type panel struct {
	p     *plot.Plot
	ratio float64
}

// Add appends a panel with the given height ratio.
func (f *Figure) Add(p *plot.Plot, ratio float64) {
	f.panels = append(f.panels, panel{p, ratio})
}

// WriteFile renders the figure to path. The image format is chosen by
// the file extension: .png (fixed 200 DPI), .svg, or .pdf.
func (f *Figure) WriteFile(path string) error {
	if len(f.panels) == 0 {
		return fmt.Errorf("figure has no panels")
	}

	w := vg.Length(f.WidthIn) * vg.Inch
	h := vg.Length(f.HeightIn) * vg.Inch

	var can vg.CanvasWriterTo
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(w, h),
			vgimg.UseDPI(pngDPI),
			vgimg.UseBackgroundColor(color.White),
		)}
	case ".svg":
		can = vgsvg.New(w, h)
	case ".pdf":
		can = vgpdf.New(w, h)
	default:
		return fmt.Errorf("unsupported output format %q (want .png, .svg, or .pdf)", ext)
	}

	dc := draw.New(can)
	total := 0.0
	for _, pn := range f.panels {
		total += pn.ratio
	}
	height := dc.Max.Y - dc.Min.Y
	top := dc.Max.Y
	for _, pn := range f.panels {
		bottom := top - vg.Length(pn.ratio/total)*height
		sub := draw.Canvas{
			Canvas: dc.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: dc.Min.X, Y: bottom},
				Max: vg.Point{X: dc.Max.X, Y: top},
			},
		}
		pn.p.Draw(sub)
		top = bottom
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
