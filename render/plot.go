// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/js-arias/treefig/figure"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Formats are the image formats
// supported by the plot back-end.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// A treePlot is a tree figure
// drawn as a plot.
type treePlot struct {
	f *figure.Figure
}

// DataRange implements the plot.DataRanger interface.
func (tp *treePlot) DataRange() (xMin, xMax, yMin, yMax float64) {
	return tp.f.Min.X, tp.f.Max.X, tp.f.Min.Y, tp.f.Max.Y
}

// Plot implements the plot.Plotter interface.
func (tp *treePlot) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	pc := &plotCanvas{
		c:     c,
		trX:   trX,
		trY:   trY,
		style: plt.X.Tick.Label,
	}

	// a plot canvas never fails
	tp.f.Draw(pc)
}

// Plot returns a figure as a plot
// without axes.
func Plot(f *figure.Figure) *plot.Plot {
	p := plot.New()
	p.HideAxes()
	p.Add(&treePlot{f: f})
	return p
}

// Write writes a figure as an image
// of the given size,
// in the given format.
func Write(w io.Writer, f *figure.Figure, width, height vg.Length, format string) error {
	format = strings.ToLower(format)
	if !validFormat(format) {
		return fmt.Errorf("unknown image format %q", format)
	}

	p := Plot(f)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(w); err != nil {
		return err
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// A plotCanvas is a figure.Canvas
// that draws on a plot canvas.
type plotCanvas struct {
	c        draw.Canvas
	trX, trY func(float64) vg.Length
	style    text.Style
}

// Line implements figure.Canvas.
func (pc *plotCanvas) Line(ln figure.Line) error {
	sty := draw.LineStyle{
		Color: ln.Color,
		Width: vg.Points(ln.Width),
	}
	pc.c.StrokeLine2(sty, pc.trX(ln.From.X), pc.trY(ln.From.Y), pc.trX(ln.To.X), pc.trY(ln.To.Y))
	return nil
}

// Rect implements figure.Canvas.
func (pc *plotCanvas) Rect(r figure.Rect) error {
	x0, x1 := pc.trX(r.Min.X), pc.trX(r.Min.X+r.Width)
	y0, y1 := pc.trY(r.Min.Y), pc.trY(r.Min.Y+r.Height)
	pts := []vg.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	}
	fill := color.NRGBA{R: r.Color.R, G: r.Color.G, B: r.Color.B, A: uint8(r.Alpha * 255)}
	pc.c.FillPolygon(fill, pts)
	return nil
}

// Text implements figure.Canvas.
func (pc *plotCanvas) Text(tx figure.Text) error {
	sty := pc.style
	sty.Color = tx.Color
	sty.Font.Size = vg.Points(tx.Size)
	sty.XAlign = text.XLeft
	if tx.Align == figure.Center {
		sty.XAlign = text.XCenter
	}
	sty.YAlign = text.YCenter
	if tx.Top {
		sty.YAlign = text.YTop
	}
	if tx.Bold {
		sty.Font.Weight = xfont.WeightBold
	}
	if tx.Italic {
		sty.Font.Style = xfont.StyleItalic
	}

	pt := vg.Point{X: pc.trX(tx.At.X), Y: pc.trY(tx.At.Y)}
	pc.c.FillText(sty, pt, tx.Text)
	return nil
}
