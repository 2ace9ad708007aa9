// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render implements back-ends
// to draw tree figures.
package render

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/js-arias/treefig/figure"
)

// Size of the characters in pixels,
// as a fraction of the font size.
const charWidth = 0.6

// SVGCanvas is a figure.Canvas
// that writes SVG elements.
type SVGCanvas struct {
	e *xml.Encoder

	minX, maxY float64
	sx, sy     float64
	margin     float64
}

// SVG writes a figure as an SVG image.
// Width and height are the size in pixels
// of the area used by the tree.
// The image will be wider
// if the figure contains leaf labels.
func SVG(w io.Writer, f *figure.Figure, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %.1fx%.1f", width, height)
	}

	const margin = 5
	var textSz float64
	for _, tx := range f.Texts {
		if tx.Align != figure.Left {
			continue
		}
		if sz := float64(utf8.RuneCountInString(tx.Text)) * tx.Size * charWidth; sz > textSz {
			textSz = sz
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(int(height + 2*margin))},
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(int(width + textSz + 2*margin))},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	if err := e.EncodeToken(svg); err != nil {
		return err
	}

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
		},
	}
	if err := e.EncodeToken(g); err != nil {
		return err
	}

	c := &SVGCanvas{
		e:      e,
		minX:   f.Min.X,
		maxY:   f.Max.Y,
		sx:     width / (f.Max.X - f.Min.X),
		sy:     height / (f.Max.Y - f.Min.Y),
		margin: margin,
	}
	if err := f.Draw(c); err != nil {
		return err
	}

	if err := e.EncodeToken(g.End()); err != nil {
		return err
	}
	if err := e.EncodeToken(svg.End()); err != nil {
		return err
	}
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func (c *SVGCanvas) x(v float64) float64 {
	return (v-c.minX)*c.sx + c.margin
}

func (c *SVGCanvas) y(v float64) float64 {
	return (c.maxY-v)*c.sy + c.margin
}

// Line implements figure.Canvas.
func (c *SVGCanvas) Line(ln figure.Line) error {
	el := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: formatPix(c.x(ln.From.X))},
			{Name: xml.Name{Local: "y1"}, Value: formatPix(c.y(ln.From.Y))},
			{Name: xml.Name{Local: "x2"}, Value: formatPix(c.x(ln.To.X))},
			{Name: xml.Name{Local: "y2"}, Value: formatPix(c.y(ln.To.Y))},
			{Name: xml.Name{Local: "stroke"}, Value: rgb(ln.Color)},
			{Name: xml.Name{Local: "stroke-width"}, Value: formatPix(ln.Width)},
		},
	}
	if err := c.e.EncodeToken(el); err != nil {
		return err
	}
	return c.e.EncodeToken(el.End())
}

// Rect implements figure.Canvas.
func (c *SVGCanvas) Rect(r figure.Rect) error {
	// in SVG the origin of a rectangle
	// is the top left corner
	el := xml.StartElement{
		Name: xml.Name{Local: "rect"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x"}, Value: formatPix(c.x(r.Min.X))},
			{Name: xml.Name{Local: "y"}, Value: formatPix(c.y(r.Min.Y + r.Height))},
			{Name: xml.Name{Local: "width"}, Value: formatPix(r.Width * c.sx)},
			{Name: xml.Name{Local: "height"}, Value: formatPix(r.Height * c.sy)},
			{Name: xml.Name{Local: "fill"}, Value: rgb(r.Color)},
			{Name: xml.Name{Local: "fill-opacity"}, Value: strconv.FormatFloat(r.Alpha, 'f', -1, 64)},
			{Name: xml.Name{Local: "stroke"}, Value: "none"},
		},
	}
	if err := c.e.EncodeToken(el); err != nil {
		return err
	}
	return c.e.EncodeToken(el.End())
}

// Text implements figure.Canvas.
func (c *SVGCanvas) Text(tx figure.Text) error {
	el := xml.StartElement{
		Name: xml.Name{Local: "text"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x"}, Value: formatPix(c.x(tx.At.X))},
			{Name: xml.Name{Local: "y"}, Value: formatPix(c.y(tx.At.Y))},
			{Name: xml.Name{Local: "fill"}, Value: rgb(tx.Color)},
			{Name: xml.Name{Local: "font-size"}, Value: formatPix(tx.Size)},
		},
	}
	if tx.Align == figure.Center {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "text-anchor"}, Value: "middle"})
	}
	if tx.Top {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "dominant-baseline"}, Value: "hanging"})
	} else {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "dominant-baseline"}, Value: "middle"})
	}
	if tx.Bold {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "font-weight"}, Value: "bold"})
	}
	if tx.Italic {
		el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "font-style"}, Value: "italic"})
	}

	if err := c.e.EncodeToken(el); err != nil {
		return err
	}
	if err := c.e.EncodeToken(xml.CharData(tx.Text)); err != nil {
		return err
	}
	return c.e.EncodeToken(el.End())
}

func formatPix(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
