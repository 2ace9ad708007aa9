// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package figure implements the drawing commands
// of a rectangular tree figure.
//
// A figure is made of lines (the branches of the tree
// and the scale bar),
// rectangles (the side bars that mark the color groups),
// and text (the scale bar label and optional leaf names).
// All positions are given in tree units:
// x is the distance from the root,
// and y is the rank of the leaves,
// starting at 0 for the lowest leaf.
//
// Any back-end that implements the Canvas interface
// can draw a figure.
package figure

import (
	"image/color"

	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/layout"
	"github.com/js-arias/treefig/tree"
)

// A Point is a position in tree units.
type Point struct {
	X, Y float64
}

// A Line is a line segment.
type Line struct {
	From, To Point
	Color    color.RGBA

	// Width is the stroke width in points.
	Width float64
}

// A Rect is a filled rectangle.
type Rect struct {
	// Min is the lower left corner.
	Min           Point
	Width, Height float64
	Color         color.RGBA

	// Alpha is the opacity of the fill,
	// between 0 and 1.
	Alpha float64
}

// Align is the horizontal alignment of a text.
type Align int

// Valid alignments.
const (
	Left Align = iota
	Center
)

// A Text is a text label.
type Text struct {
	At    Point
	Text  string
	Color color.RGBA

	// Size is the font size in points.
	Size   float64
	Align  Align
	Bold   bool
	Italic bool

	// If Top is true,
	// the top of the text is placed at the point;
	// otherwise the text is vertically centered.
	Top bool
}

// Canvas is a rendering back-end.
type Canvas interface {
	Line(Line) error
	Rect(Rect) error
	Text(Text) error
}

// Font sizes in points.
const (
	labelSize = 10
	scaleSize = 9
)

// A Figure is a set of drawing commands
// for a tree.
type Figure struct {
	Layout *layout.Layout

	Lines []Line
	Rects []Rect
	Texts []Text

	// Colored runs of leaves.
	Runs []Run

	// Scale bar,
	// if HasScale is false,
	// the figure has no scale bar.
	Scale    ScaleBar
	HasScale bool

	// Min and Max are the corners
	// of the area that contains the figure.
	Min, Max Point
}

// New creates the drawing commands
// of a tree figure.
//
// The configuration is validated before the tree is read.
// If the configuration is not valid,
// it returns a *config.ConfigurationError.
// If the tree is malformed,
// it returns a *tree.MalformedTreeError.
func New(t *tree.Tree, cfg config.Config) (*Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l, err := layout.New(t)
	if err != nil {
		return nil, err
	}

	f := &Figure{
		Layout: l,
		Lines:  Branches(l, cfg),
		Runs:   Runs(l, cfg),
	}
	f.Rects = SideBars(l, f.Runs, cfg)
	if sb, ok := NewScaleBar(l, cfg); ok {
		f.Scale = sb
		f.HasScale = true
		f.Lines = append(f.Lines, sb.Line())
		f.Texts = append(f.Texts, sb.Text())
	}
	if cfg.Labels {
		f.Texts = append(f.Texts, Labels(l, cfg)...)
	}
	f.setBounds(cfg)
	return f, nil
}

// Labels returns the names of the leaves,
// aligned to the right of the side bars.
func Labels(l *layout.Layout, cfg config.Config) []Text {
	maxX := l.MaxX()
	x := maxX*(cfg.SideBarOffset+cfg.SideBarWidth) + maxX*0.01
	t := l.Tree()

	var txt []Text
	for _, id := range l.Leaves() {
		if t.Name(id) == "" {
			continue
		}
		txt = append(txt, Text{
			At:     Point{X: x, Y: l.Y(id)},
			Text:   t.Name(id),
			Color:  cfg.Neutral,
			Size:   labelSize,
			Italic: true,
		})
	}
	return txt
}

func (f *Figure) setBounds(cfg config.Config) {
	maxX := f.Layout.MaxX()
	width := maxX
	if width == 0 {
		width = 1
	}

	f.Min = Point{X: -0.02 * width, Y: -0.5}
	f.Max = Point{X: 1.15 * width, Y: f.Layout.MaxY() + 0.5}
	if right := maxX * (cfg.SideBarOffset + cfg.SideBarWidth); right > f.Max.X {
		f.Max.X = right
	}
	if f.HasScale {
		// room for the label
		if y := f.Scale.LabelY - 0.35; y < f.Min.Y {
			f.Min.Y = y
		}
	}
}

// Draw draws the figure on a canvas.
// Side bars are drawn first,
// then lines,
// and then text.
// Errors from the canvas are returned unchanged.
func (f *Figure) Draw(c Canvas) error {
	for _, r := range f.Rects {
		if err := c.Rect(r); err != nil {
			return err
		}
	}
	for _, ln := range f.Lines {
		if err := c.Line(ln); err != nil {
			return err
		}
	}
	for _, tx := range f.Texts {
		if err := c.Text(tx); err != nil {
			return err
		}
	}
	return nil
}
