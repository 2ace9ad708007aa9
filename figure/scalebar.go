// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package figure

import (
	"image/color"
	"strconv"

	"github.com/js-arias/treefig/config"
	"github.com/js-arias/treefig/layout"
)

// scaleWidth is the stroke width of the scale bar.
const scaleWidth = 2

// A ScaleBar is a reference length
// drawn below the tree.
type ScaleBar struct {
	// Length of the bar, in tree units.
	Length float64

	// Y is the vertical position of the bar.
	Y float64

	// Label is the formatted length.
	Label string

	// LabelY is the vertical position
	// of the top of the label.
	LabelY float64

	Color color.RGBA
}

// NewScaleBar returns the scale bar of a tree.
// The length of the bar is a fraction
// of the largest x coordinate,
// and it is placed below the lowest leaf.
// If the largest x coordinate is 0,
// there is no meaningful length,
// and it returns false.
func NewScaleBar(l *layout.Layout, cfg config.Config) (ScaleBar, bool) {
	length := l.MaxX() * cfg.ScaleBarFraction
	if length <= 0 {
		return ScaleBar{}, false
	}

	// the lowest leaf is always at 0
	y := -cfg.ScaleBarOffset
	return ScaleBar{
		Length: length,
		Y:      y,
		Label:  strconv.FormatFloat(length, 'f', cfg.ScaleBarDecimals, 64),
		LabelY: y - cfg.ScaleBarOffset/2,
		Color:  cfg.Neutral,
	}, true
}

// Line returns the line of the scale bar.
func (sb ScaleBar) Line() Line {
	return Line{
		From:  Point{X: 0, Y: sb.Y},
		To:    Point{X: sb.Length, Y: sb.Y},
		Color: sb.Color,
		Width: scaleWidth,
	}
}

// Text returns the label of the scale bar,
// centered below the bar.
func (sb ScaleBar) Text() Text {
	return Text{
		At:    Point{X: sb.Length / 2, Y: sb.LabelY},
		Text:  sb.Label,
		Color: sb.Color,
		Size:  scaleSize,
		Align: Center,
		Bold:  true,
		Top:   true,
	}
}
