// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements the settings
// of a tree figure.
//
// Settings can be read from YAML or TOML files.
// Here is an example of a YAML settings file:
//
//	color_groups:
//	  A: "#d3d3d3"
//	  B: lightgreen
//	  C: 255, 255, 153
//	side_bar_offset_fraction: 1.05
//	side_bar_width_fraction: 0.03
//	scale_bar_fraction: 0.1
//	labels: true
//
// The order of the color groups is the order
// in which the prefixes are matched.
package config

import (
	"fmt"
	"image/color"
	"math"

	"github.com/js-arias/treefig/colorkey"
)

// Config is the set of settings of a tree figure.
type Config struct {
	// Colors is the color key of the leaves.
	Colors *colorkey.Key

	// Palette is the color scheme
	// for groups with "auto" colors.
	Palette string

	// Horizontal position of the side bars,
	// as a fraction of the largest x coordinate.
	SideBarOffset float64

	// Width of the side bars,
	// as a fraction of the largest x coordinate.
	SideBarWidth float64

	// Vertical padding of a side bar
	// beyond the first and last leaf of a run.
	SideBarPadding float64

	// Opacity of the side bars.
	SideBarAlpha float64

	// Length of the scale bar,
	// as a fraction of the largest x coordinate.
	ScaleBarFraction float64

	// Distance of the scale bar
	// below the lowest leaf.
	ScaleBarOffset float64

	// Number of decimal places of the scale bar label.
	ScaleBarDecimals int

	// Stroke width of leaf branches.
	LeafWidth float64

	// Stroke width of internal branches.
	InternalWidth float64

	// Color of internal branches.
	Neutral color.RGBA

	// Color of leaves without a group.
	Default color.RGBA

	// If true, leaf names will be drawn.
	Labels bool
}

// Default values.
const (
	DefSideBarOffset    = 1.05
	DefSideBarWidth     = 0.03
	DefSideBarPadding   = 0.4
	DefSideBarAlpha     = 0.8
	DefScaleBarFraction = 0.1
	DefScaleBarOffset   = 0.3
	DefScaleBarDecimals = 2
	DefLeafWidth        = 1.5
	DefInternalWidth    = 1.0
)

var black = color.RGBA{0, 0, 0, 255}

// Default returns a configuration with default values
// and no color groups.
func Default() Config {
	return Config{
		Colors:           colorkey.New(),
		Palette:          colorkey.Iridescent,
		SideBarOffset:    DefSideBarOffset,
		SideBarWidth:     DefSideBarWidth,
		SideBarPadding:   DefSideBarPadding,
		SideBarAlpha:     DefSideBarAlpha,
		ScaleBarFraction: DefScaleBarFraction,
		ScaleBarOffset:   DefScaleBarOffset,
		ScaleBarDecimals: DefScaleBarDecimals,
		LeafWidth:        DefLeafWidth,
		InternalWidth:    DefInternalWidth,
		Neutral:          black,
		Default:          black,
	}
}

// A ConfigurationError is returned
// when a setting has an invalid value.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %v: %s", e.Field, e.Value, e.Reason)
}

// Validate checks that the values of the configuration
// are in a valid range.
func (c Config) Validate() error {
	fractions := []struct {
		name string
		v    float64
	}{
		{"side_bar_offset_fraction", c.SideBarOffset},
		{"side_bar_width_fraction", c.SideBarWidth},
		{"side_bar_padding", c.SideBarPadding},
		{"scale_bar_fraction", c.ScaleBarFraction},
		{"scale_bar_offset", c.ScaleBarOffset},
		{"leaf_width", c.LeafWidth},
		{"internal_width", c.InternalWidth},
	}
	for _, f := range fractions {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ConfigurationError{Field: f.name, Value: f.v, Reason: "not a finite number"}
		}
		if f.v < 0 {
			return &ConfigurationError{Field: f.name, Value: f.v, Reason: "negative value"}
		}
	}
	// leaves are one unit apart
	if c.SideBarPadding >= 0.5 {
		return &ConfigurationError{Field: "side_bar_padding", Value: c.SideBarPadding, Reason: "expecting a value less than 0.5"}
	}
	if math.IsNaN(c.SideBarAlpha) || c.SideBarAlpha < 0 || c.SideBarAlpha > 1 {
		return &ConfigurationError{Field: "side_bar_alpha", Value: c.SideBarAlpha, Reason: "expecting a value between 0 and 1"}
	}
	if c.ScaleBarDecimals < 0 || c.ScaleBarDecimals > 10 {
		return &ConfigurationError{Field: "scale_bar_decimals", Value: c.ScaleBarDecimals, Reason: "expecting a value between 0 and 10"}
	}
	if _, err := colorkey.Scheme(c.Palette, 0); err != nil {
		return &ConfigurationError{Field: "palette", Value: c.Palette, Reason: err.Error()}
	}
	return nil
}
