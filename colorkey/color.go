// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package colorkey

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/js-arias/blind"
	"golang.org/x/image/colornames"
)

// AutoColor is the color value used
// to request a color from a color scheme.
const AutoColor = "auto"

// Parse parses a color value.
// Valid values are:
//
//   - a hexadecimal RGB value, for example "#d3d3d3" or "#ddd"
//   - an RGB value separated by commas, for example "125,132,148"
//   - an SVG color name, for example "lightgray"
func Parse(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return color.RGBA{}, fmt.Errorf("empty color value")
	}

	if strings.HasPrefix(v, "#") {
		return parseHex(v)
	}
	if strings.Contains(v, ",") {
		return parseRGB(v)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(v string) (color.RGBA, error) {
	h := v[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hexadecimal color %q", v)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hexadecimal color %q: %v", v, err)
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 255}, nil
}

func parseRGB(v string) (color.RGBA, error) {
	val := strings.Split(v, ",")
	if len(val) != 3 {
		return color.RGBA{}, fmt.Errorf("color %q: found %d values, want 3", v, len(val))
	}

	var rgb [3]uint8
	for i, name := range []string{"red", "green", "blue"} {
		c, err := strconv.Atoi(strings.TrimSpace(val[i]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q [%s value]: %v", v, name, err)
		}
		if c < 0 || c > 255 {
			return color.RGBA{}, fmt.Errorf("color %q [%s value]: invalid value %d", v, name, c)
		}
		rgb[i] = uint8(c)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 255}, nil
}

// Format returns a color
// as a hexadecimal RGB value.
func Format(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color schemes of Paul Tol
// <https://personal.sron.nl/~pault/>.
const (
	Iridescent   = "iridescent"
	Incandescent = "incandescent"
	Rainbow      = "rainbow"
)

// Scheme returns n colors
// evenly spaced on a color scheme.
func Scheme(name string, n int) ([]color.RGBA, error) {
	var scheme func(v float64) color.RGBA
	switch strings.ToLower(name) {
	case Iridescent, "":
		scheme = func(v float64) color.RGBA { return blind.Sequential(blind.Iridescent, v) }
	case Incandescent:
		scheme = func(v float64) color.RGBA { return blind.Sequential(blind.Incandescent, v) }
	case Rainbow:
		scheme = func(v float64) color.RGBA { return blind.Sequential(blind.RainbowPurpleToRed, v) }
	default:
		return nil, fmt.Errorf("unknown color scheme %q", name)
	}

	cs := make([]color.RGBA, 0, n)
	for i := 0; i < n; i++ {
		v := 0.5
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		cs = append(cs, scheme(v))
	}
	return cs, nil
}
