// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/js-arias/treefig/colorkey"
	"gopkg.in/yaml.v3"
)

// ColorGroups is the name of the option
// that stores the color groups.
const ColorGroups = "color_groups"

// Read reads a settings file.
// The format is defined by the file extension:
// ".toml" for TOML files,
// any other extension is read as YAML.
func Read(name string) (Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	var c Config
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		c, err = ReadTOML(f)
	default:
		c, err = ReadYAML(f)
	}
	if err != nil {
		return Config{}, fmt.Errorf("on file %q: %w", name, err)
	}
	return c, nil
}

// ReadYAML reads the settings from a YAML document.
// Options not defined in the document
// keep their default values.
func ReadYAML(r io.Reader) (Config, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Default(), nil
		}
		return Config{}, err
	}

	c := Default()
	if len(doc.Content) == 0 {
		return c, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Config{}, &ConfigurationError{Field: "document", Value: root.Tag, Reason: "expecting a mapping"}
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		val := root.Content[i+1]

		if name == ColorGroups {
			if err := c.yamlGroups(val); err != nil {
				return Config{}, err
			}
			continue
		}

		var v any
		if err := val.Decode(&v); err != nil {
			return Config{}, &ConfigurationError{Field: name, Value: val.Value, Reason: err.Error()}
		}
		if err := c.set(name, v); err != nil {
			return Config{}, err
		}
	}

	if err := c.finish(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) yamlGroups(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return &ConfigurationError{Field: ColorGroups, Value: n.Value, Reason: "expecting a mapping of prefixes to colors"}
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		prefix := n.Content[i].Value
		var v any
		if err := n.Content[i+1].Decode(&v); err != nil {
			return &ConfigurationError{Field: ColorGroups + "." + prefix, Value: n.Content[i+1].Value, Reason: err.Error()}
		}
		if err := c.addGroup(prefix, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadTOML reads the settings from a TOML document.
// Options not defined in the document
// keep their default values.
func ReadTOML(r io.Reader) (Config, error) {
	raw := make(map[string]any)
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Config{}, err
	}

	c := Default()
	for _, k := range md.Keys() {
		switch {
		case len(k) == 1 && k[0] == ColorGroups:
			// groups are read from its own keys
			// to keep the order of the file
			if _, ok := raw[ColorGroups].(map[string]any); !ok {
				return Config{}, &ConfigurationError{Field: ColorGroups, Value: raw[ColorGroups], Reason: "expecting a table of prefixes to colors"}
			}
		case len(k) == 1:
			if err := c.set(k[0], raw[k[0]]); err != nil {
				return Config{}, err
			}
		case len(k) == 2 && k[0] == ColorGroups:
			groups := raw[ColorGroups].(map[string]any)
			if err := c.addGroup(k[1], groups[k[1]]); err != nil {
				return Config{}, err
			}
		}
	}

	if err := c.finish(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) addGroup(prefix string, v any) error {
	field := ColorGroups + "." + prefix

	var value, label string
	switch x := v.(type) {
	case string:
		value = x
	case map[string]any:
		s, ok := x["color"].(string)
		if !ok {
			return &ConfigurationError{Field: field, Value: v, Reason: "expecting a color"}
		}
		value = s
		if l, ok := x["label"]; ok {
			ls, ok := l.(string)
			if !ok {
				return &ConfigurationError{Field: field + ".label", Value: l, Reason: "expecting a string"}
			}
			label = ls
		}
	default:
		return &ConfigurationError{Field: field, Value: v, Reason: "expecting a color"}
	}

	if strings.ToLower(strings.TrimSpace(value)) == colorkey.AutoColor {
		c.Colors.AddAuto(prefix, label)
		return nil
	}
	col, err := colorkey.Parse(value)
	if err != nil {
		return &ConfigurationError{Field: field, Value: value, Reason: err.Error()}
	}
	c.Colors.AddLabel(prefix, col, label)
	return nil
}

func (c *Config) set(name string, v any) error {
	switch name {
	case "side_bar_offset_fraction":
		return setFloat(&c.SideBarOffset, name, v)
	case "side_bar_width_fraction":
		return setFloat(&c.SideBarWidth, name, v)
	case "side_bar_padding":
		return setFloat(&c.SideBarPadding, name, v)
	case "side_bar_alpha":
		return setFloat(&c.SideBarAlpha, name, v)
	case "scale_bar_fraction":
		return setFloat(&c.ScaleBarFraction, name, v)
	case "scale_bar_offset":
		return setFloat(&c.ScaleBarOffset, name, v)
	case "scale_bar_decimals":
		f, ok := toFloat(v)
		if !ok || f != float64(int(f)) {
			return &ConfigurationError{Field: name, Value: v, Reason: "expecting an integer"}
		}
		c.ScaleBarDecimals = int(f)
	case "leaf_width":
		return setFloat(&c.LeafWidth, name, v)
	case "internal_width":
		return setFloat(&c.InternalWidth, name, v)
	case "neutral_color":
		return setColor(&c.Neutral, name, v)
	case "default_color":
		return setColor(&c.Default, name, v)
	case "palette":
		s, ok := v.(string)
		if !ok {
			return &ConfigurationError{Field: name, Value: v, Reason: "expecting a color scheme name"}
		}
		c.Palette = s
	case "labels":
		b, ok := v.(bool)
		if !ok {
			return &ConfigurationError{Field: name, Value: v, Reason: "expecting a boolean"}
		}
		c.Labels = b
	default:
		return &ConfigurationError{Field: name, Value: v, Reason: "unknown option"}
	}
	return nil
}

// finish paints the automatic colors
// and validates the configuration.
func (c *Config) finish() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.Colors.Paint(c.Palette); err != nil {
		return &ConfigurationError{Field: "palette", Value: c.Palette, Reason: err.Error()}
	}
	return nil
}

func setFloat(dst *float64, name string, v any) error {
	f, ok := toFloat(v)
	if !ok {
		return &ConfigurationError{Field: name, Value: v, Reason: "expecting a number"}
	}
	*dst = f
	return nil
}

func setColor(dst *color.RGBA, name string, v any) error {
	s, ok := v.(string)
	if !ok {
		return &ConfigurationError{Field: name, Value: v, Reason: "expecting a color"}
	}
	col, err := colorkey.Parse(s)
	if err != nil {
		return &ConfigurationError{Field: name, Value: s, Reason: err.Error()}
	}
	*dst = col
	return nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
