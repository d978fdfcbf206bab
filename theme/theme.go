// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme loads widget styles from TOML or YAML theme files and
// applies them to a drawable tree, keyed by registered type ID names.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/quillui/quill/object"
	"github.com/quillui/quill/styles"
	"github.com/quillui/quill/types"
)

// Entry is the style of one widget type in a theme file. Colors are
// hex strings ("#rrggbb"); empty fields leave the corresponding style
// field alone.
type Entry struct {
	Color       string   `toml:"color" yaml:"color"`
	Background  string   `toml:"background" yaml:"background"`
	Border      string   `toml:"border" yaml:"border"`
	BorderWidth *int     `toml:"border-width" yaml:"border-width"`
	Padding     *int     `toml:"padding" yaml:"padding"`
	Opacity     *float32 `toml:"opacity" yaml:"opacity"`
}

// Theme maps widget type ID names (e.g. "canvas") to style entries.
type Theme struct {
	Name    string           `toml:"name" yaml:"name"`
	Widgets map[string]Entry `toml:"widgets" yaml:"widgets"`
}

// Load reads a theme from the given .toml, .yaml, or .yml file.
func Load(path string) (*Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t := &Theme{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, t)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, t)
	default:
		return nil, fmt.Errorf("theme: unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Apply walks the tree from root and, for every object whose registered
// type ID name has an entry in the theme, merges that entry into the
// object's style. It must run on the goroutine that owns the tree.
func (t *Theme) Apply(root object.Drawable) error {
	var errs []error
	object.WalkDown(root, func(d object.Drawable) bool {
		tp := types.TypeByValue(d)
		if tp == nil {
			return true
		}
		e, ok := t.Widgets[tp.IDName]
		if !ok {
			return true
		}
		ob := d.AsObject()
		st := ob.Style
		if err := e.merge(&st); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", tp.IDName, err))
			return true
		}
		ob.SetStyle(st)
		return true
	})
	return errors.Join(errs...)
}

// merge applies the entry's set fields onto s.
func (e *Entry) merge(s *styles.Style) error {
	for _, c := range []struct {
		hex string
		dst *color.RGBA
	}{
		{e.Color, &s.Color},
		{e.Background, &s.Background},
		{e.Border, &s.Border},
	} {
		if c.hex == "" {
			continue
		}
		rgba, err := parseColor(c.hex)
		if err != nil {
			return err
		}
		*c.dst = rgba
	}
	if e.BorderWidth != nil {
		s.BorderWidth = *e.BorderWidth
	}
	if e.Padding != nil {
		s.Padding = *e.Padding
	}
	if e.Opacity != nil {
		s.Opacity = *e.Opacity
	}
	return nil
}

// parseColor parses a "#rrggbb" hex color into an opaque RGBA.
func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
