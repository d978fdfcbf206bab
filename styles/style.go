// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the presentation attributes of drawable
// objects. Widgets hold exactly one Style; styler functions mutate it
// in registration order when the style is resolved.
package styles

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Style holds the presentation attributes of a drawable object.
type Style struct {
	// Color is the foreground content color, used for alpha-only
	// sources whose buffer stores coverage but no color.
	Color color.RGBA

	// Background is the fill color behind the object's content.
	// A zero alpha means no background is drawn.
	Background color.RGBA

	// Border is the border color, drawn when BorderWidth > 0.
	Border color.RGBA

	// BorderWidth is the border thickness in pixels.
	BorderWidth int

	// Padding is the uniform inner spacing in pixels between the
	// border and the content.
	Padding int

	// Opacity scales the alpha of everything the object draws,
	// in [0, 1].
	Opacity float32
}

// Defaults sets default style values: fully opaque, black content
// color, no background, no border.
func (s *Style) Defaults() {
	s.Color = color.RGBA{A: 0xff}
	s.Opacity = 1
}

// Func is a styler function that mutates a style.
type Func func(s *Style)

// ApplyOpacity returns c with its alpha scaled by opacity, clamped
// to [0, 1]. The color channels are left alone; callers draw with
// alpha-aware compositing.
func ApplyOpacity(c color.RGBA, opacity float32) color.RGBA {
	o := math32.Max(0, math32.Min(1, opacity))
	c.A = uint8(math32.Floor(float32(c.A)*o + 0.5))
	return c
}
