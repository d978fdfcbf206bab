// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term renders a frame to an ANSI terminal using half-block
// cells: each text cell carries two vertically stacked pixels, the
// upper in the foreground color and the lower in the background color.
package term

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/quillui/quill/object"
)

const upperHalfBlock = "▀"

// Render writes the frame to w, two pixel rows per output line, using
// the given termenv color profile.
func Render(frame *image.RGBA, w io.Writer, profile termenv.Profile) error {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	b := frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			up := frame.RGBAAt(x, y)
			var lo color.RGBA
			if y+1 < b.Max.Y {
				lo = frame.RGBAAt(x, y+1)
			}
			cell := out.String(upperHalfBlock).
				Foreground(out.Color(hex(up))).
				Background(out.Color(hex(lo)))
			if _, err := fmt.Fprint(w, cell.String()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderTree renders the tree rooted at root into a frame of the given
// size and writes it to w with the terminal's detected color profile.
func RenderTree(root object.Drawable, size image.Point, w io.Writer) error {
	frame := image.NewRGBA(image.Rectangle{Max: size})
	object.RenderTree(root, frame)
	return Render(frame, w, termenv.ColorProfile())
}

// hex returns the "#rrggbb" form of c, compositing its alpha over
// black.
func hex(c color.RGBA) string {
	a := float64(c.A) / 255
	return colorful.Color{
		R: float64(c.R) / 255 * a,
		G: float64(c.G) / 255 * a,
		B: float64(c.B) / 255 * a,
	}.Hex()
}
