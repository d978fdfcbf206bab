// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main renders a small demo scene: a styled root object with a
// canvas widget drawing into a caller-owned pixel buffer, presented
// either on the terminal or in a window.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/quillui/quill/driver/ebwin"
	"github.com/quillui/quill/driver/term"
	"github.com/quillui/quill/object"
	"github.com/quillui/quill/pix"
	"github.com/quillui/quill/theme"
	"github.com/quillui/quill/widgets"
)

const (
	frameW, frameH   = 96, 48
	canvasW, canvasH = 88, 40
)

func main() {
	os.Exit(run())
}

func run() int {
	window := flag.Bool("window", false, "present in a desktop window instead of the terminal")
	themePath := flag.String("theme", "", "path to a .toml/.yaml theme file")
	flag.Parse()

	root := object.New[object.Object](nil)
	root.Name = "demo"
	root.SetGeom(image.Rect(0, 0, frameW, frameH))

	canvas := widgets.NewCanvas(root)
	canvas.SetGeom(image.Rect(4, 4, 4+canvasW, 4+canvasH))

	// The buffer is ours, not the widget's; it stays valid for the
	// whole run and is never freed by the canvas.
	buf := make([]byte, pix.BufferSize(pix.TrueColor, canvasW, canvasH))
	canvas.SetBuffer(buf, canvasW, canvasH, pix.TrueColor)
	plasma(canvas, 0)

	if *themePath != "" {
		t, err := theme.Load(*themePath)
		if err != nil {
			slog.Error("loading theme", "path", *themePath, "err", err)
			return 1
		}
		if err := t.Apply(root); err != nil {
			slog.Error("applying theme", "err", err)
			return 1
		}
	}

	if *window {
		frames := 0
		err := ebwin.Run(root, frameW, frameH, "quill demo", func() {
			frames++
			plasma(canvas, frames)
		})
		if err != nil {
			slog.Error("window driver", "err", err)
			return 1
		}
		return 0
	}

	if err := term.RenderTree(root, image.Pt(frameW, frameH), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		return 1
	}
	return 0
}

// plasma fills the canvas with a cheap animated color pattern using
// per-pixel writes.
func plasma(c *widgets.Canvas, t int) {
	for y := 0; y < canvasH; y++ {
		for x := 0; x < canvasW; x++ {
			c.SetPixel(x, y, pix.RGB{
				R: uint8((x*255/canvasW + t) % 256),
				G: uint8((y*255/canvasH + t/2) % 256),
				B: uint8(((x + y + t) * 2) % 256),
			})
		}
	}
}
