// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebwin presents a drawable tree in a desktop window using
// Ebiten. The tree is re-rendered every frame on Ebiten's game
// goroutine, which therefore must be the goroutine that owns the tree.
package ebwin

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/quillui/quill/object"
)

// game adapts a drawable tree to the ebiten.Game interface.
type game struct {
	root   object.Drawable
	frame  *image.RGBA
	tex    *ebiten.Image
	update func() // optional per-frame callback, runs before rendering
}

func (g *game) Update() error {
	if g.root.AsObject().Destroyed() {
		return ebiten.Termination
	}
	if g.update != nil {
		g.update()
	}
	clear(g.frame.Pix)
	object.RenderTree(g.root, g.frame)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.tex.WritePixels(g.frame.Pix)
	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.frame.Bounds()
	return b.Dx(), b.Dy()
}

// Run opens a window of the given size and renders the tree rooted at
// root until the window is closed or the root is destroyed. The
// optional update callback runs once per frame, before rendering, on
// the game goroutine. Run blocks and must be called from the main
// goroutine.
func Run(root object.Drawable, width, height int, title string, update func()) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	g := &game{
		root:   root,
		frame:  image.NewRGBA(image.Rect(0, 0, width, height)),
		tex:    ebiten.NewImage(width, height),
		update: update,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
