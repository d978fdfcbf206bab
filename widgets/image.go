// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package widgets provides the concrete drawable widgets of quill,
// built on [object.Object].
package widgets

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/quillui/quill/object"
	"github.com/quillui/quill/pix"
	"github.com/quillui/quill/styles"
	"github.com/quillui/quill/types"
)

var imageType = types.AddType(&types.Type{
	Name:     "github.com/quillui/quill/widgets.Image",
	IDName:   "image",
	Instance: &Image{},
})

// Image displays a [pix.Descriptor] registered as its display source.
// The converted view of the source is cached and dropped whenever the
// source is (re)registered.
type Image struct {
	object.Object

	// view is the cached render view of the source.
	view image.Image
}

// NewImage creates a new [Image] as a child of the given parent.
func NewImage(parent object.Drawable) *Image {
	return object.New[Image](parent)
}

// HandleSignal chains to [object.Object.HandleSignal] and then handles
// source invalidation and the "image" type-chain entry.
func (im *Image) HandleSignal(sig object.Signal, data any) object.Result {
	res := im.Object.HandleSignal(sig, data)
	if res != object.ResultOK {
		return res
	}
	switch sig {
	case object.SignalSourceChanged:
		im.view = nil
	case object.SignalGetType:
		if tc, ok := data.(*object.TypeChain); ok {
			tc.Add(imageType.IDName)
		}
	}
	return res
}

// Render draws the base object and then the display source into the
// content box. Alpha-only sources are drawn in the style's content
// color, using the source as the coverage mask.
func (im *Image) Render(frame *image.RGBA) {
	im.Object.Render(frame)
	src := im.Source()
	if src == nil || src.IsEmpty() {
		return
	}
	if im.view == nil {
		im.view = src.Image()
	}
	r := im.ContentBBox()
	if src.Format == pix.Alpha8 {
		fg := styles.ApplyOpacity(im.Style.Color, im.Style.Opacity)
		draw.DrawMask(frame, r, image.NewUniform(fg), image.Point{}, im.view, image.Point{}, draw.Over)
		return
	}
	draw.Draw(frame, r, im.view, image.Point{}, draw.Over)
}
