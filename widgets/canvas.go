// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"log/slog"

	"github.com/quillui/quill/object"
	"github.com/quillui/quill/pix"
	"github.com/quillui/quill/styles"
	"github.com/quillui/quill/types"
)

var canvasType = types.AddType(&types.Type{
	Name:     "github.com/quillui/quill/widgets.Canvas",
	IDName:   "canvas",
	Instance: &Canvas{},
})

// Canvas is an [Image] whose display source is a caller-owned pixel
// buffer, with pixel-level write access. The embedded descriptor is
// registered as the display source at creation and stays registered for
// the life of the widget; [Canvas.SetBuffer] rebinds it in place, so
// the source and the descriptor never diverge.
//
// The backing buffer is borrowed: the caller must keep it valid, and
// must not mutate or free it concurrently, while it is bound and the
// canvas (or a render pass reading it) is in use. The canvas never
// frees it.
type Canvas struct {
	Image

	// Dsc describes the bound buffer. It is owned by the canvas and
	// mutated only through [Canvas.SetBuffer] and the pixel
	// operations; it is deliberately excluded from copying, see
	// [NewCanvasFrom].
	Dsc pix.Descriptor `copier:"-"`
}

// NewCanvas creates a new [Canvas] as a child of the given parent, with
// an empty zero-initialized descriptor registered as its display
// source. It returns nil if the base object cannot be created (the
// parent was destroyed), leaving nothing partially constructed behind.
func NewCanvas(parent object.Drawable) *Canvas {
	return object.New[Canvas](parent)
}

// NewCanvasFrom creates a new [Canvas] as a child of parent, copying
// the presentation attributes of src and re-resolving them under the
// new widget's handler chain. The pixel buffer is deliberately NOT
// copied: the new canvas starts with an empty descriptor and must be
// given its own buffer with [Canvas.SetBuffer]. This asymmetry
// (metadata copied, pixel data not) is intentional; the buffer is
// caller-owned memory that a copy must not silently alias or clone.
func NewCanvasFrom(parent object.Drawable, src *Canvas) *Canvas {
	c := NewCanvas(parent)
	if c == nil || src == nil {
		return c
	}
	c.CopyFieldsFrom(src)
	c.RefreshStyle()
	return c
}

func (c *Canvas) Init() {
	c.Image.Init()
	c.SetSource(&c.Dsc)
}

// SetBuffer binds the given buffer to the canvas, replacing the
// descriptor's format, dimensions, data reference, and recomputed data
// size, and re-registers the display source so cached render state is
// refreshed. buf must hold at least [pix.BufferSize](cf, w, h) bytes
// and stay valid while bound; the previous buffer is never freed.
// Rebinding repeatedly is safe.
func (c *Canvas) SetBuffer(buf []byte, w, h int, cf pix.ColorFormat) {
	c.Dsc.Bind(buf, w, h, cf)
	c.SetSource(&c.Dsc)
}

// SetPixel writes the color at pixel (x, y) of the bound buffer: a pure
// overwrite of exactly one pixel, no blending. Out-of-bounds
// coordinates are a logged no-op returning [pix.ErrOutOfBounds]; a
// color whose pixel size disagrees with the bound format is rejected
// with [pix.ErrFormatMismatch] before any byte is written.
func (c *Canvas) SetPixel(x, y int, col pix.Color) error {
	err := c.Dsc.SetPixel(x, y, col)
	if err != nil {
		slog.Warn("canvas: pixel write rejected", "canvas", c.Name, "x", x, "y", y, "err", err)
	}
	return err
}

// Pixel reads the pixel at (x, y) back from the bound buffer.
func (c *Canvas) Pixel(x, y int) (pix.Color, error) {
	return c.Dsc.Pixel(x, y)
}

// StyleSlot selects one of the canvas's style slots.
type StyleSlot int32

const (
	// SlotMain is the canvas's only style slot, forwarded verbatim
	// to the base object's style.
	SlotMain StyleSlot = iota
)

// SetSlotStyle sets the style for the given slot. Unknown slots are
// ignored.
func (c *Canvas) SetSlotStyle(slot StyleSlot, s styles.Style) {
	switch slot {
	case SlotMain:
		c.AsObject().SetStyle(s)
	}
}

// SlotStyle returns the style for the given slot, or nil for unknown
// slots.
func (c *Canvas) SlotStyle(slot StyleSlot) *styles.Style {
	switch slot {
	case SlotMain:
		return &c.AsObject().Style
	}
	return nil
}

// HandleSignal chains to the ancestor [Image] handler first and
// propagates any non-OK result untouched; if the object was destroyed
// during the signal it must not be referenced further. The canvas adds
// its "canvas" type-chain entry and has nothing of its own to release
// on cleanup, since the descriptor holds no owned memory.
func (c *Canvas) HandleSignal(sig object.Signal, data any) object.Result {
	res := c.Image.HandleSignal(sig, data)
	if res != object.ResultOK {
		return res
	}
	switch sig {
	case object.SignalCleanup:
		// descriptor memory is caller-owned; nothing to release
	case object.SignalGetType:
		if tc, ok := data.(*object.TypeChain); ok {
			tc.Add(canvasType.IDName)
		}
	}
	return res
}
