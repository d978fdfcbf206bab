// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillui/quill/object"
	"github.com/quillui/quill/pix"
	"github.com/quillui/quill/styles"
)

var red = pix.RGB{R: 0xff}

func TestNewCanvas(t *testing.T) {
	root := object.New[object.Object](nil)
	c := NewCanvas(root)
	require.NotNil(t, c)

	// the embedded descriptor starts empty and is already registered
	// as the display source
	assert.True(t, c.Dsc.IsEmpty())
	assert.Equal(t, pix.TrueColor, c.Dsc.Format)
	assert.Same(t, &c.Dsc, c.Source())
}

func TestNewCanvasDestroyedParent(t *testing.T) {
	root := object.New[object.Object](nil)
	root.Destroy()
	assert.Nil(t, NewCanvas(root))
}

func TestSetBuffer(t *testing.T) {
	c := NewCanvas(nil)
	buf := make([]byte, pix.BufferSize(pix.TrueColor, 10, 10))
	c.SetBuffer(buf, 10, 10, pix.TrueColor)

	assert.Equal(t, 300, c.Dsc.DataSize)
	assert.Equal(t, 10, c.Dsc.Width)
	assert.Same(t, &c.Dsc, c.Source(), "descriptor and display source never diverge")
}

func TestSetBufferRebind(t *testing.T) {
	c := NewCanvas(nil)
	first := make([]byte, pix.BufferSize(pix.TrueColor, 10, 10))
	c.SetBuffer(first, 10, 10, pix.TrueColor)
	second := make([]byte, pix.BufferSize(pix.RGB565, 4, 2))
	c.SetBuffer(second, 4, 2, pix.RGB565)

	// no residue of the first binding
	assert.Equal(t, pix.RGB565, c.Dsc.Format)
	assert.Equal(t, 4, c.Dsc.Width)
	assert.Equal(t, 2, c.Dsc.Height)
	assert.Equal(t, 16, c.Dsc.DataSize)
	assert.Same(t, &second[0], &c.Dsc.Data[0])
	assert.Same(t, &c.Dsc, c.Source())
}

func TestSetPixelScenario(t *testing.T) {
	c := NewCanvas(nil)
	buf := make([]byte, pix.BufferSize(pix.TrueColor, 10, 10))
	require.Len(t, buf, 300)
	c.SetBuffer(buf, 10, 10, pix.TrueColor)

	require.NoError(t, c.SetPixel(5, 5, red))
	assert.Equal(t, []byte{0xff, 0, 0}, buf[165:168])
	for i, b := range buf {
		if i < 165 || i >= 168 {
			require.Zero(t, b, "byte %d", i)
		}
	}

	// x == width is out of bounds and leaves the buffer unchanged
	before := make([]byte, len(buf))
	copy(before, buf)
	assert.ErrorIs(t, c.SetPixel(10, 0, red), pix.ErrOutOfBounds)
	assert.Equal(t, before, buf)
}

func TestPixelReadBack(t *testing.T) {
	c := NewCanvas(nil)
	buf := make([]byte, pix.BufferSize(pix.TrueColorAlpha, 3, 3))
	c.SetBuffer(buf, 3, 3, pix.TrueColorAlpha)

	want := pix.RGBA{R: 1, G: 2, B: 3, A: 4}
	require.NoError(t, c.SetPixel(2, 2, want))
	got, err := c.Pixel(2, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCanvasTypeChain(t *testing.T) {
	c := NewCanvas(nil)
	tc := object.TypeOf(c)
	assert.Equal(t, []string{"object", "image", "canvas"}, tc.List())
	assert.Equal(t, "canvas", tc.Last())
}

func TestSignalChainAfterDestroy(t *testing.T) {
	c := NewCanvas(nil)
	c.Destroy()
	// the ancestor reports destruction; the canvas handler must
	// propagate that result without adding its type entry
	tc := &object.TypeChain{}
	res := c.HandleSignal(object.SignalGetType, tc)
	assert.Equal(t, object.ResultDestroyed, res)
	assert.Empty(t, tc.List())
}

func TestStyleSlots(t *testing.T) {
	c := NewCanvas(nil)
	var st styles.Style
	st.Defaults()
	st.Padding = 9
	c.SetSlotStyle(SlotMain, st)

	got := c.SlotStyle(SlotMain)
	require.NotNil(t, got)
	assert.Equal(t, 9, got.Padding)
	assert.Equal(t, 9, c.AsObject().Style.Padding, "main slot forwards to the base object")

	assert.Nil(t, c.SlotStyle(StyleSlot(99)))
	c.SetSlotStyle(StyleSlot(99), st) // ignored
}

func TestNewCanvasFrom(t *testing.T) {
	src := NewCanvas(nil)
	var st styles.Style
	st.Defaults()
	st.Background = color.RGBA{B: 0xff, A: 0xff}
	src.SetSlotStyle(SlotMain, st)
	buf := make([]byte, pix.BufferSize(pix.TrueColor, 4, 4))
	src.SetBuffer(buf, 4, 4, pix.TrueColor)
	require.NoError(t, src.SetPixel(0, 0, red))

	c := NewCanvasFrom(nil, src)
	require.NotNil(t, c)
	// presentation attributes are copied, pixel data is not
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, c.AsObject().Style.Background)
	assert.True(t, c.Dsc.IsEmpty())
	assert.Nil(t, c.Dsc.Data)
	assert.Same(t, &c.Dsc, c.Source(), "the copy keeps its own descriptor registered")

	// the source is untouched
	assert.Equal(t, []byte{0xff, 0, 0}, src.Dsc.Data[:3])
}

func TestCanvasRender(t *testing.T) {
	root := object.New[object.Object](nil)
	root.SetGeom(image.Rect(0, 0, 4, 4))
	c := NewCanvas(root)
	c.SetGeom(image.Rect(0, 0, 2, 2))
	buf := make([]byte, pix.BufferSize(pix.TrueColor, 2, 2))
	c.SetBuffer(buf, 2, 2, pix.TrueColor)
	require.NoError(t, c.SetPixel(0, 0, red))

	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	object.RenderTree(root, frame)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, frame.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, frame.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{}, frame.RGBAAt(3, 3), "outside the canvas stays clear")
}

func TestCanvasRenderAfterRebind(t *testing.T) {
	c := NewCanvas(nil)
	c.SetGeom(image.Rect(0, 0, 2, 2))
	first := make([]byte, pix.BufferSize(pix.TrueColor, 2, 2))
	c.SetBuffer(first, 2, 2, pix.TrueColor)
	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	object.RenderTree(c, frame)

	// rebinding drops the cached view; the next render reads the new
	// buffer
	second := make([]byte, pix.BufferSize(pix.TrueColor, 2, 2))
	c.SetBuffer(second, 2, 2, pix.TrueColor)
	require.NoError(t, c.SetPixel(1, 1, red))
	frame = image.NewRGBA(image.Rect(0, 0, 2, 2))
	object.RenderTree(c, frame)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, frame.RGBAAt(1, 1))
}
