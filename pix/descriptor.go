// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import (
	"errors"
	"image"
	"image/color"
)

// Errors reported by descriptor pixel access.
var (
	// ErrOutOfBounds is returned for pixel coordinates outside
	// [0,Width) x [0,Height).
	ErrOutOfBounds = errors.New("pix: coordinates out of bounds")

	// ErrFormatMismatch is returned when a color value's pixel size
	// does not match the descriptor's bound format.
	ErrFormatMismatch = errors.New("pix: color does not match buffer format")

	// ErrNoBuffer is returned when the descriptor has no bound data.
	ErrNoBuffer = errors.New("pix: no buffer bound")
)

// Header is the fixed leading part of a [Descriptor]: the source-kind
// discriminant, the color format, and the dimensions of the buffer.
type Header struct {
	// Kind distinguishes this descriptor from other display-source
	// kinds. Always [SourceBuffer] for a bound pixel buffer.
	Kind SourceKind

	// Format is the color format of the buffer.
	Format ColorFormat

	// Width and Height are the buffer dimensions in pixels.
	// Zero means unbound/empty.
	Width, Height int
}

// Descriptor describes a rectangular pixel buffer: dimensions, color
// format, byte size, and a non-owning view of caller-supplied memory.
// The zero value is an empty TrueColor descriptor with no data.
//
// Data is borrowed, never allocated or freed here; the caller must keep
// it valid and unaliased for as long as the descriptor is in use.
// Layout is row-major, top-left origin, tightly packed with no row
// padding or stride.
type Descriptor struct {
	Header

	// DataSize is the byte length of Data:
	// PixelSize(Format)*Width*Height/8.
	DataSize int

	// Data is the borrowed backing buffer.
	Data []byte `copier:"-"`
}

// Bind points the descriptor at the given buffer, replacing all fields.
// buf must hold at least [BufferSize](cf, w, h) bytes and remain valid
// for as long as the descriptor is in use; that is the caller's
// obligation and is not checked. Rebinding never frees the prior buffer.
func (d *Descriptor) Bind(buf []byte, w, h int, cf ColorFormat) {
	d.Kind = SourceBuffer
	d.Format = cf
	d.Width = w
	d.Height = h
	d.Data = buf
	d.DataSize = BufferSize(cf, w, h)
}

// IsEmpty reports whether the descriptor has no bound buffer.
func (d *Descriptor) IsEmpty() bool {
	return d.Data == nil || d.Width <= 0 || d.Height <= 0
}

// pixelOffset returns the byte offset of pixel (x, y), assuming the
// coordinates are in bounds.
func (d *Descriptor) pixelOffset(x, y int) int {
	pb := PixelBytes(d.Format)
	return d.Width*y*pb + x*pb
}

// SetPixel writes the packed bytes of c at pixel (x, y). Coordinates
// outside the buffer return [ErrOutOfBounds] and leave the buffer
// untouched. A color whose pixel size disagrees with the bound format
// returns [ErrFormatMismatch] rather than corrupting adjacent pixels.
func (d *Descriptor) SetPixel(x, y int, c Color) error {
	if d.IsEmpty() {
		return ErrNoBuffer
	}
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return ErrOutOfBounds
	}
	if PixelBytes(c.Format()) != PixelBytes(d.Format) {
		return ErrFormatMismatch
	}
	var tmp [4]byte
	copy(d.Data[d.pixelOffset(x, y):], c.AppendBytes(tmp[:0]))
	return nil
}

// Pixel reads the pixel at (x, y) back as a [Color] in the bound format.
func (d *Descriptor) Pixel(x, y int) (Color, error) {
	if d.IsEmpty() {
		return nil, ErrNoBuffer
	}
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return nil, ErrOutOfBounds
	}
	return DecodeColor(d.Format, d.Data[d.pixelOffset(x, y):]), nil
}

// Image returns a read-only [image.Image] view of the buffer for
// rendering. For [TrueColorAlpha] the view shares the descriptor's
// memory as an [image.NRGBA], since stored channels are not alpha
// premultiplied; other formats are decoded pixel by pixel on access.
// An empty descriptor returns nil.
func (d *Descriptor) Image() image.Image {
	if d.IsEmpty() {
		return nil
	}
	r := image.Rect(0, 0, d.Width, d.Height)
	if d.Format == TrueColorAlpha {
		return &image.NRGBA{Pix: d.Data, Stride: 4 * d.Width, Rect: r}
	}
	return &dscImage{d: d, rect: r}
}

// dscImage adapts a non-RGBA descriptor to image.Image by decoding on
// access.
type dscImage struct {
	d    *Descriptor
	rect image.Rectangle
}

func (di *dscImage) ColorModel() color.Model { return color.RGBAModel }

func (di *dscImage) Bounds() image.Rectangle { return di.rect }

func (di *dscImage) At(x, y int) color.Color {
	d := di.d
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return color.RGBA{}
	}
	b := d.Data[d.pixelOffset(x, y):]
	switch d.Format {
	case TrueColor:
		return color.RGBA{b[0], b[1], b[2], 0xff}
	case TrueColorChromaKeyed:
		c := RGB{b[0], b[1], b[2]}
		if c == ChromaKey {
			return color.RGBA{}
		}
		return color.RGBA{c.R, c.G, c.B, 0xff}
	case RGB565:
		r, g, bb := Packed565(uint16(b[0]) | uint16(b[1])<<8).RGB()
		return color.RGBA{r, g, bb, 0xff}
	case Alpha8:
		return color.Alpha{b[0]}
	}
	return color.RGBA{}
}
