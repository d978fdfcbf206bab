// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pix

import "fmt"

// Color is one pixel value in a specific [ColorFormat]. AppendBytes
// appends the packed wire representation, which is always exactly
// PixelBytes(Format()) long.
type Color interface {
	// Format returns the color format this value encodes.
	Format() ColorFormat

	// AppendBytes appends the packed byte representation to dst.
	AppendBytes(dst []byte) []byte
}

// RGB is a [TrueColor] pixel value.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Format() ColorFormat { return TrueColor }

func (c RGB) AppendBytes(dst []byte) []byte {
	return append(dst, c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA is a [TrueColorAlpha] pixel value. Alpha is not premultiplied.
type RGBA struct {
	R, G, B, A uint8
}

func (c RGBA) Format() ColorFormat { return TrueColorAlpha }

func (c RGBA) AppendBytes(dst []byte) []byte {
	return append(dst, c.R, c.G, c.B, c.A)
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Packed565 is an [RGB565] pixel value, packed 5-6-5 and stored
// little-endian in buffers.
type Packed565 uint16

// New565 packs 8-bit RGB channels into a [Packed565] value.
func New565(r, g, b uint8) Packed565 {
	return Packed565(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

func (c Packed565) Format() ColorFormat { return RGB565 }

func (c Packed565) AppendBytes(dst []byte) []byte {
	return append(dst, byte(c), byte(c>>8))
}

// RGB returns the 8-bit channels of the packed value, with the low bits
// zero-filled.
func (c Packed565) RGB() (r, g, b uint8) {
	return uint8(c>>11) << 3, uint8(c>>5&0x3f) << 2, uint8(c&0x1f) << 3
}

// Opacity is an [Alpha8] pixel value: pure coverage, no color.
type Opacity uint8

func (c Opacity) Format() ColorFormat { return Alpha8 }

func (c Opacity) AppendBytes(dst []byte) []byte {
	return append(dst, byte(c))
}

// DecodeColor decodes one pixel of the given format from the start of b.
// It returns nil if b is shorter than one pixel.
func DecodeColor(cf ColorFormat, b []byte) Color {
	if len(b) < PixelBytes(cf) {
		return nil
	}
	switch cf {
	case TrueColor, TrueColorChromaKeyed:
		return RGB{b[0], b[1], b[2]}
	case TrueColorAlpha:
		return RGBA{b[0], b[1], b[2], b[3]}
	case RGB565:
		return Packed565(uint16(b[0]) | uint16(b[1])<<8)
	case Alpha8:
		return Opacity(b[0])
	}
	return nil
}
