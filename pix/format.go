// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pix provides the pixel-buffer descriptor used as the display
// source of drawable objects, together with the color formats and color
// values needed to address and mutate such buffers.
package pix

// ColorFormat describes the encoding of one pixel in a buffer and
// determines its size in bits. The zero value is [TrueColor].
type ColorFormat int32

const (
	// TrueColor is packed 24-bit RGB (R, G, B byte order), no alpha.
	TrueColor ColorFormat = iota

	// TrueColorAlpha is packed 32-bit RGBA (R, G, B, A byte order).
	TrueColorAlpha

	// TrueColorChromaKeyed is packed 24-bit RGB where pixels equal to
	// [ChromaKey] are treated as fully transparent when rendered.
	TrueColorChromaKeyed

	// RGB565 is packed 16-bit RGB, 5-6-5 bit layout, little-endian.
	RGB565

	// Alpha8 is an 8-bit alpha-only format; the rendered color comes
	// from the widget style, only coverage is stored per pixel.
	Alpha8
)

func (cf ColorFormat) String() string {
	switch cf {
	case TrueColor:
		return "true-color"
	case TrueColorAlpha:
		return "true-color-alpha"
	case TrueColorChromaKeyed:
		return "true-color-chroma-keyed"
	case RGB565:
		return "rgb565"
	case Alpha8:
		return "alpha8"
	}
	return "format-unknown"
}

// ChromaKey is the color treated as transparent in
// [TrueColorChromaKeyed] buffers.
var ChromaKey = RGB{G: 0xff}

// PixelSize returns the size of one pixel of the given format in bits.
func PixelSize(cf ColorFormat) int {
	switch cf {
	case TrueColor, TrueColorChromaKeyed:
		return 24
	case TrueColorAlpha:
		return 32
	case RGB565:
		return 16
	case Alpha8:
		return 8
	}
	return 0
}

// PixelBytes returns the size of one pixel of the given format in bytes.
func PixelBytes(cf ColorFormat) int {
	return PixelSize(cf) / 8
}

// BufferSize returns the number of bytes needed to back a buffer of the
// given dimensions and format: PixelSize(cf)*w*h/8.
func BufferSize(cf ColorFormat, w, h int) int {
	return PixelSize(cf) * w * h / 8
}

// SourceKind is the structural discriminant at the head of a display
// source, distinguishing plain pixel buffers from other source kinds.
// The zero value is [SourceBuffer]; a descriptor bound to caller memory
// always reads as SourceBuffer, never as a special source literal.
type SourceKind int32

const (
	// SourceBuffer is an in-memory pixel buffer described by a [Descriptor].
	SourceBuffer SourceKind = iota

	// SourceFile is a source referenced by file path. Reserved; not
	// produced by this package.
	SourceFile

	// SourceSymbol is a source referenced by a symbolic name. Reserved;
	// not produced by this package.
	SourceSymbol
)
