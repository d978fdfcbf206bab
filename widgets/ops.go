// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package widgets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/transform"

	"github.com/quillui/quill/pix"
)

// Fill overwrites every pixel of the bound buffer with the given color.
func (c *Canvas) Fill(col pix.Color) error {
	d := &c.Dsc
	if d.IsEmpty() {
		return pix.ErrNoBuffer
	}
	if pix.PixelBytes(col.Format()) != pix.PixelBytes(d.Format) {
		return pix.ErrFormatMismatch
	}
	var tmp [4]byte
	b := col.AppendBytes(tmp[:0])
	pb := len(b)
	for i := 0; i < d.Width*d.Height; i++ {
		copy(d.Data[i*pb:], b)
	}
	return nil
}

// CopyBuffer copies w*h tightly packed pixels in the canvas's bound
// format from src into the rectangle at (x, y). The rectangle must lie
// entirely within the canvas.
func (c *Canvas) CopyBuffer(src []byte, x, y, w, h int) error {
	d := &c.Dsc
	if d.IsEmpty() {
		return pix.ErrNoBuffer
	}
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > d.Width || y+h > d.Height {
		return pix.ErrOutOfBounds
	}
	pb := pix.PixelBytes(d.Format)
	if len(src) < w*h*pb {
		return fmt.Errorf("canvas: copy source holds %d bytes, need %d: %w", len(src), w*h*pb, pix.ErrOutOfBounds)
	}
	for row := 0; row < h; row++ {
		doff := ((y+row)*d.Width + x) * pb
		copy(d.Data[doff:doff+w*pb], src[row*w*pb:])
	}
	return nil
}

// Blur applies a gaussian blur of the given radius to the bound buffer
// in place.
func (c *Canvas) Blur(radius float64) error {
	return c.rasterOp(func(img image.Image) *image.RGBA {
		return blur.Gaussian(img, radius)
	})
}

// Rotate rotates the content of the bound buffer by the given angle in
// degrees about its center, keeping the buffer dimensions; corners
// rotated out of the buffer are clipped.
func (c *Canvas) Rotate(deg float64) error {
	return c.rasterOp(func(img image.Image) *image.RGBA {
		return transform.Rotate(img, deg, &transform.RotationOptions{ResizeBounds: false})
	})
}

// rasterOp runs op over the current buffer content and writes the
// result back through the bound buffer. Raster ops need a true-color
// buffer; paletted and alpha-only formats are rejected.
func (c *Canvas) rasterOp(op func(image.Image) *image.RGBA) error {
	d := &c.Dsc
	if d.IsEmpty() {
		return pix.ErrNoBuffer
	}
	switch d.Format {
	case pix.TrueColor, pix.TrueColorAlpha:
	default:
		return fmt.Errorf("canvas: raster ops need a true-color buffer, have %v: %w", d.Format, pix.ErrFormatMismatch)
	}
	out := op(d.Image())
	pb := pix.PixelBytes(d.Format)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			off := (y*d.Width + x) * pb
			if d.Format == pix.TrueColorAlpha {
				// op results are premultiplied; the buffer stores
				// straight alpha
				nc := color.NRGBAModel.Convert(out.RGBAAt(x, y)).(color.NRGBA)
				d.Data[off] = nc.R
				d.Data[off+1] = nc.G
				d.Data[off+2] = nc.B
				d.Data[off+3] = nc.A
			} else {
				i := out.PixOffset(x, y)
				copy(d.Data[off:off+pb], out.Pix[i:i+pb])
			}
		}
	}
	c.SetSource(&c.Dsc)
	return nil
}
