// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/katalvlaran/smoglab/field"
)

// Image draws f as a (Cols·scale)×(Rows·scale) picture, one flat square
// per cell. A nil field yields nil.
func Image(f *field.Field, opts ...Option) *image.RGBA {
	if f == nil {
		return nil
	}
	cfg := newConfig(opts)

	return cfg.image(f)
}

func (c config) image(f *field.Field) *image.RGBA {
	rows, cols, s := f.Rows(), f.Cols(), c.scale
	img := image.NewRGBA(image.Rect(0, 0, cols*s, rows*s))
	lo, hi := c.valueRange(f)

	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			v, _ := f.At(x, y)
			fillCell(img, y*s, x*s, s, c.palette.At(normalize(v, lo, hi)))
		}
	}

	return img
}

// fillCell paints the s×s square whose top-left pixel is (px,py).
func fillCell(img *image.RGBA, px, py, s int, col color.RGBA) {
	for dy := 0; dy < s; dy++ {
		off := img.PixOffset(px, py+dy)
		for dx := 0; dx < s; dx++ {
			img.Pix[off+0] = col.R
			img.Pix[off+1] = col.G
			img.Pix[off+2] = col.B
			img.Pix[off+3] = col.A
			off += 4
		}
	}
}
