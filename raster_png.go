package qrencode

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

var pbmPalette = color.Palette{color.White, color.Black}

// WritePNG renders q as a paletted, 1-bit-depth PNG, scaling each
// module to a scale x scale block of pixels and padding a quiet zone
// of quiet modules on every side. scale must be >= 1 and quiet >= 0.
func WritePNG(q *QrCode, w io.Writer, scale, quiet int) error {
	if scale < 1 {
		return wrapErr(ErrInvalidValue, "qrencode: scale %d must be >= 1", scale)
	}
	if quiet < 0 {
		return wrapErr(ErrInvalidValue, "qrencode: negative quiet zone %d", quiet)
	}
	side := (q.size + 2*quiet) * scale
	img := image.NewPaletted(image.Rect(0, 0, side, side), pbmPalette)
	for i := range img.Pix {
		img.Pix[i] = 0 // white
	}
	for y := 0; y < q.size; y++ {
		for x := 0; x < q.size; x++ {
			if !q.modules[y][x] {
				continue
			}
			px0 := (x + quiet) * scale
			py0 := (y + quiet) * scale
			for dy := 0; dy < scale; dy++ {
				off := img.PixOffset(px0, py0+dy)
				for dx := 0; dx < scale; dx++ {
					img.Pix[off+dx] = 1 // black
				}
			}
		}
	}
	return png.Encode(w, img)
}
