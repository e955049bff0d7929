package filters

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale resizes an image by the given factor using Catmull-Rom
// interpolation. Factors above 1 upscale, which gives OCR enough
// pixels to resolve the small print on transcript tables. A factor of
// 1 returns the image unchanged.
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}

	bounds := img.Bounds()
	width := int(float64(bounds.Dx()) * factor)
	height := int(float64(bounds.Dy()) * factor)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	return dst
}
