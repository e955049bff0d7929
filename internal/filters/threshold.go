package filters

import (
	"image"
	"image/color"
)

var (
	black = color.Gray{Y: 0}
	white = color.Gray{Y: 255}
)

// Threshold binarizes a grayscale image. Pixels strictly above level
// become white, the rest black. Faded print and scanner noise both
// collapse into clean black-on-white input for OCR.
func Threshold(img *image.Gray, level uint8) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if img.GrayAt(x, y).Y > level {
				out.SetGray(x, y, white)
			} else {
				out.SetGray(x, y, black)
			}
		}
	}

	return out
}

// OtsuThreshold binarizes a grayscale image at the level chosen by
// Otsu's method.
func OtsuThreshold(img *image.Gray) *image.Gray {
	return Threshold(img, OtsuLevel(img))
}

// OtsuLevel computes a binarization level with Otsu's method: the
// level that maximizes the between-class variance of the image's
// intensity histogram. Works well on scans, which are close to bimodal
// (ink and paper).
func OtsuLevel(img *image.Gray) uint8 {
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	var hist [256]int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}

	sum := 0.0
	for i, count := range hist {
		sum += float64(i) * float64(count)
	}

	var (
		sumB   float64
		wB     int
		maxVar float64
		level  uint8
	)

	for t := 0; t < 256; t++ {
		wB += hist[t]
		if wB == 0 {
			continue
		}
		wF := total - wB
		if wF == 0 {
			break
		}

		sumB += float64(t) * float64(hist[t])

		mB := sumB / float64(wB)
		mF := (sum - sumB) / float64(wF)

		between := float64(wB) * float64(wF) * (mB - mF) * (mB - mF)
		if between > maxVar {
			maxVar = between
			level = uint8(t)
		}
	}

	return level
}
