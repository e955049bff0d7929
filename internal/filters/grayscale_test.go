package filters

import (
	"image"
	"image/color"
	"testing"
)

func TestGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	gray := Grayscale(img)

	if gray.GrayAt(0, 0).Y != 255 {
		t.Errorf("white pixel = %d, want 255", gray.GrayAt(0, 0).Y)
	}
	if gray.GrayAt(1, 0).Y != 0 {
		t.Errorf("black pixel = %d, want 0", gray.GrayAt(1, 0).Y)
	}
}

func TestGrayscale_Color(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	gray := Grayscale(img)

	// Pure red lands mid-range under the standard luminance weights
	y := gray.GrayAt(0, 0).Y
	if y == 0 || y == 255 {
		t.Errorf("red pixel = %d, want a mid-range luminance", y)
	}
}

func TestGrayscale_AlreadyGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))

	gray := Grayscale(img)

	if gray != img {
		t.Error("grayscale input should be returned as-is")
	}
}

func TestGrayscale_PreservesBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 50, 60))

	gray := Grayscale(img)

	if gray.Bounds() != img.Bounds() {
		t.Errorf("Bounds() = %v, want %v", gray.Bounds(), img.Bounds())
	}
}
