package filters

import (
	"image"
	"image/color"
	"testing"
)

func TestScale_Up(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 50))

	out := Scale(img, 2.0)

	bounds := out.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 100 {
		t.Errorf("scaled to %dx%d, want 200x100", bounds.Dx(), bounds.Dy())
	}
}

func TestScale_Down(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 100, 50))

	out := Scale(img, 0.5)

	bounds := out.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("scaled to %dx%d, want 50x25", bounds.Dx(), bounds.Dy())
	}
}

func TestScale_Identity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))

	if out := Scale(img, 1); out != image.Image(img) {
		t.Error("factor 1 should return the image unchanged")
	}
}

func TestScale_FloorsAtOnePixel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 10))

	out := Scale(img, 0.01)

	bounds := out.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		t.Errorf("scaled to %dx%d, want at least 1x1", bounds.Dx(), bounds.Dy())
	}
}

func TestScale_PreservesContent(t *testing.T) {
	// A solid white image must stay white through interpolation
	img := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	out := Scale(img, 2.0)

	r, g, b, _ := out.At(10, 10).RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("center pixel = %v, want white", color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b)})
	}
}
