package reader

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	// Register decoders for the formats scanned transcripts arrive in
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/tsawler/gridscan/format"
)

// ErrUnsupportedFormat is returned when the input is not in a
// recognized image format.
var ErrUnsupportedFormat = errors.New("reader: unsupported image format")

// Reader holds a decoded scan image together with its raw bytes. The
// raw bytes go to the OCR engine unmodified; the decoded image feeds
// the preprocessing filters.
type Reader struct {
	img      image.Image
	data     []byte
	filename string
	format   format.Format
}

// NewReader decodes a scan from raw image bytes.
func NewReader(data []byte) (*Reader, error) {
	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		return nil, ErrUnsupportedFormat
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Reader{
		img:    img,
		data:   data,
		format: f,
	}, nil
}

// Open reads and decodes a scan image from a file.
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	reader, err := NewReader(data)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return nil, err
	}
	reader.filename = filename

	return reader, nil
}

// Image returns the decoded image.
func (r *Reader) Image() image.Image {
	return r.img
}

// Bytes returns the raw file bytes.
func (r *Reader) Bytes() []byte {
	return r.data
}

// Format returns the detected image format.
func (r *Reader) Format() format.Format {
	return r.format
}

// Filename returns the source path, or "" when read from memory.
func (r *Reader) Filename() string {
	return r.filename
}

// Bounds returns the image's pixel bounds.
func (r *Reader) Bounds() image.Rectangle {
	return r.img.Bounds()
}

// Width returns the image width in pixels.
func (r *Reader) Width() int {
	return r.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (r *Reader) Height() int {
	return r.img.Bounds().Dy()
}
