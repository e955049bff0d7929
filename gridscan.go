// Package gridscan provides a fluent API for turning scanned Vietnamese
// student transcripts into structured grade tables and metadata.
//
// A scan runs OCR over a transcript image, reconstructs the grade table
// from the positions of the recognized words, and pulls student fields
// out of the surrounding text:
//
//	result, warnings, err := gridscan.FromFile("transcript.png").Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", gridscan.FormatWarnings(warnings))
//	}
//	fmt.Println(result.ClipboardText())
//
// With options:
//
//	table, _, err := gridscan.FromFile("transcript.png").
//	    WithLanguages("vie").
//	    WithScale(2).
//	    WithAutoThreshold().
//	    Table()
//
// Scanning images requires a Tesseract installation and the ocr build
// tag; see the ocr package for setup. Token and text sources work
// without it:
//
//	record, _, err := gridscan.FromText(recognized).Metadata()
//
// For advanced use cases the lower-level reader, tables, metadata, and
// export packages are also available.
package gridscan

import (
	"errors"
	"image"

	"github.com/tsawler/gridscan/model"
)

// ErrNoSource is returned by terminal operations on a Scanner that was
// not created through one of the From constructors.
var ErrNoSource = errors.New("gridscan: no input source")

// FromFile creates a Scanner for a transcript image file (PNG, JPEG,
// GIF, BMP, or TIFF). The file is not read until a terminal operation
// like Result() runs.
//
// Example:
//
//	result, warnings, err := gridscan.FromFile("transcript.png").Result()
func FromFile(filename string) *Scanner {
	return &Scanner{
		source:   sourceFile,
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes creates a Scanner from raw image bytes, detecting the
// format from the content.
func FromBytes(data []byte) *Scanner {
	return &Scanner{
		source:  sourceBytes,
		data:    data,
		options: defaultOptions(),
	}
}

// FromImage creates a Scanner from an already-decoded image. The image
// is re-encoded as PNG before it is handed to the OCR engine.
func FromImage(img image.Image) *Scanner {
	return &Scanner{
		source:  sourceImage,
		img:     img,
		options: defaultOptions(),
	}
}

// FromTokens creates a Scanner from tokens recognized elsewhere. No OCR
// runs; table reconstruction and metadata extraction work directly on
// the given tokens. Useful for reprocessing a previous scan with
// different settings and for tests.
func FromTokens(tokens []model.Token) *Scanner {
	return &Scanner{
		source:  sourceTokens,
		tokens:  tokens,
		options: defaultOptions(),
	}
}

// FromText creates a Scanner from already-recognized plain text. Only
// text and metadata operations are available; there are no token
// positions to reconstruct a table from.
//
// Example:
//
//	record, _, err := gridscan.FromText(recognized).Metadata()
func FromText(text string) *Scanner {
	return &Scanner{
		source:  sourceText,
		text:    text,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	exporter := gridscan.Must(os.Create("grades.csv"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustScan is a helper that wraps a terminal operation like Result() or
// Table() and panics if the error is non-nil. It discards warnings and
// returns just the value. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	table := gridscan.MustScan(gridscan.FromFile("transcript.png").Table())
func MustScan[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
