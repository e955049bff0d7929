// Package filters provides image preprocessing for OCR.
//
// Scanned transcripts rarely arrive OCR-ready: print is small,
// lighting is uneven, and compression artifacts blur glyph edges.
// These filters clean a scan up before recognition.
//
// # Pipeline
//
// The scanner applies filters in a fixed order:
//
//	scaled := filters.Scale(img, 2.0)
//	gray := filters.Grayscale(scaled)
//	binary := filters.Threshold(gray, level)
//
// Scale uses Catmull-Rom interpolation, which keeps glyph edges sharp
// when upscaling. Grayscale collapses color scans to 8-bit intensity.
// Threshold binarizes at a fixed level, or at one chosen automatically
// by [OtsuLevel]:
//
//	binary := filters.OtsuThreshold(gray)
//
// Otsu's method picks the level that best separates the histogram's
// two classes, which on a scan are ink and paper.
package filters
