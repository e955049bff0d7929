// Package reader loads scanned transcript images.
//
// # Opening Scans
//
// Use [Open] to load a scan from a file:
//
//	r, err := reader.Open("transcript.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or [NewReader] for bytes already in memory, such as a clipboard
// paste:
//
//	r, err := reader.NewReader(data)
//
// PNG, JPEG, BMP, TIFF and GIF are supported. The format is detected
// from magic bytes rather than the file extension, and unrecognized
// input fails with [ErrUnsupportedFormat].
//
// # Access
//
// The Reader keeps both representations of the scan:
//
//   - Bytes() - the raw file bytes, passed to the OCR engine as-is
//   - Image() - the decoded image, input to preprocessing filters
//
// Bounds(), Width() and Height() describe the pixel dimensions, and
// Format() reports the detected [format.Format].
package reader
