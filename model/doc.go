// Package model provides the shared data structures for scanned
// transcript processing.
//
// This package defines the user-facing types every pipeline stage
// produces or consumes. OCR recognition emits [Token] values, table
// reconstruction turns them into a [Table], and metadata extraction
// fills a [MetadataRecord] with the academic fields printed around the
// table.
//
// # Coordinate System
//
// All geometry uses image pixel coordinates: the origin is the top-left
// corner of the scan and Y grows downward, matching the coordinate
// system OCR engines report word boxes in. [BBox.Top] is therefore the
// smaller Y edge and [BBox.Bottom] the larger one.
//
// # Tokens
//
// A [Token] is one unit of recognized text with its bounding box and a
// recognition confidence in the range [0, 1]:
//
//	tok := model.NewToken("Toán", model.NewBBox(40, 118, 52, 18), 0.96)
//
// # Tables
//
// The [Table] type represents a reconstructed grid. It is always
// rectangular: every row holds the same number of [Cell] values, and a
// table with N columns carries N-1 column boundary positions. Export
// helpers include Strings(), GetText(), ToMarkdown(), and ToCSV().
//
// # Metadata
//
// A [MetadataRecord] carries the fields recognized around the table,
// such as the student name and class. Every field is optional; absent
// fields hold the empty string.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [BBox] - bounding box with intersection, union, and overlap calculations
//   - [Point] - 2D point with distance calculation
package model
