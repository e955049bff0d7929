// Package tables reconstructs tabular structure from OCR tokens.
//
// Scanned transcript tables rarely survive OCR with usable ruling
// lines, so this package rebuilds the grid from token positions alone.
//
// # Reconstructors
//
// Table reconstruction is performed by types implementing the
// [Reconstructor] interface. The package provides:
//
//   - [ProximityReconstructor] - clusters token positions spatially
//
// Reconstructors are registered globally and can be retrieved by name:
//
//	r := tables.GetReconstructor("proximity")
//	table, err := r.Reconstruct(tokens)
//
// For the common case the package-level [Reconstruct] runs the
// proximity algorithm with defaults.
//
// # Proximity Reconstruction
//
// The [ProximityReconstructor] uses a multi-step algorithm:
//
//  1. Confidence filtering of tokens
//  2. Row grouping by vertical center proximity
//  3. Column inference by clustering token start positions
//  4. Cell assignment against the shared column boundaries
//  5. Header detection on the first row
//
// Column boundaries are inferred globally rather than per row, so rows
// with missing values still line up with the rest of the table. The
// result is always rectangular: a table with N columns carries N-1
// boundaries, and every row has exactly N cells.
//
// # Configuration
//
// Reconstructor behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MinConfidence = 0.5
//	config.RowTolerance = 8
//	table, err := tables.ReconstructWithConfig(tokens, config)
//
// Tolerances left at zero adapt to the content, derived from the
// median token height.
//
// # Grade Values
//
// [IsNumeric] and [ParseNumber] understand the numeric formats found
// on Vietnamese transcripts, including comma decimal separators.
// [IsHeaderRow] applies them to decide whether a row is a header.
package tables
