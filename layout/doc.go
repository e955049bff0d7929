// Package layout groups OCR tokens into text lines.
//
// OCR engines report recognized words as independent tokens with pixel
// bounding boxes. Tokens printed on the same row of a scanned page
// rarely share exact Y coordinates, so this package clusters them by
// the vertical centers of their boxes instead.
//
// # Line Grouping
//
// The [Grouper] performs the clustering:
//
//	grouper := layout.NewGrouper()
//	lines := grouper.GroupIntoLines(tokens)
//
// Lines come back top to bottom, with each line's tokens sorted left to
// right. A token joins a line when its vertical center falls within a
// tolerance of the line's running average center, which keeps slightly
// skewed scans from splitting one printed row in two.
//
// # Tolerance
//
// By default the tolerance adapts to the content: half the median token
// height, as computed by [AdaptiveTolerance]. A fixed tolerance can be
// set through [Config]:
//
//	grouper := layout.NewGrouperWithConfig(layout.Config{Tolerance: 8})
//
// # Text Assembly
//
// [AssembleText] joins grouped lines back into plain text, one line per
// printed row, for downstream consumers such as metadata extraction.
package layout
