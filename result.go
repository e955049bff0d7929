package gridscan

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/gridscan/export"
	"github.com/tsawler/gridscan/model"
)

// Result bundles everything a scan produces.
type Result struct {
	// Table is the reconstructed grade table. Nil for text sources.
	Table *model.Table

	// Metadata holds the student fields found in the recognized text.
	// Fields that were not found are empty.
	Metadata model.MetadataRecord

	// Text is the recognized text, assembled top to bottom.
	Text string

	// Tokens are the recognized tokens the table was built from. Nil
	// for text sources.
	Tokens []model.Token
}

// ClipboardText returns the table as tab-separated rows, the shape
// spreadsheet applications paste into a cell range. It returns "" when
// the scan produced no table.
func (r *Result) ClipboardText() string {
	if r.Table == nil {
		return ""
	}
	return strings.TrimSuffix(r.Table.GetText(), "\n")
}

// Document shapes the result for the export package. Empty metadata is
// left off so exports do not emit an empty metadata section.
func (r *Result) Document() export.Document {
	doc := export.Document{Table: r.Table}
	if !r.Metadata.IsEmpty() {
		record := r.Metadata
		doc.Metadata = &record
	}
	return doc
}

// Export writes the result to w using the given export configuration.
//
// Example:
//
//	result.Export(export.JSONConfig(), os.Stdout)
func (r *Result) Export(config export.Config, w io.Writer) error {
	return export.NewExporterWithConfig(config).Export(r.Document(), w)
}

// SaveAs writes the result to a file, picking the export format from
// the file extension (.csv, .tsv, .json, .md, .html, or .xlsx).
func (r *Result) SaveAs(filename string) error {
	format, ok := export.FormatForPath(filename)
	if !ok {
		return fmt.Errorf("gridscan: cannot infer an export format from %q", filename)
	}

	exporter := export.NewExporterWithConfig(export.ConfigForFormat(format))
	return exporter.ExportToFile(r.Document(), filename)
}
