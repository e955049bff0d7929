// Package export writes scan results in spreadsheet and document formats.
//
// This package takes the table reconstructed from a transcript scan,
// together with the metadata extracted around it, and renders them in
// formats suitable for grade processing workflows.
//
// # Formats
//
// The [Exporter] supports:
//
//   - CSV - comma-separated values with a UTF-8 byte order mark, so
//     spreadsheet applications open Vietnamese text correctly
//   - TSV - tab-separated values
//   - JSON - a structured grades document with typed values
//   - Markdown - a Markdown table preceded by a metadata list
//   - HTML - an HTML fragment with a table element
//   - XLSX - an Excel workbook with "Table Data" and "Metadata" sheets
//
// # Usage
//
// Exporting to a file:
//
//	doc := export.Document{Table: table, Metadata: &meta}
//	exporter := export.NewExporterWithConfig(export.XLSXConfig())
//	err := exporter.ExportToFile(doc, "transcript.xlsx")
//
// Shortcut functions cover the text formats:
//
//	csv, err := export.ToCSV(doc)
//	md, err := export.ToMarkdown(doc)
//
// # Metadata Placement
//
// When [Config].IncludeMetadata is set, the populated metadata fields
// precede the table: as label/value rows in CSV and TSV, a bold list
// in Markdown, a definition list in HTML, a "metadata" object in JSON
// and a dedicated sheet in XLSX.
//
// # Value Typing
//
// JSON and XLSX exports parse grade values with the rules used for
// header detection: decimal commas are accepted ("8,5" becomes 8.5)
// and a trailing percent sign is ignored. Cells that do not parse stay
// strings.
package export
