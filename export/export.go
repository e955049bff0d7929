package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/gridscan/model"
	"github.com/tsawler/gridscan/tables"
	"github.com/tsawler/gridscan/xlsx"
)

// Format defines the available export formats
type Format int

const (
	// FormatCSV exports as comma-separated values
	FormatCSV Format = iota
	// FormatTSV exports as tab-separated values
	FormatTSV
	// FormatJSON exports as a structured grades document
	FormatJSON
	// FormatMarkdown exports as a Markdown table
	FormatMarkdown
	// FormatHTML exports as an HTML fragment
	FormatHTML
	// FormatXLSX exports as an Excel workbook
	FormatXLSX
)

// String returns a human-readable representation of the export format
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	case FormatHTML:
		return "html"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".txt"
	}
}

// FormatForPath guesses the export format from a file name's
// extension. It reports false when the extension is not one of the
// supported formats.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, true
	case ".tsv", ".tab":
		return FormatTSV, true
	case ".json":
		return FormatJSON, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	case ".html", ".htm":
		return FormatHTML, true
	case ".xlsx":
		return FormatXLSX, true
	default:
		return FormatCSV, false
	}
}

// ConfigForFormat returns the per-format default configuration.
func ConfigForFormat(format Format) Config {
	switch format {
	case FormatTSV:
		return TSVConfig()
	case FormatJSON:
		return JSONConfig()
	case FormatMarkdown:
		return MarkdownConfig()
	case FormatHTML:
		return HTMLConfig()
	case FormatXLSX:
		return XLSXConfig()
	default:
		return CSVConfig()
	}
}

// Document bundles a reconstructed table with the metadata extracted
// from the text around it. Either part may be nil.
type Document struct {
	Table    *model.Table
	Metadata *model.MetadataRecord
}

// Config holds configuration options for export
type Config struct {
	// Format specifies the export format
	Format Format

	// IncludeMetadata writes the extracted metadata ahead of the table:
	// label/value rows for CSV and TSV, a list for Markdown, a
	// definition list for HTML, a separate sheet for XLSX and an object
	// for JSON
	IncludeMetadata bool

	// CSVDelimiter specifies the delimiter for CSV export (default: comma)
	CSVDelimiter rune

	// UTF8BOM prepends a UTF-8 byte order mark so spreadsheet
	// applications detect the encoding of CSV exports
	UTF8BOM bool

	// PrettyPrint enables pretty printing for JSON export
	PrettyPrint bool

	// Creator is written to the document properties of XLSX exports
	Creator string
}

// DefaultConfig returns sensible defaults for export configuration
func DefaultConfig() Config {
	return Config{
		Format:          FormatCSV,
		IncludeMetadata: true,
		CSVDelimiter:    ',',
		UTF8BOM:         true,
		PrettyPrint:     false,
	}
}

// CSVConfig returns config optimized for CSV export
func CSVConfig() Config {
	config := DefaultConfig()
	config.Format = FormatCSV
	return config
}

// TSVConfig returns config optimized for TSV export
func TSVConfig() Config {
	config := DefaultConfig()
	config.Format = FormatTSV
	config.CSVDelimiter = '\t'
	config.UTF8BOM = false
	return config
}

// JSONConfig returns config optimized for JSON export
func JSONConfig() Config {
	config := DefaultConfig()
	config.Format = FormatJSON
	config.UTF8BOM = false
	config.PrettyPrint = true
	return config
}

// MarkdownConfig returns config optimized for Markdown export
func MarkdownConfig() Config {
	config := DefaultConfig()
	config.Format = FormatMarkdown
	config.UTF8BOM = false
	return config
}

// HTMLConfig returns config optimized for HTML export
func HTMLConfig() Config {
	config := DefaultConfig()
	config.Format = FormatHTML
	config.UTF8BOM = false
	return config
}

// XLSXConfig returns config optimized for XLSX export
func XLSXConfig() Config {
	config := DefaultConfig()
	config.Format = FormatXLSX
	config.UTF8BOM = false
	return config
}

// Exporter handles exporting scan results to various formats
type Exporter struct {
	config Config
}

// NewExporter creates a new exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{
		config: DefaultConfig(),
	}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{
		config: config,
	}
}

// Export writes the document to the specified writer
func (e *Exporter) Export(doc Document, w io.Writer) error {
	switch e.config.Format {
	case FormatCSV, FormatTSV:
		return e.exportDelimited(doc, w)
	case FormatJSON:
		return e.exportJSON(doc, w)
	case FormatMarkdown:
		return e.exportMarkdown(doc, w)
	case FormatHTML:
		return e.exportHTML(doc, w)
	case FormatXLSX:
		return e.exportXLSX(doc, w)
	default:
		return fmt.Errorf("unsupported export format: %v", e.config.Format)
	}
}

// ExportToFile writes the document to a file
func (e *Exporter) ExportToFile(doc Document, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	return e.Export(doc, f)
}

// ExportToString writes the document to a string
func (e *Exporter) ExportToString(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// metadataFields returns the metadata pairs to include, or nil when
// metadata is absent or excluded by configuration.
func (e *Exporter) metadataFields(doc Document) [][2]string {
	if !e.config.IncludeMetadata || doc.Metadata == nil {
		return nil
	}
	return doc.Metadata.Fields()
}

// exportDelimited exports the document as CSV or TSV
func (e *Exporter) exportDelimited(doc Document, w io.Writer) error {
	if e.config.UTF8BOM {
		if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("writing byte order mark: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if e.config.CSVDelimiter != 0 {
		cw.Comma = e.config.CSVDelimiter
	}

	fields := e.metadataFields(doc)
	for _, f := range fields {
		if err := cw.Write([]string{f[0], f[1]}); err != nil {
			return fmt.Errorf("writing metadata row: %w", err)
		}
	}
	if len(fields) > 0 && doc.Table != nil && doc.Table.RowCount() > 0 {
		if err := cw.Write([]string{""}); err != nil {
			return fmt.Errorf("writing separator row: %w", err)
		}
	}

	if doc.Table != nil {
		for i, row := range doc.Table.Strings() {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing table row %d: %w", i, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// exportJSON exports the document as a structured grades document
func (e *Exporter) exportJSON(doc Document, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if e.config.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(buildGradesDocument(doc, e.config.IncludeMetadata))
}

// exportMarkdown exports the document as Markdown
func (e *Exporter) exportMarkdown(doc Document, w io.Writer) error {
	var sb strings.Builder

	fields := e.metadataFields(doc)
	for _, f := range fields {
		sb.WriteString("**")
		sb.WriteString(f[0])
		sb.WriteString(":** ")
		sb.WriteString(f[1])
		sb.WriteString("\n")
	}
	if len(fields) > 0 && doc.Table != nil && doc.Table.RowCount() > 0 {
		sb.WriteString("\n")
	}

	if doc.Table != nil {
		sb.WriteString(doc.Table.ToMarkdown())
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// exportHTML exports the document as an HTML fragment
func (e *Exporter) exportHTML(doc Document, w io.Writer) error {
	var sb strings.Builder

	fields := e.metadataFields(doc)
	if len(fields) > 0 {
		sb.WriteString("<dl>\n")
		for _, f := range fields {
			sb.WriteString("<dt>")
			sb.WriteString(html.EscapeString(f[0]))
			sb.WriteString("</dt><dd>")
			sb.WriteString(html.EscapeString(f[1]))
			sb.WriteString("</dd>\n")
		}
		sb.WriteString("</dl>\n")
	}

	if doc.Table != nil && doc.Table.RowCount() > 0 {
		writeHTMLTable(&sb, doc.Table)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeHTMLTable(sb *strings.Builder, table *model.Table) {
	sb.WriteString("<table>\n")

	rows := table.Strings()
	start := 0
	if table.HasHeader {
		sb.WriteString("<thead>\n<tr>")
		for _, text := range rows[0] {
			sb.WriteString("<th>")
			sb.WriteString(html.EscapeString(text))
			sb.WriteString("</th>")
		}
		sb.WriteString("</tr>\n</thead>\n")
		start = 1
	}

	sb.WriteString("<tbody>\n")
	for _, row := range rows[start:] {
		sb.WriteString("<tr>")
		for _, text := range row {
			sb.WriteString("<td>")
			sb.WriteString(html.EscapeString(text))
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
}

// exportXLSX exports the document as an Excel workbook with a
// "Table Data" sheet and, when metadata is present, a "Metadata" sheet
func (e *Exporter) exportXLSX(doc Document, w io.Writer) error {
	wb := xlsx.NewWorkbook()
	wb.Creator = e.config.Creator

	data := wb.AddSheet("Table Data")
	if doc.Table != nil {
		for i, row := range doc.Table.Strings() {
			cells := make([]xlsx.Cell, len(row))
			for j, text := range row {
				cells[j] = xlsxCell(text, doc.Table.HasHeader && i == 0)
			}
			data.AddRow(cells...)
		}
	}

	fields := e.metadataFields(doc)
	if len(fields) > 0 {
		meta := wb.AddSheet("Metadata")
		meta.AddStringRow("Field", "Value")
		for _, f := range fields {
			meta.AddStringRow(f[0], f[1])
		}
	}

	return wb.Write(w)
}

// xlsxCell types a table cell. Grade values become numeric cells so
// spreadsheet formulas can consume them directly; header cells stay
// strings.
func xlsxCell(text string, header bool) xlsx.Cell {
	if !header {
		if v, ok := tables.ParseNumber(text); ok {
			return xlsx.NumberCell(v)
		}
	}
	return xlsx.StringCell(text)
}

// ToCSV exports the document as CSV
func ToCSV(doc Document) (string, error) {
	return NewExporterWithConfig(CSVConfig()).ExportToString(doc)
}

// ToTSV exports the document as TSV
func ToTSV(doc Document) (string, error) {
	return NewExporterWithConfig(TSVConfig()).ExportToString(doc)
}

// ToJSON exports the document as JSON
func ToJSON(doc Document) (string, error) {
	return NewExporterWithConfig(JSONConfig()).ExportToString(doc)
}

// ToMarkdown exports the document as Markdown
func ToMarkdown(doc Document) (string, error) {
	return NewExporterWithConfig(MarkdownConfig()).ExportToString(doc)
}

// ToHTML exports the document as an HTML fragment
func ToHTML(doc Document) (string, error) {
	return NewExporterWithConfig(HTMLConfig()).ExportToString(doc)
}
