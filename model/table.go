package model

import (
	"fmt"
	"strings"
)

// Cell represents a single cell of a reconstructed table
type Cell struct {
	// Text content of the cell. Cells no token landed in hold the
	// empty string.
	Text string

	// BBox is the union of the boxes of the tokens merged into this
	// cell. Zero for empty cells.
	BBox BBox

	// Confidence is the mean recognition confidence of the merged
	// tokens (0-1). Zero for empty cells.
	Confidence float64
}

// Table represents a table reconstructed from OCR tokens. The grid is
// rectangular: every row holds the same number of cells.
type Table struct {
	// Rows holds the cell grid
	Rows [][]Cell

	// ColumnBoundaries holds the X positions separating adjacent
	// columns, sorted ascending. A table with N columns carries N-1
	// boundaries.
	ColumnBoundaries []float64

	// RowCenters holds the mean vertical center of each row, sorted
	// ascending (topmost row first)
	RowCenters []float64

	// BBox is the region of the source image the table covers
	BBox BBox

	// HasHeader reports whether the first row was classified as a
	// header row
	HasHeader bool

	// Confidence is the mean recognition confidence of the tokens the
	// table was built from (0-1)
	Confidence float64
}

// GetText returns the table as tab-separated text, one line per row
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewTable creates a new table with given dimensions
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows: make([][]Cell, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row %d out of range [0, %d)", row, len(t.Rows))
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col %d out of range [0, %d)", col, len(t.Rows[row]))
	}
	t.Rows[row][col] = cell
	return nil
}

// Strings returns the table as rows of cell text. The outer slice has
// one entry per row and every inner slice has ColCount entries.
func (t *Table) Strings() [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cell.Text
		}
	}
	return rows
}

// ToMarkdown converts the table to markdown format
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	sb.WriteString("|")
	for _, cell := range t.Rows[0] {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	// Separator
	sb.WriteString("|")
	for range t.Rows[0] {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	// Data rows
	for _, row := range t.Rows[1:] {
		sb.WriteString("|")
		for _, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToCSV converts the table to CSV format
func (t *Table) ToCSV() string {
	var sb strings.Builder

	for _, row := range t.Rows {
		for j, cell := range row {
			if j > 0 {
				sb.WriteString(",")
			}
			text := cell.Text
			// Quote fields containing commas, quotes, or newlines
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
