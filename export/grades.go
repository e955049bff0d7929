package export

import (
	"fmt"
	"strings"

	"github.com/tsawler/gridscan/metadata"
	"github.com/tsawler/gridscan/model"
	"github.com/tsawler/gridscan/tables"
)

// gradesDocument is the JSON shape of an exported transcript. Each
// grade row is keyed by column header, with the subject column
// promoted to a stable "subject" key and grade values parsed into
// numbers.
type gradesDocument struct {
	Metadata *model.MetadataRecord    `json:"metadata,omitempty"`
	Columns  []string                 `json:"columns,omitempty"`
	Grades   []map[string]interface{} `json:"grades"`
}

// buildGradesDocument shapes a reconstructed table and its metadata
// into the structure exported as JSON.
func buildGradesDocument(doc Document, includeMetadata bool) gradesDocument {
	out := gradesDocument{Grades: []map[string]interface{}{}}

	if includeMetadata && doc.Metadata != nil && !doc.Metadata.IsEmpty() {
		out.Metadata = doc.Metadata
	}

	table := doc.Table
	if table == nil || table.RowCount() == 0 {
		return out
	}

	keys := columnKeys(table)
	out.Columns = keys
	subjectCol := findSubjectColumn(table)

	start := 0
	if table.HasHeader {
		start = 1
	}

	for _, row := range table.Strings()[start:] {
		grade := make(map[string]interface{}, len(row))
		for col, text := range row {
			if text == "" {
				continue
			}
			if col == subjectCol {
				grade["subject"] = text
				continue
			}
			if v, ok := tables.ParseNumber(text); ok {
				grade[keys[col]] = v
			} else {
				grade[keys[col]] = text
			}
		}
		if len(grade) > 0 {
			out.Grades = append(out.Grades, grade)
		}
	}

	return out
}

// columnKeys derives a JSON key for every column: the header text when
// the table carries a header row, otherwise "column_N" (1-based).
func columnKeys(table *model.Table) []string {
	cols := table.ColCount()
	keys := make([]string, cols)
	for col := 0; col < cols; col++ {
		key := ""
		if table.HasHeader {
			key = strings.TrimSpace(table.Rows[0][col].Text)
		}
		if key == "" {
			key = fmt.Sprintf("column_%d", col+1)
		}
		keys[col] = key
	}
	return keys
}

// findSubjectColumn locates the column holding subject names. The
// header row is searched for a subject label ("Môn học", "Subject");
// without a header, or when no label matches, the first column is
// assumed.
func findSubjectColumn(table *model.Table) int {
	if !table.HasHeader || table.RowCount() == 0 {
		return 0
	}
	for col, cell := range table.Rows[0] {
		folded := metadata.Fold(cell.Text)
		if strings.Contains(" "+folded+" ", " mon ") || strings.Contains(folded, "subject") {
			return col
		}
	}
	return 0
}
