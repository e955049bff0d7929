package tables

import (
	"strconv"
	"strings"

	"github.com/tsawler/gridscan/model"
)

// IsNumeric reports whether s reads as a numeric grade value.
// Vietnamese transcripts write decimals with a comma ("8,5") and
// occasionally suffix a percent sign; both forms count as numeric.
func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// ParseNumber parses a grade value, accepting a comma as the decimal
// separator and a trailing percent sign. The second return value is
// false when s is not numeric.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsHeaderRow reports whether a row looks like a column header: a
// majority of its filled cells are non-numeric labels. An all-empty
// row is never a header.
func IsHeaderRow(cells []model.Cell) bool {
	filled := 0
	numeric := 0

	for _, cell := range cells {
		text := strings.TrimSpace(cell.Text)
		if text == "" {
			continue
		}
		filled++
		if IsNumeric(text) {
			numeric++
		}
	}

	if filled == 0 {
		return false
	}
	return numeric*2 < filled
}
