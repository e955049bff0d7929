package metadata

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/gridscan/model"
	"golang.org/x/text/unicode/norm"
)

// Extractor pulls labeled metadata fields out of recognized transcript
// text.
type Extractor struct {
	patterns []pattern
}

// pattern is a compiled rule: one regex matching any of the rule's
// labels against folded line text.
type pattern struct {
	field Field
	re    *regexp.Regexp
}

// NewExtractor creates an extractor with the default transcript rules.
func NewExtractor() *Extractor {
	return NewExtractorWithRules(DefaultRules())
}

// NewExtractorWithRules creates an extractor with custom rules.
func NewExtractorWithRules(rules []Rule) *Extractor {
	return &Extractor{
		patterns: compileRules(rules),
	}
}

// compileRules builds one regex per rule, matching any of its labels on
// a word boundary. Labels are quoted literally with spaces widened to
// arbitrary whitespace, so OCR output with doubled spaces still matches.
func compileRules(rules []Rule) []pattern {
	patterns := make([]pattern, 0, len(rules))
	for _, rule := range rules {
		if len(rule.Labels) == 0 {
			continue
		}

		alts := make([]string, len(rule.Labels))
		for i, label := range rule.Labels {
			alt := regexp.QuoteMeta(label)
			alts[i] = strings.ReplaceAll(alt, " ", `\s+`)
		}

		patterns = append(patterns, pattern{
			field: rule.Field,
			re:    regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`),
		})
	}
	return patterns
}

// Extract scans text line by line for labeled metadata fields. Labels
// match case- and diacritic-insensitively, and the first value found
// for a field wins.
func (e *Extractor) Extract(text string) model.MetadataRecord {
	var record model.MetadataRecord

	for _, line := range strings.Split(text, "\n") {
		e.extractLine(line, &record)
	}

	return record
}

// Extract scans text for labeled metadata fields using the default
// transcript rules.
func Extract(text string) model.MetadataRecord {
	return NewExtractor().Extract(text)
}

// labelMatch is one label occurrence on a line: the field it names and
// the label's rune offsets.
type labelMatch struct {
	field      Field
	start, end int
}

// extractLine finds every label on the line and assigns each label the
// text running up to the next label or the end of the line.
func (e *Extractor) extractLine(line string, record *model.MetadataRecord) {
	// Compose first so combining marks collapse into single runes and
	// the folded text stays rune-aligned with the line.
	line = norm.NFC.String(line)
	folded := Fold(line)

	var matches []labelMatch
	for _, p := range e.patterns {
		for _, loc := range p.re.FindAllStringIndex(folded, -1) {
			matches = append(matches, labelMatch{
				field: p.field,
				start: utf8.RuneCountInString(folded[:loc[0]]),
				end:   utf8.RuneCountInString(folded[:loc[1]]),
			})
		}
	}
	if len(matches) == 0 {
		return
	}

	// Leftmost label first; on ties the longer label wins, so "môn học"
	// beats the "môn" it contains.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start != matches[j].start {
			return matches[i].start < matches[j].start
		}
		return matches[i].end > matches[j].end
	})

	// Drop labels that overlap an earlier, longer one
	var kept []labelMatch
	lastEnd := -1
	for _, m := range matches {
		if m.start < lastEnd {
			continue
		}
		kept = append(kept, m)
		lastEnd = m.end
	}

	for i, m := range kept {
		valueStart := m.end
		valueEnd := utf8.RuneCountInString(folded)
		if i+1 < len(kept) {
			valueEnd = kept[i+1].start
		}

		value := sliceRunes(line, valueStart, valueEnd)
		value = strings.TrimLeft(value, " \t:.-")
		value = strings.TrimRight(value, " \t,;|-")
		if value == "" {
			continue
		}

		assign(record, m.field, value)
	}
}

// sliceRunes returns the substring of s between two rune offsets.
func sliceRunes(s string, start, end int) string {
	return s[byteOffset(s, start):byteOffset(s, end)]
}

// byteOffset returns the byte offset of the rune with the given index,
// or len(s) when the index is past the end.
func byteOffset(s string, runeIndex int) int {
	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}
	return len(s)
}

// assign sets the record field if it is still empty.
func assign(record *model.MetadataRecord, field Field, value string) {
	switch field {
	case FieldStudentName:
		if record.StudentName == "" {
			record.StudentName = value
		}
	case FieldClass:
		if record.Class == "" {
			record.Class = value
		}
	case FieldGradeLevel:
		if record.GradeLevel == "" {
			record.GradeLevel = value
		}
	case FieldSchool:
		if record.School == "" {
			record.School = value
		}
	case FieldSubject:
		if record.Subject == "" {
			record.Subject = value
		}
	case FieldSemester:
		if record.Semester == "" {
			record.Semester = value
		}
	case FieldAcademicYear:
		if record.AcademicYear == "" {
			record.AcademicYear = value
		}
	}
}
