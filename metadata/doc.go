// Package metadata extracts labeled academic fields from recognized
// transcript text.
//
// Vietnamese transcripts print identifying fields around the grade
// table: student name ("Họ và tên"), class ("Lớp"), school ("Trường"),
// semester ("Học kỳ"), academic year ("Năm học") and so on. This
// package finds those labels and captures their values.
//
// # Extraction
//
//	record := metadata.Extract(text)
//
// Text is scanned line by line. Labels match case-insensitively and
// diacritic-insensitively, so "HỌ VÀ TÊN", "Họ và tên" and OCR output
// that lost its marks ("Ho va ten") all hit the same rule. A label's
// value runs from the label to the next label on the line or to the
// end of the line, which handles forms that print several fields on
// one row:
//
//	Họ và tên: Nguyễn Văn A    Lớp: 9A
//
// The first value found for a field wins; later occurrences are
// ignored.
//
// # Rules
//
// Matching is driven by [Rule] values binding a [Field] to its label
// variants. [DefaultRules] covers standard Vietnamese transcripts with
// English variants for bilingual forms. Custom rule sets plug in
// through [NewExtractorWithRules]:
//
//	rules := append(metadata.DefaultRules(), metadata.Rule{
//		Field:  metadata.FieldSchool,
//		Labels: []string{"don vi"},
//	})
//	extractor := metadata.NewExtractorWithRules(rules)
//
// # Folding
//
// [Fold] implements the diacritic stripping used for matching. It maps
// every rune to exactly one output rune, so match offsets in folded
// text can be carried back to the original line to slice out values
// with their diacritics intact.
package metadata
