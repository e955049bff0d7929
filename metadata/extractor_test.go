package metadata

import (
	"strings"
	"testing"
)

func TestExtract_FullTranscript(t *testing.T) {
	text := "TRƯỜNG THCS NGUYỄN DU\n" +
		"BẢNG ĐIỂM HỌC SINH\n" +
		"Họ và tên: Nguyễn Văn A\n" +
		"Lớp: 9A    Năm học: 2024-2025\n" +
		"Học kỳ: I"

	record := Extract(text)

	if record.StudentName != "Nguyễn Văn A" {
		t.Errorf("StudentName = %q, want 'Nguyễn Văn A'", record.StudentName)
	}
	if record.Class != "9A" {
		t.Errorf("Class = %q, want '9A'", record.Class)
	}
	if record.AcademicYear != "2024-2025" {
		t.Errorf("AcademicYear = %q, want '2024-2025'", record.AcademicYear)
	}
	if record.Semester != "I" {
		t.Errorf("Semester = %q, want 'I'", record.Semester)
	}
	if record.School != "THCS NGUYỄN DU" {
		t.Errorf("School = %q, want 'THCS NGUYỄN DU'", record.School)
	}
}

func TestExtract_NameLineOnly(t *testing.T) {
	record := Extract("Họ và tên: Nguyen Van A")

	if record.StudentName != "Nguyen Van A" {
		t.Errorf("StudentName = %q, want 'Nguyen Van A'", record.StudentName)
	}

	record.StudentName = ""
	if !record.IsEmpty() {
		t.Errorf("no other field should be set, got %+v", record)
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	record := Extract("HỌ VÀ TÊN: TRẦN THỊ B")

	if record.StudentName != "TRẦN THỊ B" {
		t.Errorf("StudentName = %q, want 'TRẦN THỊ B'", record.StudentName)
	}
}

func TestExtract_DiacriticInsensitive(t *testing.T) {
	// OCR frequently drops diacritics from labels
	record := Extract("Ho va ten: Le Van C\nLop: 8B")

	if record.StudentName != "Le Van C" {
		t.Errorf("StudentName = %q, want 'Le Van C'", record.StudentName)
	}
	if record.Class != "8B" {
		t.Errorf("Class = %q, want '8B'", record.Class)
	}
}

func TestExtract_DecomposedInput(t *testing.T) {
	// "Lớp" written with a combining acute accent instead of the
	// precomposed rune
	record := Extract("L\u01a1\u0301p: 9A")

	if record.Class != "9A" {
		t.Errorf("Class = %q, want '9A'", record.Class)
	}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	text := "Lớp: 9A\nLớp: 7C"

	record := Extract(text)

	if record.Class != "9A" {
		t.Errorf("Class = %q, want first value '9A'", record.Class)
	}
}

func TestExtract_MultipleFieldsOneLine(t *testing.T) {
	record := Extract("Họ và tên: Nguyễn Văn A    Lớp: 9A")

	if record.StudentName != "Nguyễn Văn A" {
		t.Errorf("StudentName = %q, want 'Nguyễn Văn A' (value must stop at the next label)", record.StudentName)
	}
	if record.Class != "9A" {
		t.Errorf("Class = %q, want '9A'", record.Class)
	}
}

func TestExtract_EmptyValueSkipped(t *testing.T) {
	// A label with nothing after it leaves the field open for a later
	// occurrence
	text := "Lớp:\nLớp: 6A"

	record := Extract(text)

	if record.Class != "6A" {
		t.Errorf("Class = %q, want '6A'", record.Class)
	}
}

func TestExtract_LabelContainment(t *testing.T) {
	// "Môn học" contains "môn"; the longer label must win so the value
	// does not swallow half the label
	record := Extract("Môn học: Toán")

	if record.Subject != "Toán" {
		t.Errorf("Subject = %q, want 'Toán'", record.Subject)
	}
}

func TestExtract_CompositeNameLabel(t *testing.T) {
	record := Extract("Họ và tên học sinh: Phạm Thị D")

	if record.StudentName != "Phạm Thị D" {
		t.Errorf("StudentName = %q, want 'Phạm Thị D'", record.StudentName)
	}
}

func TestExtract_NameLabelVariants(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Tên: Nguyễn Văn A", "Nguyễn Văn A"},
		{"Tên học sinh: Phạm Văn E", "Phạm Văn E"},
		{"Name: John Smith", "John Smith"},
		{"Student: Jane Doe", "Jane Doe"},
	}

	for _, tc := range tests {
		record := Extract(tc.input)
		if record.StudentName != tc.expected {
			t.Errorf("Extract(%q).StudentName = %q, want %q", tc.input, record.StudentName, tc.expected)
		}
	}
}

func TestExtract_GradeLevel(t *testing.T) {
	t.Run("khoi lop", func(t *testing.T) {
		record := Extract("Khối lớp: 9")
		if record.GradeLevel != "9" {
			t.Errorf("GradeLevel = %q, want '9'", record.GradeLevel)
		}
		if record.Class != "" {
			t.Errorf("Class = %q, want empty ('lớp' is part of the grade label)", record.Class)
		}
	})

	t.Run("khoi", func(t *testing.T) {
		record := Extract("Khối: 8")
		if record.GradeLevel != "8" {
			t.Errorf("GradeLevel = %q, want '8'", record.GradeLevel)
		}
	})
}

func TestExtract_Semester(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Học kỳ I", "I"},
		{"Học kì 2", "2"},
		{"Semester: 1", "1"},
		{"HK 2", "2"},
		{"HK: I", "I"},
		// "HK1" is a column heading, not a label: no word boundary
		// separates the digit, so it must not populate the field
		{"HK1 HK2", ""},
	}

	for _, tc := range tests {
		record := Extract(tc.input)
		if record.Semester != tc.expected {
			t.Errorf("Extract(%q).Semester = %q, want %q", tc.input, record.Semester, tc.expected)
		}
	}
}

func TestExtract_EnglishLabels(t *testing.T) {
	text := "Student name: John Smith\nClass: 10A\nSchool year: 2023-2024"

	record := Extract(text)

	if record.StudentName != "John Smith" {
		t.Errorf("StudentName = %q, want 'John Smith'", record.StudentName)
	}
	if record.Class != "10A" {
		t.Errorf("Class = %q, want '10A'", record.Class)
	}
	if record.AcademicYear != "2023-2024" {
		t.Errorf("AcademicYear = %q, want '2023-2024'", record.AcademicYear)
	}
}

func TestExtract_NoLabels(t *testing.T) {
	record := Extract("8,5 9,0 7,5\nToán Văn Anh")

	if !record.IsEmpty() {
		t.Errorf("Expected empty record, got %+v", record)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	record := Extract("")

	if !record.IsEmpty() {
		t.Errorf("Expected empty record, got %+v", record)
	}
}

func TestExtract_TruncationKeepsEarlierMatches(t *testing.T) {
	lines := []string{
		"Trường: THCS Nguyễn Du",
		"Họ và tên: Nguyễn Văn A",
		"Lớp: 9A",
		"Năm học: 2024-2025",
	}

	full := Extract(strings.Join(lines, "\n"))

	// Dropping trailing lines must never change fields matched from the
	// lines that remain.
	for keep := len(lines) - 1; keep >= 1; keep-- {
		truncated := Extract(strings.Join(lines[:keep], "\n"))

		if truncated.School != full.School {
			t.Errorf("School after truncating to %d lines = %q, want %q", keep, truncated.School, full.School)
		}
		if keep >= 2 && truncated.StudentName != full.StudentName {
			t.Errorf("StudentName after truncating to %d lines = %q, want %q", keep, truncated.StudentName, full.StudentName)
		}
		if keep >= 3 && truncated.Class != full.Class {
			t.Errorf("Class after truncating to %d lines = %q, want %q", keep, truncated.Class, full.Class)
		}
	}
}

func TestNewExtractorWithRules(t *testing.T) {
	rules := append(DefaultRules(), Rule{
		Field:  FieldSchool,
		Labels: []string{"don vi"},
	})
	extractor := NewExtractorWithRules(rules)

	record := extractor.Extract("Đơn vị: THPT Lê Lợi")

	if record.School != "THPT Lê Lợi" {
		t.Errorf("School = %q, want 'THPT Lê Lợi'", record.School)
	}
}

func TestField_String(t *testing.T) {
	tests := []struct {
		field    Field
		expected string
	}{
		{FieldStudentName, "student_name"},
		{FieldClass, "class"},
		{FieldGradeLevel, "grade_level"},
		{FieldSchool, "school"},
		{FieldSubject, "subject"},
		{FieldSemester, "semester"},
		{FieldAcademicYear, "academic_year"},
		{FieldUnknown, "unknown"},
		{Field(99), "unknown"},
	}

	for _, tc := range tests {
		if tc.field.String() != tc.expected {
			t.Errorf("Field.String() = %q, want %q", tc.field.String(), tc.expected)
		}
	}
}

func BenchmarkExtract(b *testing.B) {
	extractor := NewExtractor()
	text := "TRƯỜNG THCS NGUYỄN DU\n" +
		"Họ và tên: Nguyễn Văn A\n" +
		"Lớp: 9A    Năm học: 2024-2025\n" +
		"Học kỳ: I\n" +
		"Toán 8,5 9,0\nNgữ văn 7,5 8,0\nTiếng Anh 9,0 9,5"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		extractor.Extract(text)
	}
}
