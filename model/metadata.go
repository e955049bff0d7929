package model

// MetadataRecord holds the academic fields recognized in the free text
// printed around a transcript table. Every field is optional: a field
// the text never mentioned holds the empty string.
type MetadataRecord struct {
	// StudentName is the student's full name ("Họ và tên")
	StudentName string `json:"student_name,omitempty"`

	// Class is the class designation, such as "9A" ("Lớp")
	Class string `json:"class,omitempty"`

	// GradeLevel is the school grade level ("Khối")
	GradeLevel string `json:"grade_level,omitempty"`

	// School is the school name ("Trường")
	School string `json:"school,omitempty"`

	// Subject is the subject name ("Môn học")
	Subject string `json:"subject,omitempty"`

	// Semester identifies the semester ("Học kỳ")
	Semester string `json:"semester,omitempty"`

	// AcademicYear is the school year, such as "2024-2025" ("Năm học")
	AcademicYear string `json:"academic_year,omitempty"`
}

// IsEmpty reports whether no field was populated
func (m MetadataRecord) IsEmpty() bool {
	return m == MetadataRecord{}
}

// Fields returns the populated fields as label/value pairs in a stable
// order, suitable for tabular export
func (m MetadataRecord) Fields() [][2]string {
	all := [][2]string{
		{"Student Name", m.StudentName},
		{"Class", m.Class},
		{"Grade Level", m.GradeLevel},
		{"School", m.School},
		{"Subject", m.Subject},
		{"Semester", m.Semester},
		{"Academic Year", m.AcademicYear},
	}

	fields := make([][2]string, 0, len(all))
	for _, f := range all {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
