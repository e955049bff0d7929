package metadata

// Field identifies a metadata field printed around a transcript table.
type Field int

const (
	FieldUnknown Field = iota
	FieldStudentName
	FieldClass
	FieldGradeLevel
	FieldSchool
	FieldSubject
	FieldSemester
	FieldAcademicYear
)

// String returns the field's identifier.
func (f Field) String() string {
	switch f {
	case FieldStudentName:
		return "student_name"
	case FieldClass:
		return "class"
	case FieldGradeLevel:
		return "grade_level"
	case FieldSchool:
		return "school"
	case FieldSubject:
		return "subject"
	case FieldSemester:
		return "semester"
	case FieldAcademicYear:
		return "academic_year"
	default:
		return "unknown"
	}
}

// Rule binds a field to the labels that introduce it on a printed
// transcript. Labels are written in folded form: lowercase, diacritics
// stripped. Within a rule, list longer labels before shorter ones they
// contain.
type Rule struct {
	Field  Field
	Labels []string
}

// DefaultRules returns matching rules for the labels printed on
// Vietnamese school transcripts, with English variants for bilingual
// forms.
func DefaultRules() []Rule {
	return []Rule{
		{FieldStudentName, []string{"ho va ten", "ten hoc sinh", "ho ten", "hoc sinh", "student name", "full name", "ten", "name", "student"}},
		{FieldSchool, []string{"truong", "school"}},
		{FieldGradeLevel, []string{"khoi lop", "khoi", "grade"}},
		{FieldClass, []string{"lop", "class"}},
		{FieldSubject, []string{"mon hoc", "mon", "subject"}},
		{FieldSemester, []string{"hoc ky", "hoc ki", "hk", "semester"}},
		{FieldAcademicYear, []string{"nam hoc", "academic year", "school year"}},
	}
}
