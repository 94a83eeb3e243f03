package models

// ExamType enumerates the supported exam sittings.
type ExamType string

const (
	ExamMidterm    ExamType = "midterm"
	ExamFinal      ExamType = "final"
	ExamAssignment ExamType = "assignment"
	ExamQuiz       ExamType = "quiz"
)

// Valid returns true when the exam type is a supported value.
func (t ExamType) Valid() bool {
	switch t {
	case ExamMidterm, ExamFinal, ExamAssignment, ExamQuiz:
		return true
	default:
		return false
	}
}

// Mark records marks obtained by a student in one exam sitting.
// Multiple rows per (student, subject) are allowed.
type Mark struct {
	ID            string   `json:"id"`
	StudentID     string   `json:"studentId"`
	Subject       string   `json:"subject"`
	ExamType      ExamType `json:"examType"`
	MarksObtained int      `json:"marksObtained"`
	TotalMarks    int      `json:"totalMarks"`
	Date          string   `json:"date"`
}
