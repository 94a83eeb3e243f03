package dto

import (
	"encoding/json"

	"github.com/campushq/college-portal-api/internal/models"
)

// ActionEnvelope is the request body for the action-dispatch endpoints.
// Data stays raw until the action name selects its typed payload.
type ActionEnvelope struct {
	Action string          `json:"action" validate:"required"`
	Data   json.RawMessage `json:"data"`
}

// Teacher actions.
const (
	ActionMarkAttendance = "mark_attendance"
	ActionAddMark        = "add_mark"
	ActionUpdateMark     = "update_mark"
	ActionPostNotice     = "post_notice"
)

// Admin actions.
const (
	ActionAddStudent    = "add_student"
	ActionUpdateStudent = "update_student"
	ActionDeleteStudent = "delete_student"
	ActionAddTeacher    = "add_teacher"
	ActionAddSubject    = "add_subject"
	ActionUpdateFee     = "update_fee"
)

// Auth actions.
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// MarkAttendanceRequest upserts one attendance row.
type MarkAttendanceRequest struct {
	StudentID string                  `json:"studentId" validate:"required"`
	Date      string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late"`
	Subject   string                  `json:"subject" validate:"required"`
}

// AddMarkRequest appends a mark row dated today.
type AddMarkRequest struct {
	StudentID     string          `json:"studentId" validate:"required"`
	Subject       string          `json:"subject" validate:"required"`
	ExamType      models.ExamType `json:"examType" validate:"required,oneof=midterm final assignment quiz"`
	MarksObtained int             `json:"marksObtained" validate:"min=0"`
	TotalMarks    int             `json:"totalMarks" validate:"required,min=1"`
}

// UpdateMarkRequest overwrites marksObtained only.
type UpdateMarkRequest struct {
	ID            string `json:"id" validate:"required"`
	MarksObtained int    `json:"marksObtained" validate:"min=0"`
}

// PostNoticeRequest prepends a notice; author and role are stamped
// from the session, never from the payload.
type PostNoticeRequest struct {
	Title          string                `json:"title" validate:"required"`
	Content        string                `json:"content" validate:"required"`
	TargetAudience models.NoticeAudience `json:"targetAudience" validate:"required,oneof=all students teachers"`
	Priority       models.NoticePriority `json:"priority" validate:"required,oneof=low medium high"`
}

// AddStudentRequest creates a student user plus its enrollment record.
type AddStudentRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	EnrollmentNo string `json:"enrollmentNo" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Semester     int    `json:"semester" validate:"required,min=1,max=8"`
	Year         int    `json:"year" validate:"required,min=1,max=4"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"dateOfBirth"`
	Address      string `json:"address"`
}

// UpdateStudentRequest partially overwrites a student row.
type UpdateStudentRequest struct {
	ID string `json:"id" validate:"required"`
	models.StudentUpdate
}

// DeleteStudentRequest removes a student and all dependent records.
type DeleteStudentRequest struct {
	ID string `json:"id" validate:"required"`
}

// AddTeacherRequest creates a teacher user plus its staff record.
type AddTeacherRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=6"`
	EmployeeID  string   `json:"employeeId" validate:"required"`
	Department  string   `json:"department" validate:"required"`
	Designation string   `json:"designation" validate:"required"`
	Phone       string   `json:"phone"`
	Subjects    []string `json:"subjects"`
}

// AddSubjectRequest appends a catalog entry.
type AddSubjectRequest struct {
	Code       string `json:"code" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Semester   int    `json:"semester" validate:"required,min=1,max=8"`
	Credits    int    `json:"credits" validate:"required,min=1"`
}

// UpdateFeeRequest overwrites the paid amount and status of a fee row.
type UpdateFeeRequest struct {
	ID     string           `json:"id" validate:"required"`
	Paid   int              `json:"paid" validate:"min=0"`
	Status models.FeeStatus `json:"status" validate:"required,oneof=paid pending overdue"`
}
