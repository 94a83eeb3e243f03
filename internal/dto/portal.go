package dto

import "github.com/campushq/college-portal-api/internal/models"

// StudentAttendance bundles the raw records with their summary.
type StudentAttendance struct {
	Records    []models.Attendance `json:"records"`
	Percentage int                 `json:"percentage"`
	Total      int                 `json:"total"`
	Present    int                 `json:"present"`
}

// StudentPortalResponse is the full payload behind GET /api/student.
type StudentPortalResponse struct {
	Student    models.StudentDetail    `json:"student"`
	Attendance StudentAttendance       `json:"attendance"`
	Marks      []models.Mark           `json:"marks"`
	Fee        *models.Fee             `json:"fee,omitempty"`
	Timetable  []models.TimetableEntry `json:"timetable"`
	Notices    []models.Notice         `json:"notices"`
}

// TeacherRosterEntry is the reduced student projection teachers see.
type TeacherRosterEntry struct {
	ID           string `json:"id"`
	EnrollmentNo string `json:"enrollmentNo"`
	Department   string `json:"department"`
	Semester     int    `json:"semester"`
	UserID       string `json:"userId"`
}

// TeacherOverviewResponse is the payload behind GET /api/teacher.
type TeacherOverviewResponse struct {
	Teacher  models.Teacher       `json:"teacher"`
	Students []TeacherRosterEntry `json:"students"`
	Subjects []string             `json:"subjects"`
}

// AdminStats summarises the catalog for the admin overview.
type AdminStats struct {
	TotalStudents int `json:"totalStudents"`
	TotalTeachers int `json:"totalTeachers"`
	TotalSubjects int `json:"totalSubjects"`
	PendingFees   int `json:"pendingFees"`
}

// AdminOverviewResponse is the payload behind GET /api/admin.
type AdminOverviewResponse struct {
	Students []models.StudentDetail `json:"students"`
	Teachers []models.TeacherDetail `json:"teachers"`
	Subjects []models.Subject       `json:"subjects"`
	Fees     []models.Fee           `json:"fees"`
	Stats    AdminStats             `json:"stats"`
}
