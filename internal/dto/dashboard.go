package dto

import "github.com/campushq/college-portal-api/internal/models"

// StudentDashboardStats is the stats block for a student session.
type StudentDashboardStats struct {
	AttendancePercentage int `json:"attendancePercentage"`
	TotalSubjects        int `json:"totalSubjects"`
	RecentNotices        int `json:"recentNotices"`
}

// TeacherDashboardStats is the stats block for a teacher session.
type TeacherDashboardStats struct {
	TotalStudents  int    `json:"totalStudents"`
	SubjectsTaught int    `json:"subjectsTaught"`
	Department     string `json:"department"`
}

// AdminDashboardStats is the stats block for an admin session.
type AdminDashboardStats struct {
	TotalStudents int `json:"totalStudents"`
	TotalTeachers int `json:"totalTeachers"`
	TotalSubjects int `json:"totalSubjects"`
	RecentNotices int `json:"recentNotices"`
}

// DashboardResponse keys the stats block by the session role.
type DashboardResponse struct {
	Role  models.UserRole `json:"role"`
	Stats interface{}     `json:"stats"`
}
