package models

import "math"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	default:
		return false
	}
}

// Attendance is one row per (student, subject, date). Re-marking the
// same triple overwrites the status in place.
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"studentId"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Subject   string           `json:"subject"`
}

// AttendanceSummary aggregates a student's attendance records.
// Present and late both count toward the percentage.
type AttendanceSummary struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Percentage int `json:"percentage"`
}

// SummarizeAttendance computes the present-or-late ratio rounded to the
// nearest integer, defined as 0 when there are no records.
func SummarizeAttendance(records []Attendance) AttendanceSummary {
	summary := AttendanceSummary{Total: len(records)}
	for _, a := range records {
		if a.Status == AttendancePresent || a.Status == AttendanceLate {
			summary.Present++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = int(math.Round(float64(summary.Present) / float64(summary.Total) * 100))
	}
	return summary
}
