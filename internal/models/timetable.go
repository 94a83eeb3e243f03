package models

// TimetableEntry is read-only reference data scoped by department and
// semester.
type TimetableEntry struct {
	ID         string `json:"id"`
	Day        string `json:"day"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Subject    string `json:"subject"`
	Teacher    string `json:"teacher"`
	Room       string `json:"room"`
	Department string `json:"department"`
	Semester   int    `json:"semester"`
}
