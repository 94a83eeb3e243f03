package models

// Subject is an independent catalog entry. It relates to teachers and
// timetable rows by matching name strings, not by id.
type Subject struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Semester   int    `json:"semester"`
	Credits    int    `json:"credits"`
}
