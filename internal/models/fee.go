package models

// FeeStatus enumerates fee payment states.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
)

// Valid returns true when the status is a supported value.
func (s FeeStatus) Valid() bool {
	switch s {
	case FeePaid, FeePending, FeeOverdue:
		return true
	default:
		return false
	}
}

// Fee tracks the latest semester fee row for a student.
type Fee struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Semester  int       `json:"semester"`
	Amount    int       `json:"amount"`
	Paid      int       `json:"paid"`
	DueDate   string    `json:"dueDate"`
	Status    FeeStatus `json:"status"`
}
