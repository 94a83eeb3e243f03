package models

// Teacher holds the staff record backing a teacher user.
type Teacher struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	EmployeeID  string   `json:"employeeId"`
	Department  string   `json:"department"`
	Designation string   `json:"designation"`
	Phone       string   `json:"phone"`
	Subjects    []string `json:"subjects"`
}

// TeacherDetail joins a Teacher with its backing user's name and email.
type TeacherDetail struct {
	Teacher
	Name  string `json:"name"`
	Email string `json:"email"`
}
