package models

// Student holds the enrollment record backing a student user.
type Student struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	EnrollmentNo string `json:"enrollmentNo"`
	Department   string `json:"department"`
	Semester     int    `json:"semester"`
	Year         int    `json:"year"`
	Phone        string `json:"phone"`
	DateOfBirth  string `json:"dateOfBirth"`
	Address      string `json:"address"`
}

// StudentDetail joins a Student with its backing user's name and email.
type StudentDetail struct {
	Student
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StudentUpdate captures a partial student overwrite. Nil fields are
// left untouched.
type StudentUpdate struct {
	EnrollmentNo *string `json:"enrollmentNo,omitempty"`
	Department   *string `json:"department,omitempty"`
	Semester     *int    `json:"semester,omitempty" validate:"omitempty,min=1,max=8"`
	Year         *int    `json:"year,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
	Address      *string `json:"address,omitempty"`
}
