package repository

import (
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-portal-api/internal/models"
)

// SeedParams tunes the generated fixture dataset.
type SeedParams struct {
	StudentCount   int
	AttendanceDays int
	RandomSeed     int64
	Now            time.Time
}

var departments = []string{"Computer Science", "Electronics", "Mechanical", "Civil"}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Barbara", "David", "Elizabeth", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Nancy", "Daniel", "Lisa",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Donald", "Ashley",
	"Steven", "Kimberly", "Paul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kenneth", "Carol", "Kevin", "Amanda", "Brian", "Dorothy", "George", "Melissa",
	"Edward", "Deborah", "Ronald", "Stephanie", "Timothy", "Rebecca", "Jason", "Sharon",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
}

// Seed populates the store with the fixture dataset: one admin, three
// teachers, the configured number of students, the subject catalog,
// fees for the first ten students, the timetable, five notices, and
// randomized attendance and marks for the first ten students.
func Seed(s *Store, p SeedParams) error {
	if p.StudentCount <= 0 {
		p.StudentCount = 55
	}
	if p.AttendanceDays <= 0 {
		p.AttendanceDays = 30
	}
	if p.Now.IsZero() {
		p.Now = time.Now()
	}
	seed := p.RandomSeed
	if seed == 0 {
		seed = p.Now.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	adminHash, err := hashPassword("admin123")
	if err != nil {
		return err
	}
	teacherHash, err := hashPassword("teacher123")
	if err != nil {
		return err
	}
	studentHash, err := hashPassword("student123")
	if err != nil {
		return err
	}

	if err := s.InsertUser(models.User{
		ID: "u1", Email: "admin@college.edu", PasswordHash: adminHash,
		Role: models.RoleAdmin, Name: "Dr. Sarah Johnson",
	}); err != nil {
		return err
	}

	teacherSeeds := []struct {
		user    models.User
		teacher models.Teacher
	}{
		{
			models.User{ID: "u2", Email: "john.smith@college.edu", Role: models.RoleTeacher, Name: "Prof. John Smith"},
			models.Teacher{ID: "t1", UserID: "u2", EmployeeID: "EMP001", Department: "Computer Science",
				Designation: "Professor", Phone: "+1-555-1001", Subjects: []string{"Data Structures", "Algorithms"}},
		},
		{
			models.User{ID: "u3", Email: "emily.davis@college.edu", Role: models.RoleTeacher, Name: "Dr. Emily Davis"},
			models.Teacher{ID: "t2", UserID: "u3", EmployeeID: "EMP002", Department: "Computer Science",
				Designation: "Associate Professor", Phone: "+1-555-1002", Subjects: []string{"Database Systems", "Web Development"}},
		},
		{
			models.User{ID: "u4", Email: "michael.brown@college.edu", Role: models.RoleTeacher, Name: "Prof. Michael Brown"},
			models.Teacher{ID: "t3", UserID: "u4", EmployeeID: "EMP003", Department: "Electronics",
				Designation: "Professor", Phone: "+1-555-1003", Subjects: []string{"Digital Electronics", "Microprocessors"}},
		},
	}
	for _, ts := range teacherSeeds {
		ts.user.PasswordHash = teacherHash
		if err := s.InsertTeacher(ts.teacher, ts.user); err != nil {
			return err
		}
	}

	for i := 0; i < p.StudentCount; i++ {
		user := models.User{
			ID:           fmt.Sprintf("u%d", i+5),
			Email:        fmt.Sprintf("student%d@college.edu", i+1),
			PasswordHash: studentHash,
			Role:         models.RoleStudent,
			Name:         studentName(i),
		}
		student := models.Student{
			ID:           fmt.Sprintf("s%d", i+1),
			UserID:       user.ID,
			EnrollmentNo: fmt.Sprintf("EN2024%04d", i+1),
			Department:   departments[i%4],
			Semester:     i%8 + 1,
			Year:         (i%8)/2 + 1,
			Phone:        fmt.Sprintf("+1-555-%04d", rng.Intn(9000)+1000),
			DateOfBirth:  fmt.Sprintf("200%d-0%d-%02d", i%6, i%9+1, i%28+1),
			Address:      fmt.Sprintf("%d College Street, City, State", i+100),
		}
		if err := s.InsertStudent(student, user); err != nil {
			return err
		}
	}

	subjects := []models.Subject{
		{ID: "sub1", Code: "CS101", Name: "Data Structures", Department: "Computer Science", Semester: 3, Credits: 4},
		{ID: "sub2", Code: "CS102", Name: "Algorithms", Department: "Computer Science", Semester: 4, Credits: 4},
		{ID: "sub3", Code: "CS201", Name: "Database Systems", Department: "Computer Science", Semester: 5, Credits: 3},
		{ID: "sub4", Code: "CS202", Name: "Web Development", Department: "Computer Science", Semester: 5, Credits: 3},
		{ID: "sub5", Code: "EC101", Name: "Digital Electronics", Department: "Electronics", Semester: 3, Credits: 4},
		{ID: "sub6", Code: "EC102", Name: "Microprocessors", Department: "Electronics", Semester: 4, Credits: 4},
		{ID: "sub7", Code: "ME101", Name: "Thermodynamics", Department: "Mechanical", Semester: 3, Credits: 4},
		{ID: "sub8", Code: "CE101", Name: "Structural Analysis", Department: "Civil", Semester: 3, Credits: 4},
	}
	for _, sub := range subjects {
		if err := s.InsertSubject(sub); err != nil {
			return err
		}
	}

	students := s.ListStudents()
	seedAttendance(s, rng, students, subjects, p)
	seedMarks(s, rng, students, subjects)
	seedFees(s, students)
	seedNotices(s, p.Now)
	seedTimetable(s)

	return nil
}

func seedAttendance(s *Store, rng *rand.Rand, students []models.Student, subjects []models.Subject, p SeedParams) {
	n := 0
	tracked := students
	if len(tracked) > 10 {
		tracked = tracked[:10]
	}
	for day := 0; day < p.AttendanceDays; day++ {
		date := p.Now.AddDate(0, 0, -day).Format("2006-01-02")
		for _, st := range tracked {
			for _, sub := range subjects[:3] {
				n++
				r := rng.Float64()
				status := models.AttendanceAbsent
				switch {
				case r > 0.15:
					status = models.AttendancePresent
				case r > 0.05:
					status = models.AttendanceLate
				}
				s.InsertAttendance(models.Attendance{
					ID:        fmt.Sprintf("att%d", n),
					StudentID: st.ID,
					Date:      date,
					Status:    status,
					Subject:   sub.Name,
				})
			}
		}
	}
}

func seedMarks(s *Store, rng *rand.Rand, students []models.Student, subjects []models.Subject) {
	examTypes := []models.ExamType{models.ExamMidterm, models.ExamFinal, models.ExamAssignment, models.ExamQuiz}
	n := 0
	tracked := students
	if len(tracked) > 10 {
		tracked = tracked[:10]
	}
	for _, st := range tracked {
		for _, sub := range subjects[:4] {
			for idx, examType := range examTypes {
				total := 50
				switch examType {
				case models.ExamQuiz:
					total = 10
				case models.ExamAssignment:
					total = 20
				}
				n++
				s.InsertMark(models.Mark{
					ID:            fmt.Sprintf("m%d", n),
					StudentID:     st.ID,
					Subject:       sub.Name,
					ExamType:      examType,
					MarksObtained: int(float64(total) * (0.6 + rng.Float64()*0.4)),
					TotalMarks:    total,
					Date:          time.Date(2024, 1, 15+idx*30, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
				})
			}
		}
	}
}

func seedFees(s *Store, students []models.Student) {
	tracked := students
	if len(tracked) > 10 {
		tracked = tracked[:10]
	}
	for i, st := range tracked {
		paid, status := 0, models.FeeOverdue
		switch i % 3 {
		case 0:
			paid, status = 5000, models.FeePaid
		case 1:
			paid, status = 2500, models.FeePending
		}
		_ = s.InsertFee(models.Fee{
			ID:        fmt.Sprintf("f%d", i+1),
			StudentID: st.ID,
			Semester:  st.Semester,
			Amount:    5000,
			Paid:      paid,
			DueDate:   "2024-02-15",
			Status:    status,
		})
	}
}

func seedNotices(s *Store, now time.Time) {
	noticeSeeds := []models.Notice{
		{ID: "n5", Title: "Workshop on AI and Machine Learning",
			Content:    "A two-day workshop on AI and ML will be conducted on January 25-26. Registration is open for all students.",
			Author:     "Dr. Emily Davis", AuthorRole: models.RoleTeacher,
			TargetAudience: models.AudienceStudents, Date: now.AddDate(0, 0, -12), Priority: models.PriorityLow},
		{ID: "n4", Title: "Sports Day Announcement",
			Content:    "Annual sports day will be held on February 20. Students interested in participating should register by February 10.",
			Author:     "Prof. John Smith", AuthorRole: models.RoleTeacher,
			TargetAudience: models.AudienceStudents, Date: now.AddDate(0, 0, -10), Priority: models.PriorityMedium},
		{ID: "n3", Title: "Faculty Meeting - January 15",
			Content:    "All faculty members are requested to attend the monthly meeting on January 15 at 2 PM in the conference hall.",
			Author:     "Dr. Sarah Johnson", AuthorRole: models.RoleAdmin,
			TargetAudience: models.AudienceTeachers, Date: now.AddDate(0, 0, -7), Priority: models.PriorityHigh},
		{ID: "n2", Title: "Library Timing Extended",
			Content:    "The library will remain open until 10 PM during examination period.",
			Author:     "Dr. Sarah Johnson", AuthorRole: models.RoleAdmin,
			TargetAudience: models.AudienceStudents, Date: now.AddDate(0, 0, -5), Priority: models.PriorityMedium},
		{ID: "n1", Title: "Semester Examination Schedule Released",
			Content:    "The final examination schedule for the current semester has been published. Please check the notice board for details.",
			Author:     "Dr. Sarah Johnson", AuthorRole: models.RoleAdmin,
			TargetAudience: models.AudienceAll, Date: now.AddDate(0, 0, -2), Priority: models.PriorityHigh},
	}
	// Oldest first so the newest notice ends up at the head.
	for _, n := range noticeSeeds {
		s.PrependNotice(n)
	}
}

func seedTimetable(s *Store) {
	rows := []models.TimetableEntry{
		{ID: "tt1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", Subject: "Data Structures",
			Teacher: "Prof. John Smith", Room: "CS-101", Department: "Computer Science", Semester: 3},
		{ID: "tt2", Day: "Monday", StartTime: "10:00", EndTime: "11:00", Subject: "Database Systems",
			Teacher: "Dr. Emily Davis", Room: "CS-102", Department: "Computer Science", Semester: 5},
		{ID: "tt3", Day: "Tuesday", StartTime: "09:00", EndTime: "10:00", Subject: "Algorithms",
			Teacher: "Prof. John Smith", Room: "CS-101", Department: "Computer Science", Semester: 4},
		{ID: "tt4", Day: "Tuesday", StartTime: "11:00", EndTime: "12:00", Subject: "Web Development",
			Teacher: "Dr. Emily Davis", Room: "CS-103", Department: "Computer Science", Semester: 5},
		{ID: "tt5", Day: "Wednesday", StartTime: "09:00", EndTime: "10:00", Subject: "Data Structures",
			Teacher: "Prof. John Smith", Room: "CS-101", Department: "Computer Science", Semester: 3},
		{ID: "tt6", Day: "Thursday", StartTime: "10:00", EndTime: "11:00", Subject: "Database Systems",
			Teacher: "Dr. Emily Davis", Room: "CS-102", Department: "Computer Science", Semester: 5},
		{ID: "tt7", Day: "Friday", StartTime: "09:00", EndTime: "10:00", Subject: "Algorithms",
			Teacher: "Prof. John Smith", Room: "CS-101", Department: "Computer Science", Semester: 4},
	}
	for _, row := range rows {
		s.InsertTimetableEntry(row)
	}
}

func studentName(index int) string {
	return firstNames[index%len(firstNames)] + " " + lastNames[(index/len(firstNames))%len(lastNames)]
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
