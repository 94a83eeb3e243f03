package repository

import (
	"errors"
	"sync"

	"github.com/campushq/college-portal-api/internal/models"
)

// Sentinel errors returned by store operations. Services translate
// these into the HTTP-aware error types.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflict")
)

// Store is the process-wide record store. Every record lives in memory
// and is lost on restart. A single RWMutex serialises writers, so
// multi-entity mutations (insert user+student, cascade delete) are
// atomic with respect to every other operation.
type Store struct {
	mu sync.RWMutex

	users     map[string]*models.User
	userOrder []string
	emails    map[string]string // email -> user id, exact match

	students     map[string]*models.Student
	studentOrder []string

	teachers     map[string]*models.Teacher
	teacherOrder []string

	subjects     map[string]*models.Subject
	subjectOrder []string

	fees     map[string]*models.Fee
	feeOrder []string

	attendance []models.Attendance
	marks      []models.Mark
	notices    []models.Notice
	timetable  []models.TimetableEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		emails:   make(map[string]string),
		students: make(map[string]*models.Student),
		teachers: make(map[string]*models.Teacher),
		subjects: make(map[string]*models.Subject),
		fees:     make(map[string]*models.Fee),
	}
}

// ---- users ----

// UserByID returns the user with the given id.
func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// UserByEmail returns the user with the exactly matching email.
// Lookup is case-sensitive: a case-differing email is a miss.
func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return *s.users[id], nil
}

// InsertUser adds a standalone user (admins). Fails on duplicate id or
// email.
func (s *Store) InsertUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertUserLocked(u)
}

func (s *Store) insertUserLocked(u models.User) error {
	if _, ok := s.users[u.ID]; ok {
		return ErrConflict
	}
	if _, ok := s.emails[u.Email]; ok {
		return ErrConflict
	}
	cp := u
	s.users[u.ID] = &cp
	s.userOrder = append(s.userOrder, u.ID)
	s.emails[u.Email] = u.ID
	return nil
}

func (s *Store) deleteUserLocked(id string) {
	u, ok := s.users[id]
	if !ok {
		return
	}
	delete(s.emails, u.Email)
	delete(s.users, id)
	s.userOrder = removeID(s.userOrder, id)
}

// ---- students ----

// ListStudents returns all students in insertion order.
func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		out = append(out, *s.students[id])
	}
	return out
}

// StudentByID returns the student with the given id.
func (s *Store) StudentByID(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	return *st, nil
}

// StudentByUserID returns the student backed by the given user.
func (s *Store) StudentByUserID(userID string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.studentOrder {
		if s.students[id].UserID == userID {
			return *s.students[id], nil
		}
	}
	return models.Student{}, ErrNotFound
}

// InsertStudent adds the student and its backing user in one critical
// section; on email conflict neither record is written.
func (s *Store) InsertStudent(st models.Student, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[st.ID]; ok {
		return ErrConflict
	}
	if err := s.insertUserLocked(u); err != nil {
		return err
	}
	cp := st
	s.students[st.ID] = &cp
	s.studentOrder = append(s.studentOrder, st.ID)
	return nil
}

// UpdateStudent applies a partial overwrite and returns the result.
func (s *Store) UpdateStudent(id string, upd models.StudentUpdate) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[id]
	if !ok {
		return models.Student{}, ErrNotFound
	}
	if upd.EnrollmentNo != nil {
		st.EnrollmentNo = *upd.EnrollmentNo
	}
	if upd.Department != nil {
		st.Department = *upd.Department
	}
	if upd.Semester != nil {
		st.Semester = *upd.Semester
	}
	if upd.Year != nil {
		st.Year = *upd.Year
	}
	if upd.Phone != nil {
		st.Phone = *upd.Phone
	}
	if upd.DateOfBirth != nil {
		st.DateOfBirth = *upd.DateOfBirth
	}
	if upd.Address != nil {
		st.Address = *upd.Address
	}
	return *st, nil
}

// DeleteStudentCascade removes the student together with its user, its
// attendance rows, its marks and its fee row. All five mutations happen
// under one lock, so no reader ever observes a partial delete.
func (s *Store) DeleteStudentCascade(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[id]
	if !ok {
		return ErrNotFound
	}

	s.deleteUserLocked(st.UserID)
	delete(s.students, id)
	s.studentOrder = removeID(s.studentOrder, id)

	kept := s.attendance[:0]
	for _, a := range s.attendance {
		if a.StudentID != id {
			kept = append(kept, a)
		}
	}
	s.attendance = kept

	keptMarks := s.marks[:0]
	for _, m := range s.marks {
		if m.StudentID != id {
			keptMarks = append(keptMarks, m)
		}
	}
	s.marks = keptMarks

	for feeID, fee := range s.fees {
		if fee.StudentID == id {
			delete(s.fees, feeID)
			s.feeOrder = removeID(s.feeOrder, feeID)
		}
	}
	return nil
}

// ---- teachers ----

// ListTeachers returns all teachers in insertion order.
func (s *Store) ListTeachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, 0, len(s.teacherOrder))
	for _, id := range s.teacherOrder {
		out = append(out, copyTeacher(s.teachers[id]))
	}
	return out
}

// TeacherByUserID returns the teacher backed by the given user.
func (s *Store) TeacherByUserID(userID string) (models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.teacherOrder {
		if s.teachers[id].UserID == userID {
			return copyTeacher(s.teachers[id]), nil
		}
	}
	return models.Teacher{}, ErrNotFound
}

// InsertTeacher adds the teacher and its backing user atomically.
func (s *Store) InsertTeacher(t models.Teacher, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teachers[t.ID]; ok {
		return ErrConflict
	}
	if err := s.insertUserLocked(u); err != nil {
		return err
	}
	cp := copyTeacher(&t)
	s.teachers[t.ID] = &cp
	s.teacherOrder = append(s.teacherOrder, t.ID)
	return nil
}

// ---- subjects ----

// ListSubjects returns the catalog in insertion order.
func (s *Store) ListSubjects() []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Subject, 0, len(s.subjectOrder))
	for _, id := range s.subjectOrder {
		out = append(out, *s.subjects[id])
	}
	return out
}

// InsertSubject appends a catalog entry.
func (s *Store) InsertSubject(sub models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subjects[sub.ID]; ok {
		return ErrConflict
	}
	cp := sub
	s.subjects[sub.ID] = &cp
	s.subjectOrder = append(s.subjectOrder, sub.ID)
	return nil
}

// ---- attendance ----

// AttendanceByStudent returns the student's rows in insertion order.
func (s *Store) AttendanceByStudent(studentID string) []models.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Attendance
	for _, a := range s.attendance {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}

// UpsertAttendance overwrites the status of an existing
// (student, subject, date) row or appends a new one. The returned bool
// reports whether a row was created.
func (s *Store) UpsertAttendance(a models.Attendance) (models.Attendance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attendance {
		existing := &s.attendance[i]
		if existing.StudentID == a.StudentID && existing.Subject == a.Subject && existing.Date == a.Date {
			existing.Status = a.Status
			return *existing, false
		}
	}
	s.attendance = append(s.attendance, a)
	return a, true
}

// InsertAttendance appends a row unconditionally. Used by the seeder.
func (s *Store) InsertAttendance(a models.Attendance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendance = append(s.attendance, a)
}

// ---- marks ----

// MarksByStudent returns the student's marks in insertion order.
func (s *Store) MarksByStudent(studentID string) []models.Mark {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Mark
	for _, m := range s.marks {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out
}

// InsertMark appends a mark row.
func (s *Store) InsertMark(m models.Mark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks = append(s.marks, m)
}

// UpdateMarkObtained overwrites marksObtained for the given row.
func (s *Store) UpdateMarkObtained(id string, marksObtained int) (models.Mark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.marks {
		if s.marks[i].ID == id {
			s.marks[i].MarksObtained = marksObtained
			return s.marks[i], nil
		}
	}
	return models.Mark{}, ErrNotFound
}

// ---- notices ----

// ListNotices returns all notices, newest first.
func (s *Store) ListNotices() []models.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// NoticesForRole filters notices visible to the role, preserving
// relative order.
func (s *Store) NoticesForRole(role models.UserRole) []models.Notice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notice
	for _, n := range s.notices {
		if n.TargetAudience.VisibleTo(role) {
			out = append(out, n)
		}
	}
	return out
}

// PrependNotice puts the notice at the head of the list.
func (s *Store) PrependNotice(n models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append([]models.Notice{n}, s.notices...)
}

// ---- fees ----

// ListFees returns all fee rows in insertion order.
func (s *Store) ListFees() []models.Fee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Fee, 0, len(s.feeOrder))
	for _, id := range s.feeOrder {
		out = append(out, *s.fees[id])
	}
	return out
}

// FeeByStudent returns the fee row for a student.
func (s *Store) FeeByStudent(studentID string) (models.Fee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.feeOrder {
		if s.fees[id].StudentID == studentID {
			return *s.fees[id], nil
		}
	}
	return models.Fee{}, ErrNotFound
}

// InsertFee adds a fee row.
func (s *Store) InsertFee(f models.Fee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fees[f.ID]; ok {
		return ErrConflict
	}
	cp := f
	s.fees[f.ID] = &cp
	s.feeOrder = append(s.feeOrder, f.ID)
	return nil
}

// UpdateFee overwrites paid and status for the given row only.
func (s *Store) UpdateFee(id string, paid int, status models.FeeStatus) (models.Fee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.fees[id]
	if !ok {
		return models.Fee{}, ErrNotFound
	}
	f.Paid = paid
	f.Status = status
	return *f, nil
}

// ---- timetable ----

// TimetableFor returns entries matching department and semester,
// preserving insertion order.
func (s *Store) TimetableFor(department string, semester int) []models.TimetableEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TimetableEntry
	for _, t := range s.timetable {
		if t.Department == department && t.Semester == semester {
			out = append(out, t)
		}
	}
	return out
}

// InsertTimetableEntry appends a reference row. Used by the seeder.
func (s *Store) InsertTimetableEntry(t models.TimetableEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timetable = append(s.timetable, t)
}

// ---- helpers ----

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func copyTeacher(t *models.Teacher) models.Teacher {
	cp := *t
	cp.Subjects = append([]string(nil), t.Subjects...)
	return cp
}
