package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-portal-api/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.InsertStudent(
		models.Student{ID: "s1", UserID: "u1", EnrollmentNo: "EN0001", Department: "Computer Science", Semester: 3},
		models.User{ID: "u1", Email: "a@college.edu", Role: models.RoleStudent, Name: "Alice"},
	))
	require.NoError(t, s.InsertStudent(
		models.Student{ID: "s2", UserID: "u2", EnrollmentNo: "EN0002", Department: "Electronics", Semester: 4},
		models.User{ID: "u2", Email: "b@college.edu", Role: models.RoleStudent, Name: "Bob"},
	))
	return s
}

func TestListStudentsInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	students := s.ListStudents()
	require.Len(t, students, 2)
	assert.Equal(t, "s1", students[0].ID)
	assert.Equal(t, "s2", students[1].ID)
}

func TestInsertStudentDuplicateEmailWritesNothing(t *testing.T) {
	s := newTestStore(t)

	err := s.InsertStudent(
		models.Student{ID: "s3", UserID: "u3"},
		models.User{ID: "u3", Email: "a@college.edu", Role: models.RoleStudent},
	)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.StudentByID("s3")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UserByID("u3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserByEmailCaseSensitive(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UserByEmail("a@college.edu")
	assert.NoError(t, err)

	_, err = s.UserByEmail("A@College.edu")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStudentPartialOverwrite(t *testing.T) {
	s := newTestStore(t)

	dept := "Mechanical"
	updated, err := s.UpdateStudent("s1", models.StudentUpdate{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Mechanical", updated.Department)
	assert.Equal(t, "EN0001", updated.EnrollmentNo)
	assert.Equal(t, 3, updated.Semester)

	_, err = s.UpdateStudent("missing", models.StudentUpdate{Department: &dept})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStudentCascade(t *testing.T) {
	s := newTestStore(t)
	s.InsertAttendance(models.Attendance{ID: "a1", StudentID: "s1", Date: "2024-01-10", Subject: "Data Structures", Status: models.AttendancePresent})
	s.InsertAttendance(models.Attendance{ID: "a2", StudentID: "s2", Date: "2024-01-10", Subject: "Data Structures", Status: models.AttendanceAbsent})
	s.InsertMark(models.Mark{ID: "m1", StudentID: "s1", Subject: "Data Structures", ExamType: models.ExamQuiz, MarksObtained: 8, TotalMarks: 10})
	require.NoError(t, s.InsertFee(models.Fee{ID: "f1", StudentID: "s1", Amount: 5000, Status: models.FeePending}))

	require.NoError(t, s.DeleteStudentCascade("s1"))

	_, err := s.StudentByID("s1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UserByID("u1")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UserByEmail("a@college.edu")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, s.AttendanceByStudent("s1"))
	assert.Empty(t, s.MarksByStudent("s1"))
	_, err = s.FeeByStudent("s1")
	assert.ErrorIs(t, err, ErrNotFound)

	// unrelated records survive
	assert.Len(t, s.AttendanceByStudent("s2"), 1)

	assert.ErrorIs(t, s.DeleteStudentCascade("s1"), ErrNotFound)
}

func TestUpsertAttendanceOverwritesSameTriple(t *testing.T) {
	s := newTestStore(t)

	first, created := s.UpsertAttendance(models.Attendance{
		ID: "a1", StudentID: "s1", Date: "2024-01-10", Subject: "Algorithms", Status: models.AttendanceAbsent,
	})
	assert.True(t, created)
	assert.Equal(t, models.AttendanceAbsent, first.Status)

	second, created := s.UpsertAttendance(models.Attendance{
		ID: "a2", StudentID: "s1", Date: "2024-01-10", Subject: "Algorithms", Status: models.AttendancePresent,
	})
	assert.False(t, created)
	assert.Equal(t, "a1", second.ID)
	assert.Equal(t, models.AttendancePresent, second.Status)

	records := s.AttendanceByStudent("s1")
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendancePresent, records[0].Status)

	// a different date is a new row
	_, created = s.UpsertAttendance(models.Attendance{
		ID: "a3", StudentID: "s1", Date: "2024-01-11", Subject: "Algorithms", Status: models.AttendanceLate,
	})
	assert.True(t, created)
	assert.Len(t, s.AttendanceByStudent("s1"), 2)
}

func TestUpdateMarkObtained(t *testing.T) {
	s := newTestStore(t)
	s.InsertMark(models.Mark{ID: "m1", StudentID: "s1", Subject: "Algorithms", ExamType: models.ExamFinal, MarksObtained: 30, TotalMarks: 50})

	updated, err := s.UpdateMarkObtained("m1", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, updated.MarksObtained)
	assert.Equal(t, 50, updated.TotalMarks)

	_, err = s.UpdateMarkObtained("missing", 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPrependNoticeNewestFirst(t *testing.T) {
	s := New()
	s.PrependNotice(models.Notice{ID: "n1", TargetAudience: models.AudienceAll})
	s.PrependNotice(models.Notice{ID: "n2", TargetAudience: models.AudienceStudents})
	s.PrependNotice(models.Notice{ID: "n3", TargetAudience: models.AudienceTeachers})

	notices := s.ListNotices()
	require.Len(t, notices, 3)
	assert.Equal(t, "n3", notices[0].ID)
	assert.Equal(t, "n1", notices[2].ID)
}

func TestNoticesForRoleFiltersAudience(t *testing.T) {
	s := New()
	s.PrependNotice(models.Notice{ID: "n1", TargetAudience: models.AudienceAll})
	s.PrependNotice(models.Notice{ID: "n2", TargetAudience: models.AudienceStudents})
	s.PrependNotice(models.Notice{ID: "n3", TargetAudience: models.AudienceTeachers})

	forStudents := s.NoticesForRole(models.RoleStudent)
	require.Len(t, forStudents, 2)
	assert.Equal(t, "n2", forStudents[0].ID)
	assert.Equal(t, "n1", forStudents[1].ID)

	forTeachers := s.NoticesForRole(models.RoleTeacher)
	require.Len(t, forTeachers, 2)
	assert.Equal(t, "n3", forTeachers[0].ID)

	forAdmins := s.NoticesForRole(models.RoleAdmin)
	require.Len(t, forAdmins, 1)
	assert.Equal(t, "n1", forAdmins[0].ID)
}

func TestUpdateFeeOnlyTouchesPaidAndStatus(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.InsertFee(models.Fee{ID: "f1", StudentID: "s1", Semester: 3, Amount: 5000, Paid: 0, DueDate: "2024-02-15", Status: models.FeeOverdue}))

	updated, err := s.UpdateFee("f1", 5000, models.FeePaid)
	require.NoError(t, err)
	assert.Equal(t, 5000, updated.Paid)
	assert.Equal(t, models.FeePaid, updated.Status)
	assert.Equal(t, 5000, updated.Amount)
	assert.Equal(t, "2024-02-15", updated.DueDate)

	_, err = s.UpdateFee("missing", 0, models.FeePending)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimetableForFiltersDeptAndSemester(t *testing.T) {
	s := New()
	s.InsertTimetableEntry(models.TimetableEntry{ID: "tt1", Department: "Computer Science", Semester: 3, Subject: "Data Structures"})
	s.InsertTimetableEntry(models.TimetableEntry{ID: "tt2", Department: "Computer Science", Semester: 5, Subject: "Database Systems"})
	s.InsertTimetableEntry(models.TimetableEntry{ID: "tt3", Department: "Electronics", Semester: 3, Subject: "Digital Electronics"})

	rows := s.TimetableFor("Computer Science", 3)
	require.Len(t, rows, 1)
	assert.Equal(t, "tt1", rows[0].ID)

	assert.Empty(t, s.TimetableFor("Civil", 1))
}
