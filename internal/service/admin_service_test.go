package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

func TestAdminOverviewStats(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, overview.Stats.TotalStudents)
	assert.Equal(t, 3, overview.Stats.TotalTeachers)
	assert.Equal(t, 8, overview.Stats.TotalSubjects)
	// seeded fee rotation: 4 paid, 6 pending or overdue out of 10
	assert.Equal(t, 6, overview.Stats.PendingFees)

	assert.NotEmpty(t, overview.Students[0].Name)
	assert.NotEmpty(t, overview.Teachers[0].Email)
}

func TestAddStudentThenLogin(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)
	auth := NewAuthService(store, nil, nil, testSessionConfig())

	created, err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
		Name: "New Student", Email: "new.student@college.edu", Password: "secret1",
		EnrollmentNo: "EN20249999", Department: "Civil", Semester: 2, Year: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Student", created.Name)

	res, err := auth.Login(context.Background(), models.LoginRequest{Email: "new.student@college.edu", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, res.User.Role)

	assert.Len(t, store.ListStudents(), 13)
}

func TestAddStudentDuplicateEmail(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)

	_, err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
		Name: "Impostor", Email: "student1@college.edu", Password: "secret1",
		EnrollmentNo: "EN20240001", Department: "Civil", Semester: 2, Year: 1,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
	assert.Len(t, store.ListStudents(), 12)
}

func TestUpdateStudentPartial(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)

	sem := 6
	updated, err := svc.UpdateStudent(context.Background(), dto.UpdateStudentRequest{
		ID:            "s1",
		StudentUpdate: models.StudentUpdate{Semester: &sem},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Semester)
	assert.Equal(t, "EN20240001", updated.EnrollmentNo)

	_, err = svc.UpdateStudent(context.Background(), dto.UpdateStudentRequest{
		ID:            "missing",
		StudentUpdate: models.StudentUpdate{Semester: &sem},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDeleteStudentCascades(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)

	require.NotEmpty(t, store.AttendanceByStudent("s1"))
	require.NotEmpty(t, store.MarksByStudent("s1"))

	require.NoError(t, svc.DeleteStudent(context.Background(), "s1"))

	assert.Empty(t, store.AttendanceByStudent("s1"))
	assert.Empty(t, store.MarksByStudent("s1"))
	_, err := store.FeeByStudent("s1")
	assert.Error(t, err)
	_, err = store.UserByEmail("student1@college.edu")
	assert.Error(t, err)

	err = svc.DeleteStudent(context.Background(), "s1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAddTeacherThenLogin(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)
	auth := NewAuthService(store, nil, nil, testSessionConfig())

	created, err := svc.AddTeacher(context.Background(), dto.AddTeacherRequest{
		Name: "Dr. New Teacher", Email: "new.teacher@college.edu", Password: "secret1",
		EmployeeID: "EMP099", Department: "Civil", Designation: "Lecturer",
		Subjects: []string{"Structural Analysis"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	res, err := auth.Login(context.Background(), models.LoginRequest{Email: "new.teacher@college.edu", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, res.User.Role)
}

func TestAddSubjectAppends(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)

	subject, err := svc.AddSubject(context.Background(), dto.AddSubjectRequest{
		Code: "CS301", Name: "Operating Systems", Department: "Computer Science", Semester: 5, Credits: 4,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, subject.ID)

	subjects := store.ListSubjects()
	assert.Equal(t, subject.ID, subjects[len(subjects)-1].ID)
}

func TestUpdateFee(t *testing.T) {
	store := seededStore(t)
	svc := NewAdminService(store, nil, nil, nil)

	fee, err := svc.UpdateFee(context.Background(), dto.UpdateFeeRequest{ID: "f3", Paid: 5000, Status: models.FeePaid})
	require.NoError(t, err)
	assert.Equal(t, 5000, fee.Paid)
	assert.Equal(t, models.FeePaid, fee.Status)
	assert.Equal(t, 5000, fee.Amount)

	_, err = svc.UpdateFee(context.Background(), dto.UpdateFeeRequest{ID: "missing", Paid: 0, Status: models.FeePending})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
