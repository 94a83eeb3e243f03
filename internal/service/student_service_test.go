package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-portal-api/internal/models"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

func TestStudentPortalAssemblesAllSections(t *testing.T) {
	store := seededStore(t)
	svc := NewStudentService(store, nil)

	portal, err := svc.Portal(context.Background(), "u5")
	require.NoError(t, err)

	assert.Equal(t, "s1", portal.Student.ID)
	assert.NotEmpty(t, portal.Student.Name)
	assert.NotEmpty(t, portal.Student.Email)

	// 5 days x 3 subjects of seeded attendance, capped at 30 records
	assert.Equal(t, 15, portal.Attendance.Total)
	assert.Len(t, portal.Attendance.Records, 15)
	assert.Len(t, portal.Marks, 16)
	require.NotNil(t, portal.Fee)
	assert.Equal(t, models.FeePaid, portal.Fee.Status)

	for _, n := range portal.Notices {
		assert.True(t, n.TargetAudience.VisibleTo(models.RoleStudent))
	}
}

func TestStudentPortalPercentageMatchesRecords(t *testing.T) {
	store := seededStore(t)
	svc := NewStudentService(store, nil)

	portal, err := svc.Portal(context.Background(), "u5")
	require.NoError(t, err)

	records := store.AttendanceByStudent("s1")
	summary := models.SummarizeAttendance(records)
	assert.Equal(t, summary.Percentage, portal.Attendance.Percentage)
	assert.Equal(t, summary.Present, portal.Attendance.Present)
}

func TestStudentPortalZeroAttendance(t *testing.T) {
	store := seededStore(t)
	svc := NewStudentService(store, nil)

	// the eleventh student has no seeded attendance
	portal, err := svc.Portal(context.Background(), "u15")
	require.NoError(t, err)
	assert.Equal(t, 0, portal.Attendance.Total)
	assert.Equal(t, 0, portal.Attendance.Percentage)
	assert.Nil(t, portal.Fee)
}

func TestStudentPortalUnknownUser(t *testing.T) {
	store := seededStore(t)
	svc := NewStudentService(store, nil)

	_, err := svc.Portal(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
