package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-portal-api/internal/models"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, Seed(s, SeedParams{
		StudentCount:   12,
		AttendanceDays: 5,
		RandomSeed:     42,
		Now:            time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
	}))
	return s
}

func TestSeedPopulatesFixture(t *testing.T) {
	s := seededStore(t)

	admin, err := s.UserByEmail("admin@college.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	assert.Len(t, s.ListStudents(), 12)
	assert.Len(t, s.ListTeachers(), 3)
	assert.Len(t, s.ListSubjects(), 8)
	assert.Len(t, s.ListFees(), 10)
	assert.Len(t, s.ListNotices(), 5)

	// attendance covers the first ten students over three subjects
	first := s.ListStudents()[0]
	assert.Len(t, s.AttendanceByStudent(first.ID), 5*3)
	eleventh := s.ListStudents()[10]
	assert.Empty(t, s.AttendanceByStudent(eleventh.ID))

	// marks cover four subjects times four exam types
	assert.Len(t, s.MarksByStudent(first.ID), 16)
}

func TestSeedNoticesNewestFirst(t *testing.T) {
	s := seededStore(t)

	notices := s.ListNotices()
	require.Len(t, notices, 5)
	assert.Equal(t, "n1", notices[0].ID)
	assert.Equal(t, "n5", notices[4].ID)
	for i := 1; i < len(notices); i++ {
		assert.False(t, notices[i-1].Date.Before(notices[i].Date))
	}
}

func TestSeedDeterministicWithFixedSeed(t *testing.T) {
	a := seededStore(t)
	b := seededStore(t)

	first := a.ListStudents()[0]
	assert.Equal(t, a.AttendanceByStudent(first.ID), b.AttendanceByStudent(first.ID))
	assert.Equal(t, a.MarksByStudent(first.ID), b.MarksByStudent(first.ID))
}

func TestSeedFeeRotation(t *testing.T) {
	s := seededStore(t)

	fees := s.ListFees()
	require.Len(t, fees, 10)
	assert.Equal(t, models.FeePaid, fees[0].Status)
	assert.Equal(t, 5000, fees[0].Paid)
	assert.Equal(t, models.FeePending, fees[1].Status)
	assert.Equal(t, 2500, fees[1].Paid)
	assert.Equal(t, models.FeeOverdue, fees[2].Status)
	assert.Equal(t, 0, fees[2].Paid)
}
