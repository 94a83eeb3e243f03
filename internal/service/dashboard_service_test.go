package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

// memoryCacheRepo is an in-process CacheRepository for tests.
type memoryCacheRepo struct {
	entries map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: make(map[string][]byte)}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	m.entries = make(map[string][]byte)
	return nil
}

func TestDashboardStudentStats(t *testing.T) {
	store := seededStore(t)
	svc := NewDashboardService(store, nil, time.Minute, nil)

	resp, cached, err := svc.ForSession(context.Background(), models.Session{UserID: "u5", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, models.RoleStudent, resp.Role)

	stats := resp.Stats.(dto.StudentDashboardStats)
	summary := models.SummarizeAttendance(store.AttendanceByStudent("s1"))
	assert.Equal(t, summary.Percentage, stats.AttendancePercentage)
	// seeded marks span four subjects
	assert.Equal(t, 4, stats.TotalSubjects)
	assert.Equal(t, 4, stats.RecentNotices)
}

func TestDashboardTeacherStats(t *testing.T) {
	store := seededStore(t)
	svc := NewDashboardService(store, nil, time.Minute, nil)

	resp, _, err := svc.ForSession(context.Background(), models.Session{UserID: "u2", Role: models.RoleTeacher})
	require.NoError(t, err)

	stats := resp.Stats.(dto.TeacherDashboardStats)
	assert.Equal(t, 12, stats.TotalStudents)
	assert.Equal(t, 2, stats.SubjectsTaught)
	assert.Equal(t, "Computer Science", stats.Department)
}

func TestDashboardAdminStats(t *testing.T) {
	store := seededStore(t)
	svc := NewDashboardService(store, nil, time.Minute, nil)

	resp, _, err := svc.ForSession(context.Background(), models.Session{UserID: "u1", Role: models.RoleAdmin})
	require.NoError(t, err)

	stats := resp.Stats.(dto.AdminDashboardStats)
	assert.Equal(t, 12, stats.TotalStudents)
	assert.Equal(t, 3, stats.TotalTeachers)
	assert.Equal(t, 8, stats.TotalSubjects)
	assert.Equal(t, 5, stats.RecentNotices)
}

func TestDashboardCacheRoundTrip(t *testing.T) {
	store := seededStore(t)
	cacheSvc := NewCacheService(newMemoryCacheRepo(), nil, time.Minute, nil, true)
	svc := NewDashboardService(store, cacheSvc, time.Minute, nil)

	session := models.Session{UserID: "u1", Role: models.RoleAdmin}

	_, cached, err := svc.ForSession(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, cached)

	_, cached, err = svc.ForSession(context.Background(), session)
	require.NoError(t, err)
	assert.True(t, cached)

	// mutation invalidates via the dashboard pattern
	require.NoError(t, cacheSvc.Invalidate(context.Background(), "dashboard:*"))
	_, cached, err = svc.ForSession(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, cached)
}

func TestDashboardUnknownRole(t *testing.T) {
	store := seededStore(t)
	svc := NewDashboardService(store, nil, time.Minute, nil)

	_, _, err := svc.ForSession(context.Background(), models.Session{UserID: "u1", Role: "ghost"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
