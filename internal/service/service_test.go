package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campushq/college-portal-api/internal/repository"
)

// seededStore builds the fixture dataset used across service tests:
// admin u1, teachers u2-u4 (t1-t3), and twelve students u5+ (s1+).
func seededStore(t *testing.T) *repository.Store {
	t.Helper()
	store := repository.New()
	require.NoError(t, repository.Seed(store, repository.SeedParams{
		StudentCount:   12,
		AttendanceDays: 5,
		RandomSeed:     7,
		Now:            time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
	}))
	return store
}
