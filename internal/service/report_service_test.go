package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

func TestStudentRosterCSV(t *testing.T) {
	store := seededStore(t)
	svc := NewReportService(store, nil)

	data, err := svc.StudentRoster(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// header plus twelve students
	require.Len(t, records, 13)
	assert.Equal(t, "ID", records[0][0])
	assert.Equal(t, "s1", records[1][0])
	assert.Equal(t, "EN20240001", records[1][3])
}

func TestStudentAttendancePDF(t *testing.T) {
	store := seededStore(t)
	svc := NewReportService(store, nil)

	data, filename, err := svc.StudentAttendance(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "attendance-EN20240001.pdf", filename)
}

func TestStudentAttendancePDFUnknownStudent(t *testing.T) {
	store := seededStore(t)
	svc := NewReportService(store, nil)

	_, _, err := svc.StudentAttendance(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
