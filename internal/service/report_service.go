package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
	"github.com/campushq/college-portal-api/pkg/export"
)

// ReportService renders catalog data into downloadable documents.
type ReportService struct {
	store  *repository.Store
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(store *repository.Store, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		store:  store,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// StudentRoster renders the full student roster as CSV.
func (s *ReportService) StudentRoster(ctx context.Context) ([]byte, error) {
	headers := []string{"ID", "Name", "Email", "Enrollment No", "Department", "Semester", "Year", "Phone"}
	var rows []map[string]string
	for _, st := range s.store.ListStudents() {
		row := map[string]string{
			"ID":            st.ID,
			"Enrollment No": st.EnrollmentNo,
			"Department":    st.Department,
			"Semester":      strconv.Itoa(st.Semester),
			"Year":          strconv.Itoa(st.Year),
			"Phone":         st.Phone,
		}
		if u, err := s.store.UserByID(st.UserID); err == nil {
			row["Name"] = u.Name
			row["Email"] = u.Email
		}
		rows = append(rows, row)
	}

	data, err := s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster csv")
	}
	return data, nil
}

// StudentAttendance renders one student's attendance history as a PDF,
// titled with the attendance percentage.
func (s *ReportService) StudentAttendance(ctx context.Context, studentID string) ([]byte, string, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	name := student.EnrollmentNo
	if u, err := s.store.UserByID(student.UserID); err == nil {
		name = u.Name
	}

	records := s.store.AttendanceByStudent(studentID)
	summary := models.SummarizeAttendance(records)

	headers := []string{"Date", "Subject", "Status"}
	rows := make([]map[string]string, 0, len(records))
	for _, a := range records {
		rows = append(rows, map[string]string{
			"Date":    a.Date,
			"Subject": a.Subject,
			"Status":  string(a.Status),
		})
	}

	title := fmt.Sprintf("Attendance Report - %s (%d%%)", name, summary.Percentage)
	data, err := s.pdf.Render(export.Dataset{Headers: headers, Rows: rows}, title)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render attendance pdf")
	}

	filename := fmt.Sprintf("attendance-%s.pdf", student.EnrollmentNo)
	return data, filename, nil
}
