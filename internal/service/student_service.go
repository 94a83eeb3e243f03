package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

const (
	portalAttendanceLimit = 30
	portalNoticeLimit     = 10
)

// StudentService assembles the student portal payload.
type StudentService struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(store *repository.Store, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, logger: logger}
}

// Portal returns the full student view: profile, attendance with
// summary, marks, fee, timetable scoped to the student's department
// and semester, and the latest notices visible to students.
func (s *StudentService) Portal(ctx context.Context, userID string) (*dto.StudentPortalResponse, error) {
	student, err := s.store.StudentByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	user, err := s.store.UserByID(student.UserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "student user missing")
	}

	records := s.store.AttendanceByStudent(student.ID)
	summary := models.SummarizeAttendance(records)
	if len(records) > portalAttendanceLimit {
		records = records[:portalAttendanceLimit]
	}

	var fee *models.Fee
	if f, err := s.store.FeeByStudent(student.ID); err == nil {
		fee = &f
	}

	notices := s.store.NoticesForRole(models.RoleStudent)
	if len(notices) > portalNoticeLimit {
		notices = notices[:portalNoticeLimit]
	}

	return &dto.StudentPortalResponse{
		Student: models.StudentDetail{Student: student, Name: user.Name, Email: user.Email},
		Attendance: dto.StudentAttendance{
			Records:    records,
			Percentage: summary.Percentage,
			Total:      summary.Total,
			Present:    summary.Present,
		},
		Marks:     s.store.MarksByStudent(student.ID),
		Fee:       fee,
		Timetable: s.store.TimetableFor(student.Department, student.Semester),
		Notices:   notices,
	}, nil
}
