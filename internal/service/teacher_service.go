package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

const rosterLimit = 20

// TeacherService implements the teacher command set: attendance
// marking, grade entry, and notice posting.
type TeacherService struct {
	store     *repository.Store
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
	now       func() time.Time
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(store *repository.Store, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: store, validator: validate, cache: cache, logger: logger, now: time.Now}
}

func (s *TeacherService) teacherForUser(userID string) (models.Teacher, error) {
	teacher, err := s.store.TeacherByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Teacher{}, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return models.Teacher{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	return teacher, nil
}

// Overview returns the teacher row, a capped student roster, and the
// subjects taught.
func (s *TeacherService) Overview(ctx context.Context, userID string) (*dto.TeacherOverviewResponse, error) {
	teacher, err := s.teacherForUser(userID)
	if err != nil {
		return nil, err
	}

	students := s.store.ListStudents()
	if len(students) > rosterLimit {
		students = students[:rosterLimit]
	}
	roster := make([]dto.TeacherRosterEntry, 0, len(students))
	for _, st := range students {
		roster = append(roster, dto.TeacherRosterEntry{
			ID:           st.ID,
			EnrollmentNo: st.EnrollmentNo,
			Department:   st.Department,
			Semester:     st.Semester,
			UserID:       st.UserID,
		})
	}

	return &dto.TeacherOverviewResponse{
		Teacher:  teacher,
		Students: roster,
		Subjects: teacher.Subjects,
	}, nil
}

// MarkAttendance upserts the (student, subject, date) row: re-marking
// the same triple overwrites the status instead of growing the list.
func (s *TeacherService) MarkAttendance(ctx context.Context, userID string, req dto.MarkAttendanceRequest) (*models.Attendance, error) {
	if _, err := s.teacherForUser(userID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	if _, err := s.store.StudentByID(req.StudentID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	row, created := s.store.UpsertAttendance(models.Attendance{
		ID:        uuid.NewString(),
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    req.Status,
		Subject:   req.Subject,
	})
	s.invalidateDashboards(ctx)
	s.logger.Info("attendance marked",
		zap.String("student_id", req.StudentID),
		zap.String("subject", req.Subject),
		zap.Bool("created", created))
	return &row, nil
}

// AddMark appends a mark row dated today.
func (s *TeacherService) AddMark(ctx context.Context, userID string, req dto.AddMarkRequest) (*models.Mark, error) {
	if _, err := s.teacherForUser(userID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mark payload")
	}
	if _, err := s.store.StudentByID(req.StudentID); err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	mark := models.Mark{
		ID:            uuid.NewString(),
		StudentID:     req.StudentID,
		Subject:       req.Subject,
		ExamType:      req.ExamType,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
		Date:          s.now().Format("2006-01-02"),
	}
	s.store.InsertMark(mark)
	return &mark, nil
}

// UpdateMark overwrites marksObtained for an existing row.
func (s *TeacherService) UpdateMark(ctx context.Context, userID string, req dto.UpdateMarkRequest) (*models.Mark, error) {
	if _, err := s.teacherForUser(userID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mark payload")
	}

	mark, err := s.store.UpdateMarkObtained(req.ID, req.MarksObtained)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "mark not found")
	}
	return &mark, nil
}

// PostNotice prepends a notice stamped with the session's author name
// and role.
func (s *TeacherService) PostNotice(ctx context.Context, session models.Session, req dto.PostNoticeRequest) (*models.Notice, error) {
	if _, err := s.teacherForUser(session.UserID); err != nil {
		return nil, err
	}
	return s.PostNoticeAs(ctx, session, req)
}

// PostNoticeAs posts a notice for a session without a staff record,
// such as an admin.
func (s *TeacherService) PostNoticeAs(ctx context.Context, session models.Session, req dto.PostNoticeRequest) (*models.Notice, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notice payload")
	}

	notice := models.Notice{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Content:        req.Content,
		Author:         session.Name,
		AuthorRole:     session.Role,
		TargetAudience: req.TargetAudience,
		Date:           s.now().UTC(),
		Priority:       req.Priority,
	}
	s.store.PrependNotice(notice)
	s.invalidateDashboards(ctx)
	return &notice, nil
}

func (s *TeacherService) invalidateDashboards(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "dashboard:*"); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
