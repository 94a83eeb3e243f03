package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

// DashboardService composes the role-keyed stats blocks.
type DashboardService struct {
	store  *repository.Store
	cache  *CacheService
	logger *zap.Logger
	ttl    time.Duration
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(store *repository.Store, cache *CacheService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{store: store, cache: cache, logger: logger, ttl: ttl}
}

// ForSession returns the stats block for the session's role. The
// second return reports whether the payload came from cache.
func (s *DashboardService) ForSession(ctx context.Context, session models.Session) (*dto.DashboardResponse, bool, error) {
	key := fmt.Sprintf("dashboard:%s:%s", session.Role, session.UserID)
	cached := &dto.DashboardResponse{}
	if hit, _ := s.cache.Get(ctx, key, cached); hit {
		return cached, true, nil
	}

	var (
		resp *dto.DashboardResponse
		err  error
	)
	switch session.Role {
	case models.RoleStudent:
		resp, err = s.studentStats(session.UserID)
	case models.RoleTeacher:
		resp, err = s.teacherStats(session.UserID)
	case models.RoleAdmin:
		resp = s.adminStats()
	default:
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "invalid role")
	}
	if err != nil {
		return nil, false, err
	}

	if cacheErr := s.cache.Set(ctx, key, resp, s.ttl); cacheErr != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(cacheErr))
	}
	return resp, false, nil
}

func (s *DashboardService) studentStats(userID string) (*dto.DashboardResponse, error) {
	student, err := s.store.StudentByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	summary := models.SummarizeAttendance(s.store.AttendanceByStudent(student.ID))

	seen := map[string]struct{}{}
	for _, m := range s.store.MarksByStudent(student.ID) {
		seen[m.Subject] = struct{}{}
	}

	return &dto.DashboardResponse{
		Role: models.RoleStudent,
		Stats: dto.StudentDashboardStats{
			AttendancePercentage: summary.Percentage,
			TotalSubjects:        len(seen),
			RecentNotices:        len(s.store.NoticesForRole(models.RoleStudent)),
		},
	}, nil
}

func (s *DashboardService) teacherStats(userID string) (*dto.DashboardResponse, error) {
	teacher, err := s.store.TeacherByUserID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	return &dto.DashboardResponse{
		Role: models.RoleTeacher,
		Stats: dto.TeacherDashboardStats{
			TotalStudents:  len(s.store.ListStudents()),
			SubjectsTaught: len(teacher.Subjects),
			Department:     teacher.Department,
		},
	}, nil
}

func (s *DashboardService) adminStats() *dto.DashboardResponse {
	return &dto.DashboardResponse{
		Role: models.RoleAdmin,
		Stats: dto.AdminDashboardStats{
			TotalStudents: len(s.store.ListStudents()),
			TotalTeachers: len(s.store.ListTeachers()),
			TotalSubjects: len(s.store.ListSubjects()),
			RecentNotices: len(s.store.ListNotices()),
		},
	}
}
