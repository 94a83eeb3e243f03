package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/college-portal-api/internal/dto"
	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	appErrors "github.com/campushq/college-portal-api/pkg/errors"
)

// AdminService implements the admin command set: student, teacher,
// subject and fee management.
type AdminService struct {
	store     *repository.Store
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewAdminService constructs an AdminService.
func NewAdminService(store *repository.Store, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{store: store, validator: validate, cache: cache, logger: logger}
}

// Overview returns the complete admin catalog view.
func (s *AdminService) Overview(ctx context.Context) (*dto.AdminOverviewResponse, error) {
	students := s.store.ListStudents()
	studentDetails := make([]models.StudentDetail, 0, len(students))
	for _, st := range students {
		detail := models.StudentDetail{Student: st}
		if u, err := s.store.UserByID(st.UserID); err == nil {
			detail.Name = u.Name
			detail.Email = u.Email
		}
		studentDetails = append(studentDetails, detail)
	}

	teachers := s.store.ListTeachers()
	teacherDetails := make([]models.TeacherDetail, 0, len(teachers))
	for _, t := range teachers {
		detail := models.TeacherDetail{Teacher: t}
		if u, err := s.store.UserByID(t.UserID); err == nil {
			detail.Name = u.Name
			detail.Email = u.Email
		}
		teacherDetails = append(teacherDetails, detail)
	}

	fees := s.store.ListFees()
	pending := 0
	for _, f := range fees {
		if f.Status != models.FeePaid {
			pending++
		}
	}

	subjects := s.store.ListSubjects()
	return &dto.AdminOverviewResponse{
		Students: studentDetails,
		Teachers: teacherDetails,
		Subjects: subjects,
		Fees:     fees,
		Stats: dto.AdminStats{
			TotalStudents: len(students),
			TotalTeachers: len(teachers),
			TotalSubjects: len(subjects),
			PendingFees:   pending,
		},
	}, nil
}

// AddStudent creates a student user plus its enrollment record in one
// store transaction. A duplicate email is a conflict.
func (s *AdminService) AddStudent(ctx context.Context, req dto.AddStudentRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		Name:         req.Name,
	}
	student := models.Student{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		EnrollmentNo: req.EnrollmentNo,
		Department:   req.Department,
		Semester:     req.Semester,
		Year:         req.Year,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Address:      req.Address,
	}

	if err := s.store.InsertStudent(student, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert student")
	}

	s.invalidateDashboards(ctx)
	s.logger.Info("student added", zap.String("student_id", student.ID))
	return &models.StudentDetail{Student: student, Name: user.Name, Email: user.Email}, nil
}

// UpdateStudent applies a partial overwrite to the student row.
func (s *AdminService) UpdateStudent(ctx context.Context, req dto.UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	student, err := s.store.UpdateStudent(req.ID, req.StudentUpdate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

// DeleteStudent removes the student and every dependent record
// atomically: its user, attendance rows, marks and fee.
func (s *AdminService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.store.DeleteStudentCascade(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	s.invalidateDashboards(ctx)
	s.logger.Info("student deleted", zap.String("student_id", id))
	return nil
}

// AddTeacher creates a teacher user plus its staff record.
func (s *AdminService) AddTeacher(ctx context.Context, req dto.AddTeacherRequest) (*models.TeacherDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleTeacher,
		Name:         req.Name,
	}
	teacher := models.Teacher{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		EmployeeID:  req.EmployeeID,
		Department:  req.Department,
		Designation: req.Designation,
		Phone:       req.Phone,
		Subjects:    req.Subjects,
	}

	if err := s.store.InsertTeacher(teacher, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert teacher")
	}

	s.invalidateDashboards(ctx)
	return &models.TeacherDetail{Teacher: teacher, Name: user.Name, Email: user.Email}, nil
}

// AddSubject appends a catalog entry.
func (s *AdminService) AddSubject(ctx context.Context, req dto.AddSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	subject := models.Subject{
		ID:         uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Department: req.Department,
		Semester:   req.Semester,
		Credits:    req.Credits,
	}
	if err := s.store.InsertSubject(subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert subject")
	}

	s.invalidateDashboards(ctx)
	return &subject, nil
}

// UpdateFee overwrites paid and status for the given fee row only.
func (s *AdminService) UpdateFee(ctx context.Context, req dto.UpdateFeeRequest) (*models.Fee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid fee payload")
	}

	fee, err := s.store.UpdateFee(req.ID, req.Paid, req.Status)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "fee not found")
	}
	return &fee, nil
}

func (s *AdminService) invalidateDashboards(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, "dashboard:*"); err != nil {
		s.logger.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
