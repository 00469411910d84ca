package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
	"github.com/noah-isme/campus-portal/pkg/export"
)

type userStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	CountByRole(ctx context.Context, role models.Role) (int, error)
	Count(ctx context.Context) (int, error)
}

type adminCourseStore interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Count(ctx context.Context) (int, error)
	AddToRoster(ctx context.Context, id, username string) error
	RemoveFromRoster(ctx context.Context, id, username string) error
}

// CreateUserRequest describes an admin provisioning payload.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required"`
}

// UserService covers the admin operation set: provisioning, directory
// reads, direct roster edits and aggregate stats.
type UserService struct {
	users      userStore
	courses    adminCourseStore
	validator  *validator.Validate
	logger     *zap.Logger
	audit      actionRecorder
	bcryptCost int
	storageDir string
}

// NewUserService constructs UserService.
func NewUserService(users userStore, courses adminCourseStore, validate *validator.Validate, logger *zap.Logger, audit actionRecorder, bcryptCost int, storageDir string) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if audit == nil {
		audit = nopRecorder{}
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if storageDir == "" {
		storageDir = "./exports"
	}
	return &UserService{users: users, courses: courses, validator: validate, logger: logger, audit: audit, bcryptCost: bcryptCost, storageDir: storageDir}
}

// CreateUser provisions a student or teacher account. Admins cannot be
// created after bootstrap.
func (s *UserService) CreateUser(ctx context.Context, actor string, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid create user payload")
	}

	role, ok := models.ParseRole(req.Role)
	if !ok || role == models.RoleAdmin {
		return nil, appErrors.Clone(appErrors.ErrInvalidRole, "")
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrUserExists, "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}

	user := &models.User{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create user")
	}

	s.audit.Record(ctx, actor, models.AuditActionUserCreate)
	return user, nil
}

// ListUsers returns the full identity store in insertion order.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx, models.UserFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list users")
	}
	return users, nil
}

// ListTeachers returns the identity store filtered to teachers.
func (s *UserService) ListTeachers(ctx context.Context) ([]models.User, error) {
	role := models.RoleTeacher
	users, err := s.users.List(ctx, models.UserFilter{Role: &role})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list teachers")
	}
	return users, nil
}

// Stats aggregates user counts by role plus the catalog size.
func (s *UserService) Stats(ctx context.Context) (*models.Stats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count users")
	}
	stats := &models.Stats{TotalUsers: total}

	for _, item := range []struct {
		role models.Role
		dst  *int
	}{
		{models.RoleStudent, &stats.TotalStudents},
		{models.RoleTeacher, &stats.TotalTeachers},
		{models.RoleAdmin, &stats.TotalAdmins},
	} {
		count, err := s.users.CountByRole(ctx, item.role)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count users by role")
		}
		*item.dst = count
	}

	courses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count courses")
	}
	stats.TotalCourses = courses

	return stats, nil
}

// AddToRoster seats a user on a course roster directly. Only the seat
// capacity applies here; the personal enrollment cap does not, and no
// enrollment record is created.
func (s *UserService) AddToRoster(ctx context.Context, actor, courseID, username string) error {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrCourseNotFound, "")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}

	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrUnknownUser, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}

	if course.Enrolled(username) {
		return appErrors.Clone(appErrors.ErrAlreadyEnrolled, "")
	}
	if course.Full() {
		return appErrors.Clone(appErrors.ErrSectionFull, "")
	}

	if err := s.courses.AddToRoster(ctx, courseID, username); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update roster")
	}

	s.audit.Record(ctx, actor, models.AuditActionRosterEdit)
	return nil
}

// RemoveFromRoster removes a user's roster seat directly. The user's
// own enrollment records are untouched.
func (s *UserService) RemoveFromRoster(ctx context.Context, actor, courseID, username string) error {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrCourseNotFound, "")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}

	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrUnknownUser, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}

	if !course.Enrolled(username) {
		return appErrors.Clone(appErrors.ErrNotEnrolled, "user is not enrolled in this course")
	}

	if err := s.courses.RemoveFromRoster(ctx, courseID, username); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update roster")
	}

	s.audit.Record(ctx, actor, models.AuditActionRosterEdit)
	return nil
}

// ExportUsersCSV writes the user directory as CSV, returning the path.
func (s *UserService) ExportUsersCSV(ctx context.Context) (string, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return "", err
	}

	dataset := export.Dataset{Headers: []string{"Username", "Full Name", "Role", "Qualification"}}
	for _, u := range users {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Username":      u.Username,
			"Full Name":     u.FullName,
			"Role":          string(u.Role),
			"Qualification": u.Qualification,
		})
	}

	data, err := export.NewCSVExporter().Render(dataset)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render user export")
	}

	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create export directory")
	}
	path := filepath.Join(s.storageDir, "users.csv")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to write export file")
	}
	return path, nil
}
