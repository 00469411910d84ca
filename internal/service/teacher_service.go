package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

type salaryReader interface {
	ListByUsername(ctx context.Context, username string) ([]models.SalarySlip, error)
}

type profileStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, username, fullName, qualification string) error
}

// UpdateProfileRequest carries a teacher's self-service profile edit.
type UpdateProfileRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Qualification string `json:"qualification"`
}

// TeacherService covers the teacher operation set: salary lookups and
// profile edits.
type TeacherService struct {
	salaries  salaryReader
	users     profileStore
	validator *validator.Validate
	logger    *zap.Logger
	audit     actionRecorder
}

// NewTeacherService constructs TeacherService.
func NewTeacherService(salaries salaryReader, users profileStore, validate *validator.Validate, logger *zap.Logger, audit actionRecorder) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if audit == nil {
		audit = nopRecorder{}
	}
	return &TeacherService{salaries: salaries, users: users, validator: validate, logger: logger, audit: audit}
}

// SalarySlips returns the teacher's ledger entries, oldest first.
func (s *TeacherService) SalarySlips(ctx context.Context, username string) ([]models.SalarySlip, error) {
	slips, err := s.salaries.ListByUsername(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list salary slips")
	}
	s.audit.Record(ctx, username, models.AuditActionSalaryView)
	return slips, nil
}

// UpdateProfile mutates the teacher's own name and qualification.
func (s *TeacherService) UpdateProfile(ctx context.Context, username string, req UpdateProfileRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid profile payload")
	}

	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrUnknownUser, "")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load user")
	}

	if err := s.users.UpdateProfile(ctx, username, req.FullName, req.Qualification); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update profile")
	}

	s.audit.Record(ctx, username, models.AuditActionProfileUpdate)
	return nil
}
