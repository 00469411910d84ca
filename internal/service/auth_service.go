package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

type authUserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	BcryptCost int
}

// ChangePasswordRequest carries a credential change payload.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

// AuthService resolves credentials against the identity store.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
	audit     actionRecorder
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger, audit actionRecorder, config AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if audit == nil {
		audit = nopRecorder{}
	}
	if config.BcryptCost <= 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, audit: audit, config: config}
}

// Authenticate resolves a username/password pair into the stored user.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrUnknownUser, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrBadCredential, "")
	}

	s.audit.Record(ctx, username, models.AuditActionLogin)
	return user, nil
}

// ChangePassword verifies the old credential and persists the new hash
// into the identity store.
func (s *AuthService) ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid change password payload")
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrUnknownUser, "")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return appErrors.Clone(appErrors.ErrBadCredential, "")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.config.BcryptCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}

	if err := s.repo.UpdatePassword(ctx, username, string(newHash)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update password")
	}

	s.audit.Record(ctx, username, models.AuditActionPasswordChange)
	return nil
}

// HashPassword produces a salted one-way hash for seed and provisioning
// flows.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to hash password")
	}
	return string(hash), nil
}
