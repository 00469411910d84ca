package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

type mockRecorder struct {
	actions []string
}

func (m *mockRecorder) Record(ctx context.Context, username, action string) {
	m.actions = append(m.actions, action)
}

func seedUser(t *testing.T, repo *repository.UserRepository, username, password string, role models.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.User{
		Username:     username,
		FullName:     username,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

func TestAuthServiceAuthenticate(t *testing.T) {
	repo := repository.NewUserRepository()
	seedUser(t, repo, "student01", "stud001", models.RoleStudent)
	rec := &mockRecorder{}
	svc := NewAuthService(repo, nil, nil, rec, AuthConfig{BcryptCost: bcrypt.MinCost})

	user, err := svc.Authenticate(context.Background(), "student01", "stud001")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Contains(t, rec.actions, models.AuditActionLogin)
}

func TestAuthServiceAuthenticateUnknownUser(t *testing.T) {
	svc := NewAuthService(repository.NewUserRepository(), nil, nil, nil, AuthConfig{BcryptCost: bcrypt.MinCost})

	_, err := svc.Authenticate(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, appErrors.ErrUnknownUser)
}

func TestAuthServiceAuthenticateBadCredential(t *testing.T) {
	repo := repository.NewUserRepository()
	seedUser(t, repo, "student01", "stud001", models.RoleStudent)
	svc := NewAuthService(repo, nil, nil, nil, AuthConfig{BcryptCost: bcrypt.MinCost})

	_, err := svc.Authenticate(context.Background(), "student01", "wrong")
	assert.ErrorIs(t, err, appErrors.ErrBadCredential)
}

func TestAuthServiceChangePasswordPersists(t *testing.T) {
	repo := repository.NewUserRepository()
	seedUser(t, repo, "teacher1", "teach123", models.RoleTeacher)
	rec := &mockRecorder{}
	svc := NewAuthService(repo, nil, nil, rec, AuthConfig{BcryptCost: bcrypt.MinCost})
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "teacher1", ChangePasswordRequest{OldPassword: "teach123", NewPassword: "brandnew"})
	require.NoError(t, err)
	assert.Contains(t, rec.actions, models.AuditActionPasswordChange)

	_, err = svc.Authenticate(ctx, "teacher1", "teach123")
	assert.ErrorIs(t, err, appErrors.ErrBadCredential, "old credential must stop working")

	user, err := svc.Authenticate(ctx, "teacher1", "brandnew")
	require.NoError(t, err)
	assert.Equal(t, "teacher1", user.Username)
}

func TestAuthServiceChangePasswordWrongOld(t *testing.T) {
	repo := repository.NewUserRepository()
	seedUser(t, repo, "teacher1", "teach123", models.RoleTeacher)
	svc := NewAuthService(repo, nil, nil, nil, AuthConfig{BcryptCost: bcrypt.MinCost})

	err := svc.ChangePassword(context.Background(), "teacher1", ChangePasswordRequest{OldPassword: "nope", NewPassword: "brandnew"})
	assert.ErrorIs(t, err, appErrors.ErrBadCredential)
}

func TestAuthServiceChangePasswordValidation(t *testing.T) {
	repo := repository.NewUserRepository()
	seedUser(t, repo, "teacher1", "teach123", models.RoleTeacher)
	svc := NewAuthService(repo, nil, nil, nil, AuthConfig{BcryptCost: bcrypt.MinCost})

	err := svc.ChangePassword(context.Background(), "teacher1", ChangePasswordRequest{OldPassword: "teach123", NewPassword: "x"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
