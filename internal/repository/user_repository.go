package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/campus-portal/internal/models"
)

// UserRepository is the process-wide identity store. One instance is
// created at startup and shared by every service so that mutations are
// visible across roles.
type UserRepository struct {
	users map[string]*models.User
	order []string
}

// NewUserRepository creates an empty identity store.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

// FindByUsername returns a user by its unique username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// Create inserts a new user keyed by username.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return fmt.Errorf("create user %q: username taken", user.Username)
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	copied := *user
	r.users[user.Username] = &copied
	r.order = append(r.order, user.Username)
	return nil
}

// UpdatePassword replaces the stored password hash so subsequent
// authentications use the new value.
func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	user, ok := r.users[username]
	if !ok {
		return ErrNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateProfile mutates the user's display name and qualification.
func (r *UserRepository) UpdateProfile(ctx context.Context, username, fullName, qualification string) error {
	user, ok := r.users[username]
	if !ok {
		return ErrNotFound
	}
	user.FullName = fullName
	user.Qualification = qualification
	user.UpdatedAt = time.Now().UTC()
	return nil
}

// List returns users in insertion order, optionally filtered by role.
func (r *UserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	result := make([]models.User, 0, len(r.order))
	for _, username := range r.order {
		user := r.users[username]
		if filter.Role != nil && user.Role != *filter.Role {
			continue
		}
		result = append(result, *user)
	}
	return result, nil
}

// CountByRole tallies users holding the given role.
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// Count returns the total number of users.
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	return len(r.users), nil
}
