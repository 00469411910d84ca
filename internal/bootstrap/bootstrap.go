package bootstrap

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
)

// SeedUser is one identity store entry before credential hashing.
type SeedUser struct {
	Username      string
	FullName      string
	Password      string
	Role          models.Role
	Qualification string
}

// Snapshot is the fixed dataset loaded once at process start.
type Snapshot struct {
	Users   []SeedUser
	Courses []models.Course
}

// Default returns the stock snapshot: one admin, one teacher and twenty
// students, plus the three bootstrap courses with 15 seats each.
func Default() Snapshot {
	users := []SeedUser{
		{Username: "admin", FullName: "Administrator", Password: "admin123", Role: models.RoleAdmin},
		{Username: "teacher1", FullName: "John Smith", Password: "teach123", Role: models.RoleTeacher, Qualification: "PhD"},
	}
	for i := 1; i <= 20; i++ {
		users = append(users, SeedUser{
			Username: fmt.Sprintf("student%02d", i),
			FullName: fmt.Sprintf("Student %02d", i),
			Password: fmt.Sprintf("stud%03d", i),
			Role:     models.RoleStudent,
		})
	}

	courses := []models.Course{
		{ID: "CSE101", Name: "Intro to AI", Section: "A", SeatCapacity: 15},
		{ID: "MAT201", Name: "Discrete Math", Section: "B", SeatCapacity: 15},
		{ID: "PHY301", Name: "Physics II", Section: "C", SeatCapacity: 15},
	}

	return Snapshot{Users: users, Courses: courses}
}

// Load hashes seed credentials and populates the process-wide stores.
func Load(ctx context.Context, snap Snapshot, users *repository.UserRepository, courses *repository.CourseRepository, bcryptCost int) error {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	for _, seed := range snap.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed credential for %q: %w", seed.Username, err)
		}
		user := &models.User{
			Username:      seed.Username,
			FullName:      seed.FullName,
			PasswordHash:  string(hash),
			Role:          seed.Role,
			Qualification: seed.Qualification,
		}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %q: %w", seed.Username, err)
		}
	}

	for _, course := range snap.Courses {
		c := course
		if err := courses.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed course %q: %w", course.ID, err)
		}
	}

	return nil
}
