package models

import "time"

// Role represents the closed set of portal roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// ParseRole resolves a raw string into a Role.
func ParseRole(raw string) (Role, bool) {
	r := Role(raw)
	return r, r.Valid()
}

// User represents a portal account held in the identity store.
type User struct {
	Username      string    `json:"username"`
	FullName      string    `json:"full_name"`
	PasswordHash  string    `json:"-"`
	Role          Role      `json:"role"`
	Qualification string    `json:"qualification,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserFilter captures filtering criteria for listing users.
type UserFilter struct {
	Role *Role
}

// Stats aggregates identity store and catalog counts for the admin view.
type Stats struct {
	TotalUsers    int `json:"total_users"`
	TotalStudents int `json:"total_students"`
	TotalTeachers int `json:"total_teachers"`
	TotalAdmins   int `json:"total_admins"`
	TotalCourses  int `json:"total_courses"`
}
