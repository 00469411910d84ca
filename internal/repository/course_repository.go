package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/campus-portal/internal/models"
)

// CourseRepository is the process-wide course catalog. The catalog set
// is fixed at bootstrap; only rosters mutate afterwards.
type CourseRepository struct {
	courses map[string]*models.Course
	order   []string
}

// NewCourseRepository creates an empty catalog.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: make(map[string]*models.Course)}
}

// Create registers a catalog entry at bootstrap.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; ok {
		return fmt.Errorf("create course %q: id taken", course.ID)
	}
	copied := *course
	copied.Roster = append([]string(nil), course.Roster...)
	r.courses[course.ID] = &copied
	r.order = append(r.order, course.ID)
	return nil
}

// FindByID returns a course with a copy of its roster.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *course
	copied.Roster = append([]string(nil), course.Roster...)
	return &copied, nil
}

// List returns catalog entries in insertion order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	result := make([]models.Course, 0, len(r.order))
	for _, id := range r.order {
		course := r.courses[id]
		copied := *course
		copied.Roster = append([]string(nil), course.Roster...)
		result = append(result, copied)
	}
	return result, nil
}

// Count returns the catalog size.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	return len(r.courses), nil
}

// AddToRoster appends a username to the course roster. Capacity policy
// belongs to the callers; the store only guards against duplicates.
func (r *CourseRepository) AddToRoster(ctx context.Context, id, username string) error {
	course, ok := r.courses[id]
	if !ok {
		return ErrNotFound
	}
	if course.Enrolled(username) {
		return fmt.Errorf("add to roster %q: %q already present", id, username)
	}
	course.Roster = append(course.Roster, username)
	return nil
}

// RemoveFromRoster removes a username from the course roster.
func (r *CourseRepository) RemoveFromRoster(ctx context.Context, id, username string) error {
	course, ok := r.courses[id]
	if !ok {
		return ErrNotFound
	}
	for i, u := range course.Roster {
		if u == username {
			course.Roster = append(course.Roster[:i], course.Roster[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove from roster %q: %q not present", id, username)
}
