package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal/internal/models"
)

func newCatalog(t *testing.T) *CourseRepository {
	t.Helper()
	repo := NewCourseRepository()
	require.NoError(t, repo.Create(context.Background(), &models.Course{ID: "CSE101", Name: "Intro to AI", Section: "A", SeatCapacity: 2}))
	return repo
}

func TestCourseRepositoryRoster(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, repo.AddToRoster(ctx, "CSE101", "student01"))
	assert.Error(t, repo.AddToRoster(ctx, "CSE101", "student01"), "duplicate roster entry")
	assert.ErrorIs(t, repo.AddToRoster(ctx, "ENG999", "student01"), ErrNotFound)

	course, err := repo.FindByID(ctx, "CSE101")
	require.NoError(t, err)
	assert.Equal(t, []string{"student01"}, course.Roster)

	require.NoError(t, repo.RemoveFromRoster(ctx, "CSE101", "student01"))
	assert.Error(t, repo.RemoveFromRoster(ctx, "CSE101", "student01"), "already removed")

	course, err = repo.FindByID(ctx, "CSE101")
	require.NoError(t, err)
	assert.Empty(t, course.Roster)
}

func TestCourseRepositoryFindReturnsCopy(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, repo.AddToRoster(ctx, "CSE101", "student01"))

	course, err := repo.FindByID(ctx, "CSE101")
	require.NoError(t, err)
	course.Roster[0] = "tampered"

	fresh, err := repo.FindByID(ctx, "CSE101")
	require.NoError(t, err)
	assert.Equal(t, "student01", fresh.Roster[0], "stored roster must not alias callers")
}

func TestCourseRepositoryListAndCount(t *testing.T) {
	repo := newCatalog(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Course{ID: "MAT201", Name: "Discrete Math", Section: "B", SeatCapacity: 15}))

	courses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "CSE101", courses[0].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
