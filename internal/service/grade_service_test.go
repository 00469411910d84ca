package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

func TestGradeServicePointFor(t *testing.T) {
	svc := NewGradeService(repository.NewRecordRepository(), nil, nil, nil)

	point, err := svc.PointFor(92)
	require.NoError(t, err)
	assert.Equal(t, 4.0, point)

	point, err = svc.PointFor(82)
	require.NoError(t, err)
	assert.Equal(t, 3.3, point)

	point, err = svc.PointFor(10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, point)

	_, err = svc.PointFor(-1)
	assert.ErrorIs(t, err, appErrors.ErrInvalidGrade)

	_, err = svc.PointFor(100.5)
	assert.ErrorIs(t, err, appErrors.ErrInvalidGrade)
}

func TestGradeServiceRecordGradeKeepsLatestPoint(t *testing.T) {
	records := repository.NewRecordRepository()
	ctx := context.Background()
	require.NoError(t, records.Append(ctx, "student01", models.EnrollmentRecord{CourseID: "CSE101", Semester: 1, Grades: []float64{}}))

	rec := &mockRecorder{}
	svc := NewGradeService(records, nil, nil, rec)

	point, err := svc.RecordGrade(ctx, "student01", "CSE101", 92)
	require.NoError(t, err)
	assert.Equal(t, 4.0, point)

	point, err = svc.RecordGrade(ctx, "student01", "CSE101", 60)
	require.NoError(t, err)
	assert.Equal(t, 2.0, point)

	record, err := records.FindByCourse(ctx, "student01", "CSE101")
	require.NoError(t, err)
	assert.Equal(t, []float64{92, 60}, record.Grades, "history keeps every entry")
	assert.Equal(t, 2.0, record.CGPA, "cgpa reflects the latest entry only")
	assert.Len(t, rec.actions, 2)
}

func TestGradeServiceRecordGradeNoSuchRecord(t *testing.T) {
	svc := NewGradeService(repository.NewRecordRepository(), nil, nil, nil)

	_, err := svc.RecordGrade(context.Background(), "student01", "CSE101", 75)
	assert.ErrorIs(t, err, appErrors.ErrNoSuchRecord)
}

func TestGradeServiceRecordGradeInvalid(t *testing.T) {
	records := repository.NewRecordRepository()
	ctx := context.Background()
	require.NoError(t, records.Append(ctx, "student01", models.EnrollmentRecord{CourseID: "CSE101", Semester: 1}))
	svc := NewGradeService(records, nil, nil, nil)

	_, err := svc.RecordGrade(ctx, "student01", "CSE101", 101)
	assert.ErrorIs(t, err, appErrors.ErrInvalidGrade)

	record, err := records.FindByCourse(ctx, "student01", "CSE101")
	require.NoError(t, err)
	assert.Empty(t, record.Grades, "rejected grades are not recorded")
}
