package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

func seedRecords(t *testing.T) *repository.RecordRepository {
	t.Helper()
	records := repository.NewRecordRepository()
	ctx := context.Background()
	require.NoError(t, records.Append(ctx, "student01", models.EnrollmentRecord{CourseID: "CSE101", Semester: 1, Grades: []float64{92}, CGPA: 4.0}))
	require.NoError(t, records.Append(ctx, "student01", models.EnrollmentRecord{CourseID: "MAT201", Semester: 2, Grades: []float64{72}, CGPA: 2.7}))
	return records
}

func TestRecordServiceTrend(t *testing.T) {
	svc := NewRecordService(seedRecords(t), repository.NewCourseRepository(), t.TempDir(), nil)

	points, err := svc.Trend(context.Background(), "student01")
	require.NoError(t, err)
	assert.Equal(t, []models.TrendPoint{{Semester: 1, CGPA: 4.0}, {Semester: 2, CGPA: 2.7}}, points)

	empty, err := svc.Trend(context.Background(), "student02")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecordServiceCourseName(t *testing.T) {
	courses := repository.NewCourseRepository()
	require.NoError(t, courses.Create(context.Background(), &models.Course{ID: "CSE101", Name: "Intro to AI", Section: "A", SeatCapacity: 15}))
	svc := NewRecordService(repository.NewRecordRepository(), courses, t.TempDir(), nil)

	assert.Equal(t, "Intro to AI", svc.CourseName(context.Background(), "CSE101"))
	assert.Equal(t, "Unknown", svc.CourseName(context.Background(), "ENG999"))
}

func TestRecordServiceExportTrendPDF(t *testing.T) {
	dir := t.TempDir()
	svc := NewRecordService(seedRecords(t), repository.NewCourseRepository(), dir, nil)

	path, err := svc.ExportTrendPDF(context.Background(), "student01", "Student 01")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRecordServiceExportTrendPDFNoRecords(t *testing.T) {
	svc := NewRecordService(repository.NewRecordRepository(), repository.NewCourseRepository(), t.TempDir(), nil)

	_, err := svc.ExportTrendPDF(context.Background(), "student02", "Student 02")
	assert.ErrorIs(t, err, appErrors.ErrNoSuchRecord)
}

func TestRecordServiceExportRecordsCSV(t *testing.T) {
	dir := t.TempDir()
	svc := NewRecordService(seedRecords(t), repository.NewCourseRepository(), dir, nil)

	path, err := svc.ExportRecordsCSV(context.Background(), "student01")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Course,Semester,Grades,CGPA")
	assert.Contains(t, string(data), "CSE101")
}
