package repository

import (
	"context"

	"github.com/noah-isme/campus-portal/internal/models"
)

// RecordRepository keeps each student's enrollment records in insertion
// order, which doubles as semester order.
type RecordRepository struct {
	records map[string][]models.EnrollmentRecord
}

// NewRecordRepository creates an empty record keeper.
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{records: make(map[string][]models.EnrollmentRecord)}
}

// ListByStudent returns the student's records in semester order.
func (r *RecordRepository) ListByStudent(ctx context.Context, username string) ([]models.EnrollmentRecord, error) {
	records := r.records[username]
	result := make([]models.EnrollmentRecord, len(records))
	for i, rec := range records {
		result[i] = rec
		result[i].Grades = append([]float64(nil), rec.Grades...)
	}
	return result, nil
}

// FindByCourse returns the student's record for a course, if any.
func (r *RecordRepository) FindByCourse(ctx context.Context, username, courseID string) (*models.EnrollmentRecord, error) {
	for _, rec := range r.records[username] {
		if rec.CourseID == courseID {
			copied := rec
			copied.Grades = append([]float64(nil), rec.Grades...)
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Append adds a record to the end of the student's list.
func (r *RecordRepository) Append(ctx context.Context, username string, record models.EnrollmentRecord) error {
	record.Grades = append([]float64(nil), record.Grades...)
	r.records[username] = append(r.records[username], record)
	return nil
}

// Remove deletes the record matching the course id. Removal is by id,
// not by position.
func (r *RecordRepository) Remove(ctx context.Context, username, courseID string) error {
	records := r.records[username]
	for i, rec := range records {
		if rec.CourseID == courseID {
			r.records[username] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// AddGrade appends a grade to the matching record and overwrites its
// CGPA with the supplied point value.
func (r *RecordRepository) AddGrade(ctx context.Context, username, courseID string, grade, point float64) error {
	records := r.records[username]
	for i := range records {
		if records[i].CourseID == courseID {
			records[i].Grades = append(records[i].Grades, grade)
			records[i].CGPA = point
			return nil
		}
	}
	return ErrNotFound
}

// CountByStudent returns how many records the student holds.
func (r *RecordRepository) CountByStudent(ctx context.Context, username string) (int, error) {
	return len(r.records[username]), nil
}
