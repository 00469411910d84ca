package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

type enrollmentCourseStore interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
	AddToRoster(ctx context.Context, id, username string) error
	RemoveFromRoster(ctx context.Context, id, username string) error
}

type enrollmentRecordStore interface {
	FindByCourse(ctx context.Context, username, courseID string) (*models.EnrollmentRecord, error)
	Append(ctx context.Context, username string, record models.EnrollmentRecord) error
	Remove(ctx context.Context, username, courseID string) error
	CountByStudent(ctx context.Context, username string) (int, error)
}

// EnrollmentService enforces the seat and personal enrollment caps and
// keeps roster membership and academic records consistent.
type EnrollmentService struct {
	courses       enrollmentCourseStore
	records       enrollmentRecordStore
	maxEnrollment int
	logger        *zap.Logger
	audit         actionRecorder
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(courses enrollmentCourseStore, records enrollmentRecordStore, maxEnrollment int, logger *zap.Logger, audit actionRecorder) *EnrollmentService {
	if maxEnrollment <= 0 {
		maxEnrollment = 4
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if audit == nil {
		audit = nopRecorder{}
	}
	return &EnrollmentService{courses: courses, records: records, maxEnrollment: maxEnrollment, logger: logger, audit: audit}
}

// Enroll registers the student on the course roster and opens a new
// enrollment record. Checks run in a fixed order: course exists,
// personal cap, duplicate, seat capacity.
func (s *EnrollmentService) Enroll(ctx context.Context, username, courseID string) (*models.EnrollmentRecord, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrCourseNotFound, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}

	count, err := s.records.CountByStudent(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to count enrollments")
	}
	if count >= s.maxEnrollment {
		return nil, appErrors.Clone(appErrors.ErrEnrollmentCap, "")
	}

	if _, err := s.records.FindByCourse(ctx, username, courseID); err == nil {
		return nil, appErrors.Clone(appErrors.ErrAlreadyEnrolled, "")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check enrollment")
	}
	// A roster seat without a record can exist after an admin edit.
	if course.Enrolled(username) {
		return nil, appErrors.Clone(appErrors.ErrAlreadyEnrolled, "")
	}

	if course.Full() {
		return nil, appErrors.Clone(appErrors.ErrSectionFull, fmt.Sprintf("section %s is full", course.Section))
	}

	if err := s.courses.AddToRoster(ctx, courseID, username); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to update roster")
	}

	record := models.EnrollmentRecord{CourseID: courseID, Semester: count + 1, Grades: []float64{}, CGPA: 0.0}
	if err := s.records.Append(ctx, username, record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create enrollment record")
	}

	s.audit.Record(ctx, username, models.AuditActionEnroll)
	return &record, nil
}

// Unenroll removes the roster seat and deletes the matching record.
func (s *EnrollmentService) Unenroll(ctx context.Context, username, courseID string) error {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrCourseNotFound, "")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load course")
	}

	if _, err := s.records.FindByCourse(ctx, username, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotEnrolled, "")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to check enrollment")
	}

	if err := s.courses.RemoveFromRoster(ctx, courseID, username); err != nil {
		s.logger.Warn("roster entry missing for held record",
			zap.String("username", username),
			zap.String("course_id", courseID),
			zap.Error(err))
	}

	if err := s.records.Remove(ctx, username, courseID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to delete enrollment record")
	}

	s.audit.Record(ctx, username, models.AuditActionUnenroll)
	return nil
}
