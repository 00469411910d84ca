package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal/internal/models"
	"github.com/noah-isme/campus-portal/internal/repository"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
)

type gradeRecordStore interface {
	FindByCourse(ctx context.Context, username, courseID string) (*models.EnrollmentRecord, error)
	AddGrade(ctx context.Context, username, courseID string, grade, point float64) error
}

// GradeService maps grade percentages onto CGPA points and records
// grade entries.
type GradeService struct {
	records gradeRecordStore
	scale   models.GradeScale
	logger  *zap.Logger
	audit   actionRecorder
}

// NewGradeService constructs GradeService.
func NewGradeService(records gradeRecordStore, scale models.GradeScale, logger *zap.Logger, audit actionRecorder) *GradeService {
	if scale == nil {
		scale = models.DefaultGradeScale
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if audit == nil {
		audit = nopRecorder{}
	}
	return &GradeService{records: records, scale: scale, logger: logger, audit: audit}
}

// PointFor resolves a percentage into its CGPA point value.
func (s *GradeService) PointFor(percentage float64) (float64, error) {
	if percentage < 0 || percentage > 100 {
		return 0, appErrors.Clone(appErrors.ErrInvalidGrade, "")
	}
	return s.scale.PointFor(percentage), nil
}

// RecordGrade appends the percentage to the record's grade history and
// overwrites the record's CGPA with the point for this latest entry.
func (s *GradeService) RecordGrade(ctx context.Context, username, courseID string, percentage float64) (float64, error) {
	point, err := s.PointFor(percentage)
	if err != nil {
		return 0, err
	}

	if _, err := s.records.FindByCourse(ctx, username, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, appErrors.Clone(appErrors.ErrNoSuchRecord, "")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to load record")
	}

	if err := s.records.AddGrade(ctx, username, courseID, percentage, point); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to record grade")
	}

	s.audit.Record(ctx, username, models.AuditActionGradeEntry)
	return point, nil
}
