package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-portal/internal/models"
	appErrors "github.com/noah-isme/campus-portal/pkg/errors"
	"github.com/noah-isme/campus-portal/pkg/export"
)

type recordLister interface {
	ListByStudent(ctx context.Context, username string) ([]models.EnrollmentRecord, error)
}

type courseNameReader interface {
	FindByID(ctx context.Context, id string) (*models.Course, error)
}

// RecordService is the read-only projection over academic records used
// for reporting: listings, the CGPA trend, and file exports.
type RecordService struct {
	records    recordLister
	courses    courseNameReader
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	storageDir string
	logger     *zap.Logger
}

// NewRecordService constructs RecordService.
func NewRecordService(records recordLister, courses courseNameReader, storageDir string, logger *zap.Logger) *RecordService {
	if storageDir == "" {
		storageDir = "./exports"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordService{
		records:    records,
		courses:    courses,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		storageDir: storageDir,
		logger:     logger,
	}
}

// ListRecords returns the student's records in semester order.
func (s *RecordService) ListRecords(ctx context.Context, username string) ([]models.EnrollmentRecord, error) {
	records, err := s.records.ListByStudent(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to list records")
	}
	return records, nil
}

// CourseName resolves a course id into its display name for listings.
func (s *RecordService) CourseName(ctx context.Context, courseID string) string {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return "Unknown"
	}
	return course.Name
}

// Trend projects the student's records into (semester, cgpa) points.
func (s *RecordService) Trend(ctx context.Context, username string) ([]models.TrendPoint, error) {
	records, err := s.ListRecords(ctx, username)
	if err != nil {
		return nil, err
	}
	points := make([]models.TrendPoint, 0, len(records))
	for _, rec := range records {
		points = append(points, models.TrendPoint{Semester: rec.Semester, CGPA: rec.CGPA})
	}
	return points, nil
}

// ExportTrendPDF renders the CGPA trend report and writes it under the
// configured storage directory, returning the file path.
func (s *RecordService) ExportTrendPDF(ctx context.Context, username, fullName string) (string, error) {
	points, err := s.Trend(ctx, username)
	if err != nil {
		return "", err
	}
	if len(points) == 0 {
		return "", appErrors.Clone(appErrors.ErrNoSuchRecord, "no academic records found")
	}

	trend := make([]export.TrendPoint, len(points))
	for i, p := range points {
		trend[i] = export.TrendPoint{Semester: p.Semester, CGPA: p.CGPA}
	}

	data, err := s.pdf.RenderTrend(trend, fmt.Sprintf("CGPA Trend for %s", fullName))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render trend report")
	}

	return s.writeExport(fmt.Sprintf("cgpa_trend_%s.pdf", sanitize(username)), data)
}

// ExportRecordsCSV writes the student's record table as CSV, returning
// the file path.
func (s *RecordService) ExportRecordsCSV(ctx context.Context, username string) (string, error) {
	records, err := s.ListRecords(ctx, username)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", appErrors.Clone(appErrors.ErrNoSuchRecord, "no academic records found")
	}

	dataset := export.Dataset{Headers: []string{"Course", "Semester", "Grades", "CGPA"}}
	for _, rec := range records {
		grades := make([]string, len(rec.Grades))
		for i, g := range rec.Grades {
			grades[i] = fmt.Sprintf("%.1f", g)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Course":   rec.CourseID,
			"Semester": fmt.Sprintf("%d", rec.Semester),
			"Grades":   strings.Join(grades, " "),
			"CGPA":     fmt.Sprintf("%.1f", rec.CGPA),
		})
	}

	data, err := s.csv.Render(dataset)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to render records export")
	}

	return s.writeExport(fmt.Sprintf("records_%s.csv", sanitize(username)), data)
}

func (s *RecordService) writeExport(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to create export directory")
	}
	path := filepath.Join(s.storageDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to write export file")
	}
	return path, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
}
