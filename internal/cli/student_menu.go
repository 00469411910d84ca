package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/noah-isme/campus-portal/internal/models"
)

func (s *Session) studentMenu(ctx context.Context, user *models.User) error {
	for {
		fmt.Fprintf(s.out, "\nStudent Menu - %s\n", user.FullName)
		fmt.Fprintln(s.out, "1. Enroll in course")
		fmt.Fprintln(s.out, "2. Unenroll from course")
		fmt.Fprintln(s.out, "3. View academic records")
		fmt.Fprintln(s.out, "4. Enter grade")
		fmt.Fprintln(s.out, "5. CGPA trend")
		fmt.Fprintln(s.out, "6. View teacher profiles")
		fmt.Fprintln(s.out, "7. Change password")
		fmt.Fprintln(s.out, "8. Logout")

		choice, err := s.prompt.Choice("Enter your choice: ", "1", "2", "3", "4", "5", "6", "7", "8")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.enroll(ctx, user)
		case "2":
			s.unenroll(ctx, user)
		case "3":
			s.viewRecords(ctx, user)
		case "4":
			s.enterGrade(ctx, user)
		case "5":
			s.cgpaTrend(ctx, user)
		case "6":
			s.viewTeachers(ctx)
		case "7":
			s.changePassword(ctx, user.Username)
		case "8":
			return nil
		}
	}
}

func (s *Session) enroll(ctx context.Context, user *models.User) {
	courseID, err := s.prompt.Line("Enter course ID to enroll: ")
	if err != nil {
		return
	}
	record, err := s.enrollments.Enroll(ctx, user.Username, courseID)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Enrolled in course %s (semester %d).\n", courseID, record.Semester)
}

func (s *Session) unenroll(ctx context.Context, user *models.User) {
	courseID, err := s.prompt.Line("Enter course ID to unenroll: ")
	if err != nil {
		return
	}
	if err := s.enrollments.Unenroll(ctx, user.Username, courseID); err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Unenrolled from course %s.\n", courseID)
}

func (s *Session) viewRecords(ctx context.Context, user *models.User) {
	records, err := s.records.ListRecords(ctx, user.Username)
	if err != nil {
		s.report(err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No academic records found.")
		return
	}

	fmt.Fprintf(s.out, "Academic records for %s:\n", user.FullName)
	for _, rec := range records {
		grades := make([]string, len(rec.Grades))
		for i, g := range rec.Grades {
			grades[i] = fmt.Sprintf("%.1f", g)
		}
		fmt.Fprintf(s.out, "- Course: %s (%s)\n", s.records.CourseName(ctx, rec.CourseID), rec.CourseID)
		fmt.Fprintf(s.out, "  Semester: %d\n", rec.Semester)
		fmt.Fprintf(s.out, "  Grades: [%s]\n", strings.Join(grades, ", "))
		fmt.Fprintf(s.out, "  CGPA: %.1f\n", rec.CGPA)
	}
}

func (s *Session) enterGrade(ctx context.Context, user *models.User) {
	courseID, err := s.prompt.Line("Enter course ID to update: ")
	if err != nil {
		return
	}
	grade, err := s.prompt.Float(fmt.Sprintf("Enter grade percentage for %s (0-100): ", courseID))
	if err != nil {
		return
	}
	point, err := s.grades.RecordGrade(ctx, user.Username, courseID, grade)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "CGPA updated to %.1f for %s based on grade %.1f%%.\n", point, courseID, grade)
}

func (s *Session) cgpaTrend(ctx context.Context, user *models.User) {
	points, err := s.records.Trend(ctx, user.Username)
	if err != nil {
		s.report(err)
		return
	}
	if len(points) == 0 {
		fmt.Fprintln(s.out, "No CGPA data available.")
		return
	}

	fmt.Fprintln(s.out, "Semester | CGPA")
	for _, p := range points {
		fmt.Fprintf(s.out, "%8d | %.1f\n", p.Semester, p.CGPA)
	}

	save, err := s.prompt.Choice("Save trend report as PDF? (y/n): ", "y", "n")
	if err != nil || save == "n" {
		return
	}
	path, err := s.records.ExportTrendPDF(ctx, user.Username, user.FullName)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintf(s.out, "Trend report written to %s\n", path)
}

func (s *Session) viewTeachers(ctx context.Context) {
	teachers, err := s.users.ListTeachers(ctx)
	if err != nil {
		s.report(err)
		return
	}
	fmt.Fprintln(s.out, "Teachers list and profiles:")
	for _, t := range teachers {
		if t.Qualification != "" {
			fmt.Fprintf(s.out, "- %s (Username: %s, Qualification: %s)\n", t.FullName, t.Username, t.Qualification)
			continue
		}
		fmt.Fprintf(s.out, "- %s (Username: %s)\n", t.FullName, t.Username)
	}
}
