package models

// EnrollmentRecord is one course attempt owned by a single student.
// CGPA reflects the most recent grade entry only; the full history is
// kept in Grades.
type EnrollmentRecord struct {
	CourseID string    `json:"course_id"`
	Semester int       `json:"semester"`
	Grades   []float64 `json:"grades"`
	CGPA     float64   `json:"cgpa"`
}

// TrendPoint projects a record onto the reporting sink's input.
type TrendPoint struct {
	Semester int     `json:"semester"`
	CGPA     float64 `json:"cgpa"`
}
