package models

// GradeBand maps a minimum percentage onto a CGPA point value.
type GradeBand struct {
	Threshold float64
	Point     float64
}

// GradeScale is an ordered set of bands, descending by threshold,
// covering the whole 0-100 range.
type GradeScale []GradeBand

// DefaultGradeScale is the portal's fixed grading table.
var DefaultGradeScale = GradeScale{
	{Threshold: 90, Point: 4.0},
	{Threshold: 85, Point: 3.7},
	{Threshold: 80, Point: 3.3},
	{Threshold: 75, Point: 3.0},
	{Threshold: 70, Point: 2.7},
	{Threshold: 65, Point: 2.3},
	{Threshold: 60, Point: 2.0},
	{Threshold: 0, Point: 0.0},
}

// PointFor returns the point of the highest band whose threshold does
// not exceed the percentage.
func (s GradeScale) PointFor(percentage float64) float64 {
	for _, band := range s {
		if percentage >= band.Threshold {
			return band.Point
		}
	}
	return 0.0
}
