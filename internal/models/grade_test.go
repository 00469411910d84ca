package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeScalePointFor(t *testing.T) {
	cases := []struct {
		percentage float64
		point      float64
	}{
		{100, 4.0},
		{92, 4.0},
		{90, 4.0},
		{89.9, 3.7},
		{85, 3.7},
		{82, 3.3},
		{80, 3.3},
		{75, 3.0},
		{70, 2.7},
		{65, 2.3},
		{60, 2.0},
		{59.9, 0.0},
		{10, 0.0},
		{0, 0.0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.point, DefaultGradeScale.PointFor(tc.percentage), "percentage %.1f", tc.percentage)
	}
}

func TestGradeScaleMonotone(t *testing.T) {
	prev := 0.0
	for pct := 0.0; pct <= 100.0; pct += 0.5 {
		point := DefaultGradeScale.PointFor(pct)
		assert.GreaterOrEqual(t, point, prev, "scale must be non-decreasing at %.1f", pct)
		prev = point
	}
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"student", "teacher", "admin"} {
		role, ok := ParseRole(raw)
		assert.True(t, ok)
		assert.Equal(t, Role(raw), role)
	}

	_, ok := ParseRole("principal")
	assert.False(t, ok)
}
