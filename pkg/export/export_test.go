package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"Username", "Role"},
		Rows: []map[string]string{
			{"Username": "admin", "Role": "admin"},
			{"Username": "teacher1", "Role": "teacher"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Username,Role\nadmin,admin\nteacher1,teacher\n", string(data))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()

	data, err := exporter.Render(Dataset{
		Headers: []string{"Semester", "CGPA"},
		Rows:    []map[string]string{{"Semester": "1", "CGPA": "4.0"}},
	}, "Academic Records")
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExporterRenderTrend(t *testing.T) {
	exporter := NewPDFExporter()

	data, err := exporter.RenderTrend([]TrendPoint{
		{Semester: 1, CGPA: 4.0},
		{Semester: 2, CGPA: 2.7},
		{Semester: 3, CGPA: 3.3},
	}, "CGPA Trend for Student 01")
	require.NoError(t, err)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExporterRenderTrendEmpty(t *testing.T) {
	_, err := NewPDFExporter().RenderTrend(nil, "empty")
	assert.Error(t, err)
}
