package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// TrendPoint is a single sample on the CGPA-by-semester curve.
type TrendPoint struct {
	Semester int
	CGPA     float64
}

// PDFExporter renders datasets into a basic tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with an optional title and table body.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	writeTable(pdf, data)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderTrend creates a CGPA trend report: the sample table followed by a
// line chart of CGPA (0-4 scale) against semester.
func (e *PDFExporter) RenderTrend(points []TrendPoint, title string) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("trend requires at least one point")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	data := Dataset{Headers: []string{"Semester", "CGPA"}}
	for _, p := range points {
		data.Rows = append(data.Rows, map[string]string{
			"Semester": fmt.Sprintf("%d", p.Semester),
			"CGPA":     fmt.Sprintf("%.1f", p.CGPA),
		})
	}
	writeTable(pdf, data)
	pdf.Ln(10)

	drawTrendChart(pdf, points)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render trend pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(pdf *gofpdf.Fpdf, data Dataset) {
	pdf.SetFont("Arial", "B", 10)
	colWidth := 190.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func drawTrendChart(pdf *gofpdf.Fpdf, points []TrendPoint) {
	const (
		originX = 25.0
		width   = 160.0
		height  = 80.0
		maxCGPA = 4.0
	)
	originY := pdf.GetY() + height

	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(originX, originY, originX+width, originY)
	pdf.Line(originX, originY, originX, originY-height)

	pdf.SetFont("Arial", "", 8)
	for g := 0.0; g <= maxCGPA; g += 1.0 {
		y := originY - g/maxCGPA*height
		pdf.Line(originX-1.5, y, originX, y)
		pdf.Text(originX-9, y+1, fmt.Sprintf("%.1f", g))
	}

	span := float64(len(points))
	step := width / span
	prevX, prevY := 0.0, 0.0
	pdf.SetDrawColor(0, 0, 200)
	for i, p := range points {
		x := originX + (float64(i)+0.5)*step
		y := originY - p.CGPA/maxCGPA*height
		pdf.Circle(x, y, 0.8, "D")
		if i > 0 {
			pdf.Line(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(x-1, originY+4, fmt.Sprintf("%d", p.Semester))
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(originY + 8)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(0, 6, "CGPA by semester", "", 1, "C", false, 0, "")
}
