package reportinfra

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/Abraxas-365/insightshub/pipeline/report"
	"github.com/go-pdf/fpdf"
)

// PDFRenderer implements report.Renderer, producing the summary PDF:
// key metrics, stage and source breakdowns, and the stalled-candidate list
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF report renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(ctx context.Context, input report.RenderInput) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Hiring Insights Hub - Summary Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on: %s", input.GeneratedAt.Format("2006-01-02 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.writeKeyMetrics(pdf, input)
	r.writeStageTable(pdf, input)
	r.writeSourceTable(pdf, input)
	r.writeSourceStageBreakdown(pdf, input)
	r.writeStalled(pdf, input)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func (r *PDFRenderer) writeKeyMetrics(pdf *fpdf.Fpdf, input report.RenderInput) {
	heading(pdf, "Key Metrics")

	tth := "n/a"
	if input.KPIs.AvgTimeToHireDays != nil {
		tth = fmt.Sprintf("%.1f", *input.KPIs.AvgTimeToHireDays)
	}

	pdf.CellFormat(0, 6, fmt.Sprintf("Total Candidates: %d", input.KPIs.Total), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Avg. Time to Hire (days): %s", tth), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Conversion (Offer+Hired / All): %.2f%%", input.KPIs.ConversionPct), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (r *PDFRenderer) writeStageTable(pdf *fpdf.Fpdf, input report.RenderInput) {
	heading(pdf, "Candidates by Stage")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Stage", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Count", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, sc := range input.StageCounts {
		pdf.CellFormat(60, 7, string(sc.Stage), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", sc.Count), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) writeSourceTable(pdf *fpdf.Fpdf, input report.RenderInput) {
	heading(pdf, "Candidates by Source")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Source", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Success Rate", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range input.Sources {
		pdf.CellFormat(60, 7, row.Source, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", row.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f%%", row.SuccessRatePct), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) writeSourceStageBreakdown(pdf *fpdf.Fpdf, input report.RenderInput) {
	heading(pdf, "Stage Breakdown by Source")

	// Columns are the union of observed stage labels, sorted for stability
	stageSet := make(map[string]struct{})
	for _, row := range input.Sources {
		for stage := range row.Stages {
			stageSet[stage] = struct{}{}
		}
	}
	stages := make([]string, 0, len(stageSet))
	for stage := range stageSet {
		stages = append(stages, stage)
	}
	sort.Strings(stages)

	colWidth := 130.0 / float64(len(stages)+1)
	if len(stages) == 0 {
		pdf.CellFormat(0, 6, "No data", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(40, 7, "Source", "1", 0, "L", false, 0, "")
	for _, stage := range stages {
		pdf.CellFormat(colWidth, 7, stage, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range input.Sources {
		pdf.CellFormat(40, 7, row.Source, "1", 0, "L", false, 0, "")
		for _, stage := range stages {
			pdf.CellFormat(colWidth, 7, fmt.Sprintf("%d", row.Stages[stage]), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (r *PDFRenderer) writeStalled(pdf *fpdf.Fpdf, input report.RenderInput) {
	heading(pdf, fmt.Sprintf("Bottlenecks (idle >= %d days)", input.DaysThreshold))

	if len(input.Stalled) == 0 {
		pdf.CellFormat(0, 6, "No stalled candidates.", "", 1, "L", false, 0, "")
		return
	}

	for _, c := range input.Stalled {
		applied, updated := "n/a", "n/a"
		if c.AppliedDate != nil {
			applied = c.AppliedDate.Format("2006-01-02")
		}
		if c.LastUpdated != nil {
			updated = c.LastUpdated.Format("2006-01-02")
		}
		line := fmt.Sprintf("- %s (%s), Stage: %s, Source: %s, Applied: %s, Last Updated: %s",
			c.Name, c.Role, c.Stage, c.Source, applied, updated)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
}
