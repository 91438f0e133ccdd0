package reportinfra

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/insightshub/pipeline/analytics"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/Abraxas-365/insightshub/pipeline/report"
	"github.com/stretchr/testify/require"
)

func sampleInput() report.RenderInput {
	avg := 12.5
	applied := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	return report.RenderInput{
		GeneratedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		KPIs: analytics.KPIs{
			Total:             4,
			ByStage:           map[string]int{"Applied": 2, "Hired": 2},
			AvgTimeToHireDays: &avg,
			ConversionPct:     50.0,
		},
		StageCounts: []analytics.StageCount{
			{Stage: dataset.StageApplied, Count: 2},
			{Stage: dataset.StageHired, Count: 2},
		},
		Sources: []analytics.SourceRow{
			{Source: "LinkedIn", Stages: map[string]int{"Applied": 2}, Total: 2},
			{Source: "Referral", Stages: map[string]int{"Hired": 2}, Success: 2, Total: 2, SuccessRatePct: 100.0},
		},
		DaysThreshold: 14,
		Stalled: []dataset.Candidate{
			{Name: "Alice", Role: "Backend Engineer", Stage: dataset.StageApplied,
				Source: "LinkedIn", AppliedDate: &applied, LastUpdated: &updated},
		},
	}
}

func Test_PDFRenderer_ProducesPDF(t *testing.T) {
	renderer := NewPDFRenderer()

	data, err := renderer.Render(context.Background(), sampleInput())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func Test_PDFRenderer_HandlesEmptyAggregates(t *testing.T) {
	renderer := NewPDFRenderer()

	input := report.RenderInput{
		GeneratedAt:   time.Now(),
		KPIs:          analytics.KPIs{ByStage: map[string]int{}},
		DaysThreshold: 14,
	}
	data, err := renderer.Render(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}
