package analytics

import (
	"testing"
	"time"

	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func Test_ComputeKPIs_EmptyDataset(t *testing.T) {
	kpis := ComputeKPIs(dataset.New(nil))

	require.Zero(t, kpis.Total)
	require.Empty(t, kpis.ByStage)
	require.Nil(t, kpis.AvgTimeToHireDays)
	require.Zero(t, kpis.ConversionPct)
}

func Test_ComputeKPIs_Conversion(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Stage: dataset.StageApplied},
		{Stage: dataset.StageOffer},
		{Stage: dataset.StageHired},
		{Stage: dataset.StageRejected},
	})
	kpis := ComputeKPIs(ds)

	require.Equal(t, 4, kpis.Total)
	// (Offer + Hired) / 4 = 50%
	require.InDelta(t, 50.0, kpis.ConversionPct, 1e-9)
}

func Test_ComputeKPIs_AvgTimeToHire(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Stage: dataset.StageHired, AppliedDate: date(2024, 1, 1), LastUpdated: date(2024, 1, 11)}, // 10 days
		{Stage: dataset.StageHired, AppliedDate: date(2024, 1, 1), LastUpdated: date(2024, 1, 16)}, // 15 days
		// Hired but missing a date: excluded from the mean entirely
		{Stage: dataset.StageHired, AppliedDate: nil, LastUpdated: date(2024, 2, 1)},
		// Not hired: long span must not leak into the metric
		{Stage: dataset.StageRejected, AppliedDate: date(2024, 1, 1), LastUpdated: date(2024, 6, 1)},
	})
	kpis := ComputeKPIs(ds)

	require.NotNil(t, kpis.AvgTimeToHireDays)
	require.InDelta(t, 12.5, *kpis.AvgTimeToHireDays, 1e-9)
}

func Test_ComputeKPIs_AvgTimeToHire_NilWhenNoHires(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Stage: dataset.StageApplied, AppliedDate: date(2024, 1, 1), LastUpdated: date(2024, 1, 20)},
		{Stage: dataset.StageHired}, // hired but both dates null
	})
	require.Nil(t, ComputeKPIs(ds).AvgTimeToHireDays)
}

func Test_ComputeKPIs_ByStage_KeepsForeignLabels(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Stage: dataset.StageApplied},
		{Stage: dataset.Stage("Phone Screen")},
	})
	kpis := ComputeKPIs(ds)

	require.Equal(t, 1, kpis.ByStage["Applied"])
	require.Equal(t, 1, kpis.ByStage["Phone Screen"])
}

func Test_StageCounts_AllSixStagesZeroFilled(t *testing.T) {
	counts := StageCounts(dataset.New([]dataset.Candidate{
		{Stage: dataset.StageInterview},
		{Stage: dataset.StageInterview},
		{Stage: dataset.Stage("Phone Screen")}, // foreign label excluded here
	}))

	require.Len(t, counts, 6)
	require.Equal(t, dataset.StageApplied, counts[0].Stage)
	require.Equal(t, dataset.StageRejected, counts[5].Stage)

	byStage := make(map[dataset.Stage]int)
	for _, sc := range counts {
		byStage[sc.Stage] = sc.Count
	}
	require.Equal(t, 2, byStage[dataset.StageInterview])
	require.Zero(t, byStage[dataset.StageApplied])
	require.Zero(t, byStage[dataset.StageHired])
}

func Test_WeeklyTrends_MondayBucketsZeroFilled(t *testing.T) {
	// 2024-01-03 is a Wednesday (week of Mon 2024-01-01);
	// 2024-01-17 is in the week of Mon 2024-01-15, leaving an empty week between
	ds := dataset.New([]dataset.Candidate{
		{AppliedDate: date(2024, 1, 3)},
		{AppliedDate: date(2024, 1, 4)},
		{AppliedDate: date(2024, 1, 17)},
		{AppliedDate: nil}, // excluded
	})
	trends := WeeklyTrends(ds)

	require.Len(t, trends, 3)
	require.Equal(t, *date(2024, 1, 1), trends[0].WeekStart)
	require.Equal(t, 2, trends[0].Applications)
	require.Equal(t, *date(2024, 1, 8), trends[1].WeekStart)
	require.Zero(t, trends[1].Applications)
	require.Equal(t, *date(2024, 1, 15), trends[2].WeekStart)
	require.Equal(t, 1, trends[2].Applications)
}

func Test_WeeklyTrends_MondayMapsToItself(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{AppliedDate: date(2024, 1, 1)}, // a Monday
	})
	trends := WeeklyTrends(ds)

	require.Len(t, trends, 1)
	require.Equal(t, *date(2024, 1, 1), trends[0].WeekStart)
}

func Test_WeeklyTrends_NoDatedRecords(t *testing.T) {
	require.Empty(t, WeeklyTrends(dataset.New([]dataset.Candidate{{Name: "x"}})))
}

func Test_SourceEffectiveness_SortedWithRates(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Source: "Referral", Stage: dataset.StageHired},
		{Source: "LinkedIn", Stage: dataset.StageApplied},
		{Source: "LinkedIn", Stage: dataset.StageOffer},
		{Source: "LinkedIn", Stage: dataset.StageRejected},
	})
	rows := SourceEffectiveness(ds)

	require.Len(t, rows, 2)
	require.Equal(t, "LinkedIn", rows[0].Source)
	require.Equal(t, "Referral", rows[1].Source)

	require.Equal(t, 3, rows[0].Total)
	require.Equal(t, 1, rows[0].Success)
	require.InDelta(t, 33.33, rows[0].SuccessRatePct, 1e-9)

	require.Equal(t, 1, rows[1].Total)
	require.InDelta(t, 100.0, rows[1].SuccessRatePct, 1e-9)
}

func Test_SourceEffectiveness_StageBreakdownKeepsRawLabels(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Source: "Job Board", Stage: dataset.Stage("Phone Screen")},
		{Source: "Job Board", Stage: dataset.StageApplied},
	})
	rows := SourceEffectiveness(ds)

	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].Stages["Phone Screen"])
	require.Equal(t, 1, rows[0].Stages["Applied"])
	require.Zero(t, rows[0].SuccessRatePct)
}

func Test_FunnelLinks_FiveCanonicalEdges(t *testing.T) {
	ds := dataset.New([]dataset.Candidate{
		{Stage: dataset.StageApplied},
		{Stage: dataset.StageScreening},
		{Stage: dataset.StageScreening},
		{Stage: dataset.StageOffer},
		{Stage: dataset.StageHired},
		{Stage: dataset.StageRejected},
	})
	links := FunnelLinks(ds)

	require.Len(t, links, 5)
	require.Equal(t, FunnelLink{From: dataset.StageApplied, To: dataset.StageScreening, Value: 2}, links[0])
	require.Equal(t, FunnelLink{From: dataset.StageScreening, To: dataset.StageInterview, Value: 0}, links[1])
	require.Equal(t, FunnelLink{From: dataset.StageInterview, To: dataset.StageOffer, Value: 1}, links[2])
	require.Equal(t, FunnelLink{From: dataset.StageOffer, To: dataset.StageHired, Value: 1}, links[3])
	require.Equal(t, FunnelLink{From: dataset.StageOffer, To: dataset.StageRejected, Value: 1}, links[4])
}
