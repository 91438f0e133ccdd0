package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// KPIs are the scalar summary statistics of the pipeline
type KPIs struct {
	Total int `json:"total"`

	// ByStage counts every raw stage label observed in the data,
	// including labels outside the canonical set
	ByStage map[string]int `json:"by_stage"`

	// AvgTimeToHireDays is the mean elapsed days for Hired candidates,
	// rounded to 1 decimal. Nil when no hired record carries both dates.
	AvgTimeToHireDays *float64 `json:"avg_time_to_hire_days"`

	// ConversionPct is (Offer+Hired)/Total*100 rounded to 2 decimals,
	// 0 for an empty dataset
	ConversionPct float64 `json:"conversion_pct"`
}

// ComputeKPIs computes the summary statistics for the dataset
func ComputeKPIs(ds *dataset.Dataset) KPIs {
	records := ds.Records()

	byStage := make(map[string]int)
	for _, r := range records {
		byStage[string(r.Stage)]++
	}

	var hireDays, hireCount int
	for _, r := range records {
		if r.Stage != dataset.StageHired {
			continue
		}
		if days, ok := r.DaysInPipeline(); ok {
			hireDays += days
			hireCount++
		}
	}
	var avg *float64
	if hireCount > 0 {
		v := round1(float64(hireDays) / float64(hireCount))
		avg = &v
	}

	var conversion float64
	if total := len(records); total > 0 {
		succeeded := byStage[string(dataset.StageOffer)] + byStage[string(dataset.StageHired)]
		conversion = round2(float64(succeeded) / float64(total) * 100)
	}

	return KPIs{
		Total:             len(records),
		ByStage:           byStage,
		AvgTimeToHireDays: avg,
		ConversionPct:     conversion,
	}
}

// StageCount is one bucket of the fixed six-stage breakdown
type StageCount struct {
	Stage dataset.Stage `json:"stage"`
	Count int           `json:"count"`
}

// StageCounts counts records per canonical stage, in canonical order.
// Every stage appears, zero-filled; foreign labels are excluded here (they
// still show up in KPIs.ByStage).
func StageCounts(ds *dataset.Dataset) []StageCount {
	counts := make(map[dataset.Stage]int)
	for _, r := range ds.Records() {
		if r.Stage.IsCanonical() {
			counts[r.Stage]++
		}
	}

	out := make([]StageCount, 0, len(dataset.CanonicalStages))
	for _, s := range dataset.CanonicalStages {
		out = append(out, StageCount{Stage: s, Count: counts[s]})
	}
	return out
}

// TrendPoint is one week of application volume; WeekStart is the Monday
// opening the week
type TrendPoint struct {
	WeekStart    time.Time `json:"week_start"`
	Applications int       `json:"applications"`
}

// WeeklyTrends buckets applications by calendar week (Monday boundary) over
// the observed span, zero-filling weeks without applications. Records with a
// null applied date are excluded. Output is chronological.
func WeeklyTrends(ds *dataset.Dataset) []TrendPoint {
	counts := make(map[time.Time]int)
	var first, last time.Time
	seen := false
	for _, r := range ds.Records() {
		if r.AppliedDate == nil {
			continue
		}
		wk := weekStart(*r.AppliedDate)
		counts[wk]++
		if !seen {
			first, last, seen = wk, wk, true
			continue
		}
		if wk.Before(first) {
			first = wk
		}
		if wk.After(last) {
			last = wk
		}
	}
	if !seen {
		return []TrendPoint{}
	}

	weeks := int(last.Sub(first).Hours()/(24*7)) + 1
	out := make([]TrendPoint, 0, weeks)
	for wk := first; !wk.After(last); wk = wk.AddDate(0, 0, 7) {
		out = append(out, TrendPoint{WeekStart: wk, Applications: counts[wk]})
	}
	return out
}

// weekStart truncates a timestamp to the Monday starting its calendar week
func weekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// SourceRow is the per-source stage breakdown with its success rate
type SourceRow struct {
	Source string `json:"source"`

	// Stages counts records per observed stage label for this source
	Stages map[string]int `json:"stages"`

	Success int `json:"success"`
	Total   int `json:"total"`

	// SuccessRatePct is Success/Total*100 rounded to 2 decimals,
	// 0 when the source has no records
	SuccessRatePct float64 `json:"success_rate_pct"`
}

// SourceEffectiveness computes one row per distinct source, ordered by
// source label
func SourceEffectiveness(ds *dataset.Dataset) []SourceRow {
	bySource := make(map[string]map[string]int)
	for _, r := range ds.Records() {
		stages, ok := bySource[r.Source]
		if !ok {
			stages = make(map[string]int)
			bySource[r.Source] = stages
		}
		stages[string(r.Stage)]++
	}

	labels := make([]string, 0, len(bySource))
	for src := range bySource {
		labels = append(labels, src)
	}
	sort.Strings(labels)

	out := make([]SourceRow, 0, len(labels))
	for _, src := range labels {
		stages := bySource[src]
		total := 0
		for _, n := range stages {
			total += n
		}
		success := stages[string(dataset.StageOffer)] + stages[string(dataset.StageHired)]

		var rate float64
		if total > 0 {
			rate = round2(float64(success) / float64(total) * 100)
		}

		out = append(out, SourceRow{
			Source:         src,
			Stages:         stages,
			Success:        success,
			Total:          total,
			SuccessRatePct: rate,
		})
	}
	return out
}

// FunnelLink is one edge of the candidate journey flow
type FunnelLink struct {
	From  dataset.Stage `json:"from"`
	To    dataset.Stage `json:"to"`
	Value int           `json:"value"`
}

// FunnelLinks emits the five canonical stage-to-stage links of the journey
// flow: each link carries the count of candidates currently at its target
// stage
func FunnelLinks(ds *dataset.Dataset) []FunnelLink {
	counts := make(map[dataset.Stage]int)
	for _, sc := range StageCounts(ds) {
		counts[sc.Stage] = sc.Count
	}

	return []FunnelLink{
		{From: dataset.StageApplied, To: dataset.StageScreening, Value: counts[dataset.StageScreening]},
		{From: dataset.StageScreening, To: dataset.StageInterview, Value: counts[dataset.StageInterview]},
		{From: dataset.StageInterview, To: dataset.StageOffer, Value: counts[dataset.StageOffer]},
		{From: dataset.StageOffer, To: dataset.StageHired, Value: counts[dataset.StageHired]},
		{From: dataset.StageOffer, To: dataset.StageRejected, Value: counts[dataset.StageRejected]},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
