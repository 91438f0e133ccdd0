package datasetinfra

import (
	"strings"
	"time"

	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/araddon/dateparse"
)

// Expected header columns of the tracking export
const (
	colCandidate   = "Candidate"
	colRole        = "Role"
	colStage       = "Stage"
	colSource      = "Source"
	colAppliedDate = "Applied_Date"
	colLastUpdated = "Last_Updated"
	colSkills      = "Skills"
)

// headerIndex maps column names to their position in the header row.
// Unknown columns are ignored; missing columns leave fields empty.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

func cell(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// recordFromRow converts one source row into a candidate record. All fields
// pass through as text; only the two date columns are type-converted.
func recordFromRow(row []string, idx map[string]int) dataset.Candidate {
	return dataset.Candidate{
		Name:        cell(row, idx, colCandidate),
		Role:        cell(row, idx, colRole),
		Stage:       dataset.Stage(cell(row, idx, colStage)),
		Source:      cell(row, idx, colSource),
		AppliedDate: parseDate(cell(row, idx, colAppliedDate)),
		LastUpdated: parseDate(cell(row, idx, colLastUpdated)),
		Skills:      cell(row, idx, colSkills),
	}
}

// parseDate accepts any text form the generic parser understands; anything
// else (including empty text) coerces to nil rather than failing the load
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	return &t
}
