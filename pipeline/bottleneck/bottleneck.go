package bottleneck

import (
	"sort"

	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// DefaultDaysThreshold is the idle-day threshold used when none is given
const DefaultDaysThreshold = 14

// Detect returns candidates stalled in an early stage: Stage is Applied,
// Screening or Interview and the elapsed days between application and last
// update reach the threshold. Records missing either date are skipped (the
// span cannot be computed, so they are not yet stalled). Terminal stages are
// never flagged. The result is sorted by LastUpdated descending, most
// recently touched first.
func Detect(ds *dataset.Dataset, daysThreshold int) []dataset.Candidate {
	stalled := make([]dataset.Candidate, 0)
	for _, r := range ds.Records() {
		if r.IsStalled(daysThreshold) {
			stalled = append(stalled, r)
		}
	}

	sort.SliceStable(stalled, func(i, j int) bool {
		return stalled[i].LastUpdated.After(*stalled[j].LastUpdated)
	})
	return stalled
}
