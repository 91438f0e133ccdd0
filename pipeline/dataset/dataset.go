package dataset

import (
	"sort"
	"strings"
	"time"
)

// Stage represents a candidate's position in the hiring pipeline
type Stage string

const (
	StageApplied   Stage = "Applied"
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
	StageRejected  Stage = "Rejected"
)

// CanonicalStages is the fixed stage ordering used by every stage-ordered
// output. Labels outside this set are kept on the records but excluded from
// stage-ordered aggregations.
var CanonicalStages = []Stage{
	StageApplied,
	StageScreening,
	StageInterview,
	StageOffer,
	StageHired,
	StageRejected,
}

// IsCanonical reports whether the stage is one of the six pipeline stages
func (s Stage) IsCanonical() bool {
	for _, c := range CanonicalStages {
		if s == c {
			return true
		}
	}
	return false
}

// IsEarly reports whether the stage is pre-decision; only these stages can
// count as stalled
func (s Stage) IsEarly() bool {
	return s == StageApplied || s == StageScreening || s == StageInterview
}

// IsTerminal reports whether the stage is a final outcome
func (s Stage) IsTerminal() bool {
	return s == StageOffer || s == StageHired || s == StageRejected
}

// IsSuccess reports whether the stage counts toward conversion
func (s Stage) IsSuccess() bool {
	return s == StageOffer || s == StageHired
}

// Candidate is one row of the tracking export. Date fields are nil when the
// source value was missing or unparseable; that is expected dirt, not an error.
type Candidate struct {
	Name        string     `json:"candidate"`
	Role        string     `json:"role"`
	Stage       Stage      `json:"stage"`
	Source      string     `json:"source"`
	AppliedDate *time.Time `json:"applied_date"`
	LastUpdated *time.Time `json:"last_updated"`
	Skills      string     `json:"skills"`
}

// DaysInPipeline returns the elapsed whole days between application and last
// update. ok is false when either date is null, meaning the span cannot be
// computed. A negative span is returned as-is; callers treat it as not stalled.
func (c *Candidate) DaysInPipeline() (days int, ok bool) {
	if c.AppliedDate == nil || c.LastUpdated == nil {
		return 0, false
	}
	return daysBetween(*c.AppliedDate, *c.LastUpdated), true
}

// IsStalled reports whether the candidate has been idle in an early stage
// for at least daysThreshold days
func (c *Candidate) IsStalled(daysThreshold int) bool {
	if !c.Stage.IsEarly() {
		return false
	}
	days, ok := c.DaysInPipeline()
	return ok && days >= daysThreshold
}

// daysBetween computes whole calendar days from a to b, ignoring time of day
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dataset is the immutable, ordered collection of candidate records for a
// session. It is read-only after construction, so aggregators may run
// concurrently over the same instance without locking.
type Dataset struct {
	records []Candidate
}

// New creates a dataset from records in source order
func New(records []Candidate) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// IsEmpty reports whether the dataset has no records
func (d *Dataset) IsEmpty() bool {
	return len(d.records) == 0
}

// Records returns a copy of the records in source order
func (d *Dataset) Records() []Candidate {
	out := make([]Candidate, len(d.records))
	copy(out, d.records)
	return out
}

// Roles returns the distinct role labels, sorted
func (d *Dataset) Roles() []string {
	seen := make(map[string]struct{})
	roles := make([]string, 0)
	for _, r := range d.records {
		if _, ok := seen[r.Role]; !ok {
			seen[r.Role] = struct{}{}
			roles = append(roles, r.Role)
		}
	}
	sort.Strings(roles)
	return roles
}

// Sources returns the distinct source labels, sorted
func (d *Dataset) Sources() []string {
	seen := make(map[string]struct{})
	sources := make([]string, 0)
	for _, r := range d.records {
		if _, ok := seen[r.Source]; !ok {
			seen[r.Source] = struct{}{}
			sources = append(sources, r.Source)
		}
	}
	sort.Strings(sources)
	return sources
}

// FindByName returns the first record whose name matches, case-insensitively
func (d *Dataset) FindByName(name string) (Candidate, bool) {
	for _, r := range d.records {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Candidate{}, false
}

// Filter returns records matching the optional role and stage filters,
// sorted by LastUpdated descending with null dates last
func (d *Dataset) Filter(role string, stage Stage) []Candidate {
	out := make([]Candidate, 0, len(d.records))
	for _, r := range d.records {
		if role != "" && r.Role != role {
			continue
		}
		if stage != "" && r.Stage != stage {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastUpdated, out[j].LastUpdated
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}

// Span returns the earliest and latest applied dates present in the data.
// ok is false when no record carries an applied date.
func (d *Dataset) Span() (first, last time.Time, ok bool) {
	for _, r := range d.records {
		if r.AppliedDate == nil {
			continue
		}
		t := *r.AppliedDate
		if !ok {
			first, last, ok = t, t, true
			continue
		}
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}
	return first, last, ok
}
