package skills

import "github.com/Abraxas-365/insightshub/pipeline/dataset"

// ScoreRequest asks for candidates to be scored against a job description.
// An empty JobDescription falls back to the pre-seeded one; an empty
// Candidates list scores everyone.
type ScoreRequest struct {
	JobDescription string   `json:"job_description"`
	Candidates     []string `json:"candidates"`
}

// ScoredCandidate is one scored row, mirroring the candidate table columns
type ScoredCandidate struct {
	Candidate string        `json:"candidate"`
	Role      string        `json:"role"`
	Stage     dataset.Stage `json:"stage"`
	ScorePct  float64       `json:"score_pct"`
}

// ScoreResponse lists scored candidates, best match first
type ScoreResponse struct {
	JobDescription string            `json:"job_description"`
	Items          []ScoredCandidate `json:"items"`
}

// JDResponse carries the pre-seeded job description ("" when none exists)
type JDResponse struct {
	JobDescription string `json:"job_description"`
}
