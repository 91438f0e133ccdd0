package dataset

import "time"

// SummaryResponse describes the loaded dataset
type SummaryResponse struct {
	Total      int        `json:"total"`
	Roles      []string   `json:"roles"`
	Sources    []string   `json:"sources"`
	FirstApply *time.Time `json:"first_applied,omitempty"`
	LastApply  *time.Time `json:"last_applied,omitempty"`
	LoadedAt   time.Time  `json:"loaded_at"`
}

// ListResponse is a filtered view of the candidate table
type ListResponse struct {
	Items []Candidate `json:"items"`
	Total int         `json:"total"`
}
