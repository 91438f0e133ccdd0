package skillssrv

import (
	"context"
	"sort"

	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
	"github.com/Abraxas-365/insightshub/pipeline/skills"
)

// Service scores candidate skill text against a job description
type Service struct {
	datasets *datasetsrv.Service
	jdSource skills.JDSource
}

// NewService creates the skills service
func NewService(datasets *datasetsrv.Service, jdSource skills.JDSource) *Service {
	return &Service{
		datasets: datasets,
		jdSource: jdSource,
	}
}

// JD returns the pre-seeded job description, empty when none is configured
func (s *Service) JD(ctx context.Context) (*skills.JDResponse, error) {
	jd, err := s.jdSource.Read(ctx)
	if err != nil {
		return nil, err
	}
	return &skills.JDResponse{JobDescription: jd.String()}, nil
}

// Score scores the requested candidates (all of them when none are named)
// against the job description, returning rows sorted by score descending
func (s *Service) Score(ctx context.Context, req skills.ScoreRequest) (*skills.ScoreResponse, error) {
	jdText := req.JobDescription
	if jdText == "" {
		jd, err := s.jdSource.Read(ctx)
		if err != nil {
			return nil, err
		}
		jdText = jd.String()
	}

	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	scored := make([]skills.ScoredCandidate, 0)
	if len(req.Candidates) == 0 {
		for _, r := range ds.Records() {
			scored = append(scored, skills.ScoredCandidate{
				Candidate: r.Name,
				Role:      r.Role,
				Stage:     r.Stage,
				ScorePct:  skills.ScoreCandidate(r.Skills, jdText),
			})
		}
	} else {
		for _, name := range req.Candidates {
			r, ok := ds.FindByName(name)
			if !ok {
				continue // unknown names are skipped, not errors
			}
			scored = append(scored, skills.ScoredCandidate{
				Candidate: r.Name,
				Role:      r.Role,
				Stage:     r.Stage,
				ScorePct:  skills.ScoreCandidate(r.Skills, jdText),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ScorePct > scored[j].ScorePct
	})

	return &skills.ScoreResponse{
		JobDescription: jdText,
		Items:          scored,
	}, nil
}
