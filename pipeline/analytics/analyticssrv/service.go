package analyticssrv

import (
	"context"

	"github.com/Abraxas-365/insightshub/pipeline/analytics"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
)

// Service runs the pure aggregators over the session's dataset snapshot.
// Every call reads the snapshot once, so concurrent requests are safe.
type Service struct {
	datasets *datasetsrv.Service
}

// NewService creates the analytics service
func NewService(datasets *datasetsrv.Service) *Service {
	return &Service{datasets: datasets}
}

// KPIs computes the scalar summary statistics
func (s *Service) KPIs(ctx context.Context) (*analytics.KPIs, error) {
	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	k := analytics.ComputeKPIs(ds)
	return &k, nil
}

// StageCounts returns the fixed six-stage breakdown
func (s *Service) StageCounts(ctx context.Context) ([]analytics.StageCount, error) {
	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return analytics.StageCounts(ds), nil
}

// WeeklyTrends returns the weekly application-volume series
func (s *Service) WeeklyTrends(ctx context.Context) ([]analytics.TrendPoint, error) {
	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return analytics.WeeklyTrends(ds), nil
}

// SourceEffectiveness returns the per-source stage breakdown and success rates
func (s *Service) SourceEffectiveness(ctx context.Context) ([]analytics.SourceRow, error) {
	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return analytics.SourceEffectiveness(ds), nil
}

// FunnelLinks returns the candidate journey flow edges
func (s *Service) FunnelLinks(ctx context.Context) ([]analytics.FunnelLink, error) {
	ds, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return analytics.FunnelLinks(ds), nil
}
