package datasetsrv

import (
	"context"
	"sync"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/logx"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

// Service owns the session's dataset snapshot. The snapshot itself is
// immutable; the only mutable state is the pointer, swapped under lock on
// (re)load so concurrent aggregations always see a consistent dataset.
type Service struct {
	loader dataset.Loader

	mu       sync.RWMutex
	current  *dataset.Dataset
	loadedAt time.Time
}

// NewService creates the dataset session service
func NewService(loader dataset.Loader) *Service {
	return &Service{loader: loader}
}

// Load reads the source and installs the snapshot
func (s *Service) Load(ctx context.Context) error {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = ds
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logx.Infof("Dataset loaded: %d candidate records", ds.Len())
	return nil
}

// Snapshot returns the current dataset
func (s *Service) Snapshot() (*dataset.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, dataset.ErrDatasetNotLoaded()
	}
	return s.current, nil
}

// List returns a filtered view of the candidate table, sorted by
// LastUpdated descending
func (s *Service) List(ctx context.Context, role string, stage dataset.Stage) (*dataset.ListResponse, error) {
	ds, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	items := ds.Filter(role, stage)
	return &dataset.ListResponse{
		Items: items,
		Total: len(items),
	}, nil
}

// Summary describes the loaded dataset
func (s *Service) Summary(ctx context.Context) (*dataset.SummaryResponse, error) {
	s.mu.RLock()
	ds, loadedAt := s.current, s.loadedAt
	s.mu.RUnlock()
	if ds == nil {
		return nil, dataset.ErrDatasetNotLoaded()
	}

	resp := &dataset.SummaryResponse{
		Total:    ds.Len(),
		Roles:    ds.Roles(),
		Sources:  ds.Sources(),
		LoadedAt: loadedAt,
	}
	if first, last, ok := ds.Span(); ok {
		resp.FirstApply = &first
		resp.LastApply = &last
	}
	return resp, nil
}

// Reload re-reads the source, replacing the snapshot
func (s *Service) Reload(ctx context.Context) (*dataset.SummaryResponse, error) {
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s.Summary(ctx)
}
