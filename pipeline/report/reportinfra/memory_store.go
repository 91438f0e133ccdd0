package reportinfra

import (
	"context"
	"sync"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/report"
)

// MemoryJobStore implements report.JobStore in process memory. Report jobs
// are session-scoped, so nothing outlives the process on purpose.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[kernel.ReportID]report.ReportJob
}

// NewMemoryJobStore creates an in-memory job store
func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{
		jobs: make(map[kernel.ReportID]report.ReportJob),
	}
}

func (s *MemoryJobStore) Save(ctx context.Context, job *report.ReportJob) error {
	s.mu.Lock()
	s.jobs[job.ID] = *job
	s.mu.Unlock()
	return nil
}

func (s *MemoryJobStore) Get(ctx context.Context, id kernel.ReportID) (*report.ReportJob, error) {
	s.mu.RLock()
	job, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, report.ErrReportNotFound().WithDetail("job_id", id.String())
	}
	return &job, nil
}
