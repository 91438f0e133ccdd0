package report

import (
	"context"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
)

// JobQueue hands report jobs to the worker pool
type JobQueue interface {
	// Enqueue adds a job to the queue
	Enqueue(ctx context.Context, jobID kernel.ReportID, payload any) error

	// Dequeue gets a job from the queue (blocking with timeout); returns
	// nil bytes when the queue is empty
	Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error)

	// EnqueueDelayed schedules a job for later processing (for retries)
	EnqueueDelayed(ctx context.Context, jobID kernel.ReportID, payload any, delay time.Duration) error

	// MoveDelayedToReady moves delayed jobs that are ready to the main queue
	MoveDelayedToReady(ctx context.Context) (int, error)

	// GetQueueSize returns the number of jobs ready for processing
	GetQueueSize(ctx context.Context) (int64, error)

	// Ping checks the queue backend connection
	Ping(ctx context.Context) error
}

// JobStore tracks report job state. Job state is session-scoped bookkeeping,
// not durable data.
type JobStore interface {
	Save(ctx context.Context, job *ReportJob) error
	Get(ctx context.Context, id kernel.ReportID) (*ReportJob, error)
}

// Renderer turns computed aggregates into a binary document
type Renderer interface {
	Render(ctx context.Context, input RenderInput) ([]byte, error)
}
