package reportsrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/fsx"
	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pkg/logx"
	"github.com/Abraxas-365/insightshub/pipeline/analytics/analyticssrv"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottlenecksrv"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
	"github.com/Abraxas-365/insightshub/pipeline/report"
	"github.com/google/uuid"
)

const MaxRenderAttempts = 3

type Service struct {
	datasets    *datasetsrv.Service
	analytics   *analyticssrv.Service
	bottlenecks *bottlenecksrv.Service

	renderer report.Renderer
	store    report.JobStore
	queue    report.JobQueue

	files     fsx.FileSystem
	outputDir string
}

// NewService creates the report service
func NewService(
	datasets *datasetsrv.Service,
	analytics *analyticssrv.Service,
	bottlenecks *bottlenecksrv.Service,
	renderer report.Renderer,
	store report.JobStore,
	queue report.JobQueue,
	files fsx.FileSystem,
	outputDir string,
) *Service {
	return &Service{
		datasets:    datasets,
		analytics:   analytics,
		bottlenecks: bottlenecks,
		renderer:    renderer,
		store:       store,
		queue:       queue,
		files:       files,
		outputDir:   outputDir,
	}
}

// ============================================================================
// Synchronous Render
// ============================================================================

// Render produces the summary PDF in-request, without touching the queue
func (s *Service) Render(ctx context.Context, daysThreshold int) ([]byte, error) {
	input, err := s.buildInput(ctx, daysThreshold)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.Render(ctx, *input)
	if err != nil {
		return nil, report.ErrRenderFailed(err)
	}
	return data, nil
}

// ============================================================================
// Asynchronous Render
// ============================================================================

// GenerateAsync queues a summary-report render for background processing
func (s *Service) GenerateAsync(ctx context.Context, req report.GenerateRequest) (*report.JobStatusResponse, error) {
	if req.DaysThreshold < 0 {
		return nil, report.ErrInvalidRequest().
			WithDetail("days_threshold", req.DaysThreshold)
	}
	if req.DaysThreshold == 0 {
		req.DaysThreshold = bottleneck.DefaultDaysThreshold
	}

	// A snapshot must exist before we promise a report
	if _, err := s.datasets.Snapshot(); err != nil {
		return nil, err
	}

	job := &report.ReportJob{
		ID:            kernel.NewReportID(uuid.NewString()),
		Status:        report.JobStatusPending,
		DaysThreshold: req.DaysThreshold,
		MaxAttempts:   MaxRenderAttempts,
		CreatedAt:     time.Now(),
	}

	if err := s.store.Save(ctx, job); err != nil {
		return nil, report.ErrStoreFailed(err).WithDetail("job_id", job.ID)
	}

	if err := s.queue.Enqueue(ctx, job.ID, job); err != nil {
		// No worker will ever pick it up, so fail it outright
		now := time.Now()
		job.Status = report.JobStatusFailed
		job.ErrorMessage = "failed to enqueue"
		job.FailedAt = &now
		_ = s.store.Save(ctx, job)

		return nil, report.ErrEnqueueFailed(err).WithDetail("job_id", job.ID)
	}

	logx.Infof("Report job queued: JobID=%s, DaysThreshold=%d", job.ID, job.DaysThreshold)
	return job.ToStatusResponse(), nil
}

// GetJobStatus retrieves the current status of a report job
func (s *Service) GetJobStatus(ctx context.Context, id kernel.ReportID) (*report.JobStatusResponse, error) {
	job, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return job.ToStatusResponse(), nil
}

// ProcessReportJob is the worker entry point for one render attempt
func (s *Service) ProcessReportJob(ctx context.Context, job *report.ReportJob) error {
	logx.Infof("Processing report job: JobID=%s, Attempt=%d/%d", job.ID, job.AttemptCount+1, job.MaxAttempts)

	job.MarkProcessing()
	if err := s.store.Save(ctx, job); err != nil {
		logx.Errorf("Failed to persist job state: %v", err)
	}

	input, err := s.buildInput(ctx, job.DaysThreshold)
	if err != nil {
		return s.handleJobError(ctx, job, err)
	}

	data, err := s.renderer.Render(ctx, *input)
	if err != nil {
		return s.handleJobError(ctx, job, report.ErrRenderFailed(err))
	}

	outputPath := s.files.Join(s.outputDir, string(job.ID)+".pdf")
	if err := s.files.WriteFile(ctx, outputPath, data); err != nil {
		return s.handleJobError(ctx, job, report.ErrStoreFailed(err))
	}

	job.MarkCompleted(outputPath)
	if err := s.store.Save(ctx, job); err != nil {
		// The PDF exists, so don't fail the job over bookkeeping
		logx.Errorf("Failed to mark job as completed: %v", err)
	}

	logx.Infof("Report job completed: JobID=%s, Output=%s", job.ID, outputPath)
	return nil
}

// handleJobError applies the retry policy after a failed attempt
func (s *Service) handleJobError(ctx context.Context, job *report.ReportJob, cause error) error {
	job.MarkFailed(cause.Error())

	if job.Status == report.JobStatusPending {
		delay := report.RetryBackoff(job.AttemptCount)
		logx.Warnf("Report job failed, will retry: JobID=%s, Attempt=%d/%d, Delay=%s, Error=%v",
			job.ID, job.AttemptCount, job.MaxAttempts, delay, cause)

		if queueErr := s.queue.EnqueueDelayed(ctx, job.ID, job, delay); queueErr != nil {
			logx.Errorf("Failed to enqueue report job for retry: %v", queueErr)
			job.Status = report.JobStatusFailed
			now := time.Now()
			job.FailedAt = &now
			job.NextRetryAt = nil
		}
	} else {
		logx.Errorf("Report job permanently failed: JobID=%s, Attempts=%d/%d, Error=%v",
			job.ID, job.AttemptCount, job.MaxAttempts, cause)
	}

	if err := s.store.Save(ctx, job); err != nil {
		logx.Errorf("Failed to persist job state: %v", err)
	}
	return cause
}

// buildInput assembles the computed aggregates the renderer consumes
func (s *Service) buildInput(ctx context.Context, daysThreshold int) (*report.RenderInput, error) {
	kpis, err := s.analytics.KPIs(ctx)
	if err != nil {
		return nil, err
	}
	stages, err := s.analytics.StageCounts(ctx)
	if err != nil {
		return nil, err
	}
	sources, err := s.analytics.SourceEffectiveness(ctx)
	if err != nil {
		return nil, err
	}
	stalled, err := s.bottlenecks.Detect(ctx, daysThreshold)
	if err != nil {
		return nil, err
	}

	if daysThreshold == 0 {
		daysThreshold = bottleneck.DefaultDaysThreshold
	}

	return &report.RenderInput{
		GeneratedAt:   time.Now(),
		KPIs:          *kpis,
		StageCounts:   stages,
		Sources:       sources,
		DaysThreshold: daysThreshold,
		Stalled:       stalled,
	}, nil
}
