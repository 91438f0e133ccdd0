package report

import (
	"time"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/analytics"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// ReportJob tracks one asynchronous summary-report render
type ReportJob struct {
	ID     kernel.ReportID `json:"id"`
	Status JobStatus       `json:"status"`

	// DaysThreshold used for the stalled-candidate section
	DaysThreshold int `json:"days_threshold"`

	// OutputPath is set once the PDF has been written
	OutputPath string `json:"output_path,omitempty"`

	AttemptCount int `json:"attempt_count"`
	MaxAttempts  int `json:"max_attempts"`

	ErrorMessage string `json:"error_message,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// MarkProcessing records the start of an attempt
func (j *ReportJob) MarkProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.StartedAt = &now
	j.AttemptCount++
}

// MarkCompleted records a successful render
func (j *ReportJob) MarkCompleted(outputPath string) {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.OutputPath = outputPath
	j.CompletedAt = &now
	j.ErrorMessage = ""
	j.NextRetryAt = nil
}

// MarkFailed records a failed attempt; the job stays retryable until
// MaxAttempts is exhausted
func (j *ReportJob) MarkFailed(message string) {
	now := time.Now()
	j.ErrorMessage = message
	if j.CanRetry() {
		j.Status = JobStatusPending
		retry := now.Add(RetryBackoff(j.AttemptCount))
		j.NextRetryAt = &retry
		return
	}
	j.Status = JobStatusFailed
	j.FailedAt = &now
}

// CanRetry reports whether another attempt is allowed
func (j *ReportJob) CanRetry() bool {
	return j.AttemptCount < j.MaxAttempts
}

// RetryBackoff grows the retry delay with each attempt
func RetryBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * 30 * time.Second
}

// JobStatusResponse is the API view of a report job
type JobStatusResponse struct {
	JobID   kernel.ReportID `json:"job_id"`
	Status  JobStatus       `json:"status"`
	Message string          `json:"message"`

	OutputPath string `json:"output_path,omitempty"`
	Error      string `json:"error,omitempty"`

	AttemptCount int        `json:"attempt_count,omitempty"`
	NextRetryAt  *time.Time `json:"next_retry_at,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
}

// ToStatusResponse builds the API view of the job
func (j *ReportJob) ToStatusResponse() *JobStatusResponse {
	return &JobStatusResponse{
		JobID:        j.ID,
		Status:       j.Status,
		Message:      statusMessage(j.Status),
		OutputPath:   j.OutputPath,
		Error:        j.ErrorMessage,
		AttemptCount: j.AttemptCount,
		NextRetryAt:  j.NextRetryAt,
		CreatedAt:    j.CreatedAt,
		StartedAt:    j.StartedAt,
		CompletedAt:  j.CompletedAt,
		FailedAt:     j.FailedAt,
	}
}

func statusMessage(s JobStatus) string {
	switch s {
	case JobStatusPending:
		return "Report is queued for rendering"
	case JobStatusProcessing:
		return "Report is being rendered"
	case JobStatusCompleted:
		return "Report is ready"
	case JobStatusFailed:
		return "Report rendering failed"
	default:
		return "Unknown status"
	}
}

// RenderInput carries everything a renderer needs: the computed aggregates
// the report presents. Renderers consume values, they never recompute.
type RenderInput struct {
	GeneratedAt   time.Time
	KPIs          analytics.KPIs
	StageCounts   []analytics.StageCount
	Sources       []analytics.SourceRow
	DaysThreshold int
	Stalled       []dataset.Candidate
}

// GenerateRequest asks for an asynchronous report render
type GenerateRequest struct {
	DaysThreshold int `json:"days_threshold"`
}
