package report

import (
	"testing"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/stretchr/testify/require"
)

func newJob() *ReportJob {
	return &ReportJob{
		ID:            kernel.NewReportID("job-1"),
		Status:        JobStatusPending,
		DaysThreshold: 14,
		MaxAttempts:   3,
		CreatedAt:     time.Now(),
	}
}

func Test_ReportJob_MarkProcessing(t *testing.T) {
	job := newJob()
	job.MarkProcessing()

	require.Equal(t, JobStatusProcessing, job.Status)
	require.Equal(t, 1, job.AttemptCount)
	require.NotNil(t, job.StartedAt)
}

func Test_ReportJob_MarkCompleted(t *testing.T) {
	job := newJob()
	job.MarkProcessing()
	job.MarkCompleted("reports/job-1.pdf")

	require.Equal(t, JobStatusCompleted, job.Status)
	require.Equal(t, "reports/job-1.pdf", job.OutputPath)
	require.NotNil(t, job.CompletedAt)
	require.Empty(t, job.ErrorMessage)
	require.Nil(t, job.NextRetryAt)
}

func Test_ReportJob_MarkFailed_Retryable(t *testing.T) {
	job := newJob()
	job.MarkProcessing()
	job.MarkFailed("render blew up")

	require.Equal(t, JobStatusPending, job.Status)
	require.Equal(t, "render blew up", job.ErrorMessage)
	require.NotNil(t, job.NextRetryAt)
	require.Nil(t, job.FailedAt)
	require.True(t, job.CanRetry())
}

func Test_ReportJob_MarkFailed_Exhausted(t *testing.T) {
	job := newJob()
	for i := 0; i < job.MaxAttempts; i++ {
		job.MarkProcessing()
	}
	job.MarkFailed("still broken")

	require.Equal(t, JobStatusFailed, job.Status)
	require.NotNil(t, job.FailedAt)
	require.False(t, job.CanRetry())
}

func Test_RetryBackoff_GrowsWithAttempts(t *testing.T) {
	require.Equal(t, 30*time.Second, RetryBackoff(1))
	require.Equal(t, 60*time.Second, RetryBackoff(2))
	require.Equal(t, 90*time.Second, RetryBackoff(3))
}

func Test_ToStatusResponse(t *testing.T) {
	job := newJob()
	resp := job.ToStatusResponse()

	require.Equal(t, job.ID, resp.JobID)
	require.Equal(t, JobStatusPending, resp.Status)
	require.Equal(t, "Report is queued for rendering", resp.Message)

	job.MarkProcessing()
	job.MarkCompleted("reports/job-1.pdf")
	resp = job.ToStatusResponse()
	require.Equal(t, "Report is ready", resp.Message)
	require.Equal(t, "reports/job-1.pdf", resp.OutputPath)
}
