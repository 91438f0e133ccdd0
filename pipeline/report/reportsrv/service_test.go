package reportsrv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/insightshub/pkg/kernel"
	"github.com/Abraxas-365/insightshub/pipeline/analytics/analyticssrv"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottleneckinfra"
	"github.com/Abraxas-365/insightshub/pipeline/bottleneck/bottlenecksrv"
	"github.com/Abraxas-365/insightshub/pipeline/dataset"
	"github.com/Abraxas-365/insightshub/pipeline/dataset/datasetsrv"
	"github.com/Abraxas-365/insightshub/pipeline/report"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportinfra"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	ds *dataset.Dataset
}

func (l *stubLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	return l.ds, nil
}

// fakeQueue records enqueued jobs in memory
type fakeQueue struct {
	enqueued   []kernel.ReportID
	delayed    []kernel.ReportID
	enqueueErr error
}

func (q *fakeQueue) Enqueue(ctx context.Context, jobID kernel.ReportID, payload any) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.enqueued = append(q.enqueued, jobID)
	return nil
}

func (q *fakeQueue) Dequeue(ctx context.Context, timeout time.Duration) ([]byte, error) {
	return nil, nil
}

func (q *fakeQueue) EnqueueDelayed(ctx context.Context, jobID kernel.ReportID, payload any, delay time.Duration) error {
	q.delayed = append(q.delayed, jobID)
	return nil
}

func (q *fakeQueue) MoveDelayedToReady(ctx context.Context) (int, error) { return 0, nil }
func (q *fakeQueue) GetQueueSize(ctx context.Context) (int64, error)     { return 0, nil }
func (q *fakeQueue) Ping(ctx context.Context) error                      { return nil }

// failingRenderer always errors, to exercise the retry path
type failingRenderer struct{}

func (r *failingRenderer) Render(ctx context.Context, input report.RenderInput) ([]byte, error) {
	return nil, errors.New("render blew up")
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testDataset() *dataset.Dataset {
	return dataset.New([]dataset.Candidate{
		{Name: "Alice", Role: "Backend Engineer", Stage: dataset.StageScreening, Source: "LinkedIn",
			AppliedDate: date(2024, 1, 1), LastUpdated: date(2024, 1, 20), Skills: "Python; SQL"},
		{Name: "Bob", Role: "Data Analyst", Stage: dataset.StageHired, Source: "Referral",
			AppliedDate: date(2024, 1, 5), LastUpdated: date(2024, 2, 4), Skills: "SQL"},
	})
}

func newTestService(t *testing.T, renderer report.Renderer, queue report.JobQueue, outputDir string) (*Service, report.JobStore) {
	t.Helper()

	datasets := datasetsrv.NewService(&stubLoader{ds: testDataset()})
	require.NoError(t, datasets.Load(context.Background()))

	analytics := analyticssrv.NewService(datasets)
	bottlenecks := bottlenecksrv.NewService(datasets, bottleneckinfra.NewSimulatedSender(), nil)
	store := reportinfra.NewMemoryJobStore()
	files := fsxlocal.NewLocalFileSystem(outputDir)

	svc := NewService(datasets, analytics, bottlenecks, renderer, store, queue, files, "reports")
	return svc, store
}

func Test_Render_Synchronous(t *testing.T) {
	svc, _ := newTestService(t, reportinfra.NewPDFRenderer(), &fakeQueue{}, t.TempDir())

	data, err := svc.Render(context.Background(), 14)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Equal(t, "%PDF", string(data[:4]))
}

func Test_GenerateAsync_QueuesJob(t *testing.T) {
	queue := &fakeQueue{}
	svc, store := newTestService(t, reportinfra.NewPDFRenderer(), queue, t.TempDir())

	resp, err := svc.GenerateAsync(context.Background(), report.GenerateRequest{})
	require.NoError(t, err)
	require.Equal(t, report.JobStatusPending, resp.Status)
	require.Len(t, queue.enqueued, 1)

	job, err := store.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.Equal(t, 14, job.DaysThreshold) // default threshold applied
	require.Equal(t, MaxRenderAttempts, job.MaxAttempts)
}

func Test_GenerateAsync_NegativeThresholdRejected(t *testing.T) {
	svc, _ := newTestService(t, reportinfra.NewPDFRenderer(), &fakeQueue{}, t.TempDir())

	_, err := svc.GenerateAsync(context.Background(), report.GenerateRequest{DaysThreshold: -1})
	require.Error(t, err)
}

func Test_GenerateAsync_EnqueueFailureMarksJobFailed(t *testing.T) {
	queue := &fakeQueue{enqueueErr: errors.New("redis down")}
	svc, _ := newTestService(t, reportinfra.NewPDFRenderer(), queue, t.TempDir())

	_, err := svc.GenerateAsync(context.Background(), report.GenerateRequest{})
	require.Error(t, err)
}

func Test_ProcessReportJob_WritesPDFAndCompletes(t *testing.T) {
	dir := t.TempDir()
	svc, store := newTestService(t, reportinfra.NewPDFRenderer(), &fakeQueue{}, dir)

	resp, err := svc.GenerateAsync(context.Background(), report.GenerateRequest{DaysThreshold: 14})
	require.NoError(t, err)

	job, err := store.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.NoError(t, svc.ProcessReportJob(context.Background(), job))

	done, err := store.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.Equal(t, report.JobStatusCompleted, done.Status)
	require.Equal(t, filepath.Join("reports", string(resp.JobID)+".pdf"), done.OutputPath)

	data, err := os.ReadFile(filepath.Join(dir, done.OutputPath))
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(data[:4]))
}

func Test_ProcessReportJob_RetriesOnRenderFailure(t *testing.T) {
	queue := &fakeQueue{}
	svc, store := newTestService(t, &failingRenderer{}, queue, t.TempDir())

	resp, err := svc.GenerateAsync(context.Background(), report.GenerateRequest{})
	require.NoError(t, err)

	job, err := store.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.Error(t, svc.ProcessReportJob(context.Background(), job))

	// First failure: back on the delayed queue, still pending
	require.Len(t, queue.delayed, 1)
	saved, err := store.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.Equal(t, report.JobStatusPending, saved.Status)
	require.Equal(t, 1, saved.AttemptCount)

	// Exhaust the remaining attempts
	for i := 1; i < MaxRenderAttempts; i++ {
		job, err = store.Get(context.Background(), resp.JobID)
		require.NoError(t, err)
		require.Error(t, svc.ProcessReportJob(context.Background(), job))
	}

	final, err := store.Get(context.Background(), resp.JobID)
	require.NoError(t, err)
	require.Equal(t, report.JobStatusFailed, final.Status)
	require.False(t, final.CanRetry())
}

func Test_GetJobStatus_Unknown(t *testing.T) {
	svc, _ := newTestService(t, reportinfra.NewPDFRenderer(), &fakeQueue{}, t.TempDir())

	_, err := svc.GetJobStatus(context.Background(), kernel.NewReportID("missing"))
	require.Error(t, err)
}
