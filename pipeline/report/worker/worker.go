package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/insightshub/pkg/logx"
	"github.com/Abraxas-365/insightshub/pipeline/report"
	"github.com/Abraxas-365/insightshub/pipeline/report/reportsrv"
)

type ReportWorker struct {
	service *reportsrv.Service
	queue   report.JobQueue
	workers int
}

func NewReportWorker(service *reportsrv.Service, queue report.JobQueue, workers int) *ReportWorker {
	return &ReportWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ReportWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d report workers", w.workers)

	// Start delayed job mover
	go w.moveDelayedJobs(ctx)

	// Start worker pool
	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ReportWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Report worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Report worker %d stopping", workerID)
			return
		default:
			// Dequeue with 5 second timeout
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Report worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Nil data means the queue was empty for the whole timeout
			if len(data) == 0 {
				continue
			}

			var job report.ReportJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Report worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Report worker %d processing job: %s", workerID, job.ID)
			if err := w.service.ProcessReportJob(ctx, &job); err != nil {
				logx.Errorf("Report worker %d job failed: %v", workerID, err)
			}
		}
	}
}

func (w *ReportWorker) moveDelayedJobs(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed report jobs: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed report jobs to ready queue", count)
			}
		}
	}
}
