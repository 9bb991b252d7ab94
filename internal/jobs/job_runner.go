package jobs

import (
	"context"
	"time"

	"partner-portal-backend/internal/config"
	"partner-portal-backend/internal/logger"
	"partner-portal-backend/internal/repository"
)

// JobRunner coordinates the maintenance jobs run by cmd/cronjob.
type JobRunner struct {
	requestRepo repository.RequestRepository
	config      *config.Config
}

func NewJobRunner(requestRepo repository.RequestRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		requestRepo: requestRepo,
		config:      cfg,
	}
}

// Config exposes the loaded configuration for scheduler registration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SweepStalePending marks requests stuck in pending past the configured
// cutoff as failed. A request only stays pending when the process died
// between persisting it and recording the relay outcome; this is hygiene,
// not a retry.
func (jr *JobRunner) SweepStalePending() {
	jr.runWithRecovery("sweep-stale-pending", func() {
		cutoff := time.Now().UTC().Add(-time.Duration(jr.config.Scheduler.StalePendingCutoffMinutes) * time.Minute)
		n, err := jr.requestRepo.MarkStalePending(context.Background(), cutoff)
		if err != nil {
			logger.Error("Failed to sweep stale pending requests", "error", err)
			return
		}
		if n > 0 {
			logger.Warn("Marked stale pending requests failed", "count", n, "cutoff", cutoff)
		}
	})
}

// DeliveryReport logs webhook delivery counts by status for operator
// visibility.
func (jr *JobRunner) DeliveryReport() {
	jr.runWithRecovery("delivery-report", func() {
		counts, err := jr.requestRepo.CountByWebhookStatus(context.Background())
		if err != nil {
			logger.Error("Failed to build delivery report", "error", err)
			return
		}
		logger.Info("Webhook delivery report",
			"pending", counts["pending"],
			"successful", counts["successful"],
			"failed", counts["failed"],
		)
	})
}

// RunAll runs every maintenance job once (for manual execution).
func (jr *JobRunner) RunAll() {
	jr.SweepStalePending()
	jr.DeliveryReport()
}
