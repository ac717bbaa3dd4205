// Package jobs provides scheduled background tasks for the fulfillment
// system, built on github.com/robfig/cron/v3.
//
// Two jobs run in the background:
//
//  1. RestockAlertJob - sweeps the inventory ledger every fifteen minutes
//     and emails operations about records at or below the restock threshold
//  2. StockRollupJob - publishes per-product ledger totals to the catalog
//     every five minutes
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(scanHandler, rollupHandler, threshold, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	restockAlertJob *RestockAlertJob
	stockRollupJob  *StockRollupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	scanRestockHandler commands.ScanRestockCommandHandler,
	publishTotalsHandler commands.PublishStockTotalsCommandHandler,
	restockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		restockAlertJob: NewRestockAlertJob(scanRestockHandler, restockThreshold, logger),
		stockRollupJob:  NewStockRollupJob(publishTotalsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.restockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start restock alert job: %w", err)
	}

	if err := jm.stockRollupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.restockAlertJob.Stop()
		return fmt.Errorf("failed to start stock rollup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockRollupJob.Stop()
	jm.restockAlertJob.Stop()
}
