package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// restockScanSchedule runs the ledger sweep every fifteen minutes.
const restockScanSchedule = "0 */15 * * * *"

// RestockAlertJob periodically sweeps the inventory ledger and alerts
// operations about records at or below the restock threshold.
type RestockAlertJob struct {
	handler   commands.ScanRestockCommandHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRestockAlertJob creates the scheduled restock sweep.
// The threshold is fixed at construction from configuration.
func NewRestockAlertJob(
	handler commands.ScanRestockCommandHandler,
	threshold int,
	logger *slog.Logger,
) *RestockAlertJob {
	return &RestockAlertJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "restock_alert_job"),
	}
}

// Start schedules the sweep to run every fifteen minutes.
func (j *RestockAlertJob) Start() error {
	_, err := j.cron.AddFunc(restockScanSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewScanRestockCommand(j.threshold)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Restock scan command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Restock scan failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Restock alert job started",
		"threshold", j.threshold)
	return nil
}

// Stop stops the restock alert job.
func (j *RestockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Restock alert job stopped")
}
