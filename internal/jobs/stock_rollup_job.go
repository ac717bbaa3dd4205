package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// stockRollupSchedule publishes ledger totals to the catalog every five
// minutes.
const stockRollupSchedule = "0 */5 * * * *"

// StockRollupJob periodically rolls the per-location ledger up into one
// total per product and publishes the totals to the catalog.
type StockRollupJob struct {
	handler commands.PublishStockTotalsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStockRollupJob creates the scheduled stock rollup.
func NewStockRollupJob(handler commands.PublishStockTotalsCommandHandler, logger *slog.Logger) *StockRollupJob {
	return &StockRollupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stock_rollup_job"),
	}
}

// Start schedules the rollup to run every five minutes.
func (j *StockRollupJob) Start() error {
	_, err := j.cron.AddFunc(stockRollupSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewPublishStockTotalsCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Stock rollup failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock rollup job started")
	return nil
}

// Stop stops the stock rollup job.
func (j *StockRollupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock rollup job stopped")
}
