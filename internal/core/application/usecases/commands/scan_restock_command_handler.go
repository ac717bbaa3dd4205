package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/ports"
)

// ScanRestockCommandHandler runs the periodic restock sweep over the ledger.
// Records at or below the threshold are reported through the notification
// sink; a sweep that finds nothing sends nothing.
type ScanRestockCommandHandler struct {
	uowFactory StockUoWFactory
	notifier   ports.NotificationSink
}

// NewScanRestockCommandHandler creates a handler for restock sweeps.
func NewScanRestockCommandHandler(
	uowFactory StockUoWFactory,
	notifier ports.NotificationSink,
) ScanRestockCommandHandler {
	return ScanRestockCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the restock scan command.
// Unlike the invoice email on checkout, a failed restock alert is returned
// to the caller: the alert is the whole point of the sweep.
func (h ScanRestockCommandHandler) Handle(ctx context.Context, command ScanRestockCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	records, err := uow.StockRepository().GetBelowThreshold(ctx, command.Threshold())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(records) == 0 {
		return nil
	}

	alerts := make([]ports.RestockAlert, 0, len(records))
	for _, record := range records {
		alerts = append(alerts, ports.RestockAlert{
			Location:     record.Location(),
			ProductID:    record.ProductID(),
			CurrentStock: record.Quantity(),
			Message: fmt.Sprintf("Stock of %s at %s is down to %d units, restock required",
				record.ProductID(), record.Location(), record.Quantity()),
		})
	}

	return h.notifier.NotifyRestockAlert(ctx, alerts)
}
