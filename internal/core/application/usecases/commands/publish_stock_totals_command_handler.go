package commands

import (
	"context"
	"errors"
	"sort"

	"fulfillment/internal/core/ports"
)

// PublishStockTotalsCommandHandler computes the ledger-wide total of every
// product and pushes the figures to the catalog.
type PublishStockTotalsCommandHandler struct {
	uowFactory StockUoWFactory
	catalog    ports.CatalogGateway
}

// NewPublishStockTotalsCommandHandler creates a handler for stock rollups.
func NewPublishStockTotalsCommandHandler(
	uowFactory StockUoWFactory,
	catalog ports.CatalogGateway,
) PublishStockTotalsCommandHandler {
	return PublishStockTotalsCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the rollup command.
// One failed publish does not stop the rest; the failures are joined and
// returned after every product has been attempted.
func (h PublishStockTotalsCommandHandler) Handle(ctx context.Context, command PublishStockTotalsCommand) error {
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

	totals, err := uow.StockRepository().TotalsByProduct(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	productIDs := make([]string, 0, len(totals))
	for productID := range totals {
		productIDs = append(productIDs, productID)
	}
	sort.Strings(productIDs)

	var publishErrs []error
	for _, productID := range productIDs {
		if publishErr := h.catalog.PublishTotalStock(ctx, productID, totals[productID]); publishErr != nil {
			publishErrs = append(publishErrs, publishErr)
		}
	}

	return errors.Join(publishErrs...)
}
