package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// AdjustStockCommandHandler handles stock ledger adjustments.
//
// The non-negative quantity rule is enforced by the repository as one
// atomic conditional update, so concurrent adjustments to the same record
// can never drive it below zero. After a successful commit the product's
// total across all centers is published back to the catalog.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
	catalog    ports.CatalogGateway
}

// NewAdjustStockCommandHandler creates a handler for stock adjustments.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory, catalog ports.CatalogGateway) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the stock adjustment command.
// The product must exist in the catalog: an adjustment for an unknown
// product is rejected before the ledger is touched, so no phantom record
// can appear. Fails with stock.InsufficientStockError when the delta would
// drive the quantity negative; the ledger is left untouched in that case.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, command AdjustStockCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if _, err := h.catalog.Resolve(ctx, command.ProductID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()

	if _, err := stockRepo.Adjust(ctx, command.Location(), command.ProductID(), command.Delta()); err != nil {
		return err
	}

	total, err := stockRepo.TotalQuantity(ctx, command.ProductID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.catalog.PublishTotalStock(ctx, command.ProductID(), total)
}
