package commands

import (
	"context"
)

// TransferStockCommandHandler handles stock transfers between distribution
// centers.
//
// The deduction at the source and the credit at the destination run inside
// one transaction. A shortfall at the source aborts the transfer and rolls
// back; no intermediate state is ever visible to other transactions.
type TransferStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewTransferStockCommandHandler creates a handler for stock transfers.
func NewTransferStockCommandHandler(uowFactory StockUoWFactory) TransferStockCommandHandler {
	return TransferStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock transfer command.
// Fails with stock.InsufficientStockError when the source center does not
// hold the requested quantity; neither side changes in that case.
func (h TransferStockCommandHandler) Handle(ctx context.Context, command TransferStockCommand) error {
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

	stockRepo := uow.StockRepository()

	if _, err := stockRepo.Adjust(ctx, command.From(), command.ProductID(), -command.Quantity()); err != nil {
		return err
	}

	if _, err := stockRepo.Adjust(ctx, command.To(), command.ProductID(), command.Quantity()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
