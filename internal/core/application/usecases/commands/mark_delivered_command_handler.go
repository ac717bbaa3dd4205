package commands

import (
	"context"
	"time"
)

// MarkDeliveredCommandHandler confirms a delivery.
//
// The order's transition to Delivered and the driver's return to Available
// commit together, keeping the registry's invariant that a driver holds an
// order exactly while OnDelivery.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmations.
func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation command.
func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, command MarkDeliveredCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(time.Now()); err != nil {
		return err
	}

	if err = releaseDriver(ctx, uow.DriverRepository(), aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
