package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler applies a role-checked status change to
// an order.
//
// The transition policy decides whether the caller may request the change;
// the aggregate's state machine decides whether the change is possible.
// Reaching Delivered also frees the assigned driver in the same
// transaction, mirroring MarkDeliveredCommandHandler.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status changes.
func NewAdvanceOrderStatusCommandHandler(uowFactory UoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, command AdvanceOrderStatusCommand) error {
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

	policy := services.NewTransitionPolicy()
	if err = policy.Authorize(command.Role(), aggregate.Status(), command.Target()); err != nil {
		return err
	}

	now := time.Now()
	switch command.Target() {
	case order.Canceled:
		err = aggregate.Cancel(now)
	case order.Returned:
		err = aggregate.MarkReturned(now)
	case order.Delivered:
		err = aggregate.MarkDelivered(now)
	default:
		err = aggregate.AdvanceTo(command.Target(), now)
	}
	if err != nil {
		return err
	}

	if command.Target() == order.Delivered {
		if err = releaseDriver(ctx, uow.DriverRepository(), aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseDriver frees the driver holding the order, if any, and persists
// the change. A missing driver is not an error: the order may have been
// dispatched before driver tracking existed.
func releaseDriver(ctx context.Context, driverRepo ports.DriverRepository, aggregate *order.Order) error {
	assigned, err := driverRepo.GetByCurrentOrder(ctx, aggregate.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = assigned.CompleteDelivery(); err != nil {
		return err
	}

	return driverRepo.Update(ctx, assigned)
}
