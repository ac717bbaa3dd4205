package commands

import (
	"context"
	"time"
)

// AssignDriverCommandHandler dispatches an order with a chosen driver.
//
// The driver's transition to OnDelivery and the order's transition to
// Dispatched commit together or not at all: a busy driver or an order that
// cannot be dispatched rolls the whole assignment back.
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignments.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Fails with driver.DriverUnavailableError when the driver cannot take the
// order, and with errs.ErrConflict when the order cannot be dispatched.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
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
	driverRepo := uow.DriverRepository()

	aggregate, err := orderRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil {
		return err
	}

	assigned, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if err = assigned.AssignOrder(aggregate.OrderID()); err != nil {
		return err
	}

	snapshot, err := assigned.Snapshot()
	if err != nil {
		return err
	}

	if err = aggregate.AssignDriver(snapshot, time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assigned); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
