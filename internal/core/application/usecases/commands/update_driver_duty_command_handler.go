package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
)

// UpdateDriverDutyCommandHandler applies duty roster changes to drivers.
type UpdateDriverDutyCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewUpdateDriverDutyCommandHandler creates a handler for duty changes.
func NewUpdateDriverDutyCommandHandler(uowFactory DriverUoWFactory) UpdateDriverDutyCommandHandler {
	return UpdateDriverDutyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duty change command.
// Fails with errs.ErrConflict when the driver is out on a delivery or the
// change is a no-op for the current status.
func (h UpdateDriverDutyCommandHandler) Handle(ctx context.Context, command UpdateDriverDutyCommand) error {
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

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, command.DriverID())
	if err != nil {
		return err
	}

	if command.Target() == driver.OffDuty {
		err = aggregate.GoOffDuty()
	} else {
		err = aggregate.ReturnToDuty()
	}
	if err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
