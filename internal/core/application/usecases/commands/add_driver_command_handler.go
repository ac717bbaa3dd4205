package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
)

// AddDriverCommandHandler registers new delivery drivers.
type AddDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewAddDriverCommandHandler creates a handler for driver registration.
func NewAddDriverCommandHandler(uowFactory DriverUoWFactory) AddDriverCommandHandler {
	return AddDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h AddDriverCommandHandler) Handle(ctx context.Context, command AddDriverCommand) error {
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

	aggregate, err := driver.NewDriver(
		command.DriverID(), command.Name(), command.Phone(), command.VehicleNo(), command.LicenseNo())
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
