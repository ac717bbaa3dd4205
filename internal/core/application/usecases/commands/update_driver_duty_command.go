package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateDriverDutyCommandIsNotConstructed = errors.New(
		"UpdateDriverDutyCommand must be created via NewUpdateDriverDutyCommand constructor",
	)
	ErrDutyTargetIsInvalid = errors.New("duty target must be Available or OffDuty")
)

// UpdateDriverDutyCommand represents a duty roster change: taking an idle
// driver off duty or bringing an off-duty driver back. OnDelivery is never
// set directly; it is entered through order assignment.
type UpdateDriverDutyCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	target   driver.Status

	guard guard.ConstructorGuard
}

// NewUpdateDriverDutyCommand creates a duty change command.
// The target must be Available or OffDuty.
func NewUpdateDriverDutyCommand(driverID kernel.UUID, target driver.Status) (UpdateDriverDutyCommand, error) {
	command := UpdateDriverDutyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setTarget(target),
	); err != nil {
		return UpdateDriverDutyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverDutyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverDutyCommandIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (c UpdateDriverDutyCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Target returns the requested duty status.
func (c UpdateDriverDutyCommand) Target() driver.Status {
	return c.target
}

func (c *UpdateDriverDutyCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateDriverDutyCommand) setTarget(target driver.Status) error {
	if target != driver.Available && target != driver.OffDuty {
		return fmt.Errorf("%w: got %s", ErrDutyTargetIsInvalid, target)
	}

	c.target = target
	return nil
}
