package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of a caller with a given role. Covers forward
// fulfillment moves, cancellations and returns; payment decisions have
// their own command.
//
// Example:
//
//	orderID, _ := kernel.ParseOrderID("CBC00042")
//	cmd, err := NewAdvanceOrderStatusCommand(orderID, order.Processing, kernel.RoleRDCStaff)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewAdvanceOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	target  order.Status
	role    kernel.Role

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a status change command.
// Validates the order ID, the target status and the caller's role; whether
// the caller may request the change is decided by the handler against the
// order's current status.
func NewAdvanceOrderStatusCommand(
	orderID kernel.OrderID,
	target order.Status,
	role kernel.Role,
) (AdvanceOrderStatusCommand, error) {
	command := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setRole(role),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the business identifier of the order.
func (c AdvanceOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Target returns the requested status.
func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

// Role returns the caller's role.
func (c AdvanceOrderStatusCommand) Role() kernel.Role {
	return c.role
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceOrderStatusCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
