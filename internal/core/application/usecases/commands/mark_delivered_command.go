package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a delivery confirmation for an order.
// Completion frees the driver who delivered it in the same transaction.
//
// Example:
//
//	orderID, _ := kernel.ParseOrderID("CBC00042")
//	cmd, err := NewMarkDeliveredCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid confirmation: %w", err)
//	}
//
//	handler := NewMarkDeliveredCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery confirmation failed: %w", err)
//	}
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a delivery confirmation command.
func NewMarkDeliveredCommand(orderID kernel.OrderID) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the business identifier of the delivered order.
func (c MarkDeliveredCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *MarkDeliveredCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
