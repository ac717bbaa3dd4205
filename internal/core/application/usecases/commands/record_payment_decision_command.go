package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordPaymentDecisionCommandIsNotConstructed = errors.New(
		"RecordPaymentDecisionCommand must be created via NewRecordPaymentDecisionCommand constructor",
	)
	ErrDecisionIsInvalid = errors.New("payment decision must be Paid or Rejected")
)

// RecordPaymentDecisionCommand represents a staff verdict on a bank
// transfer receipt: verified (Paid) or rejected.
//
// Example:
//
//	orderID, _ := kernel.ParseOrderID("CBC00042")
//	cmd, err := NewRecordPaymentDecisionCommand(orderID, order.PaymentPaid)
//	if err != nil {
//	    return fmt.Errorf("invalid decision: %w", err)
//	}
//
//	handler := NewRecordPaymentDecisionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record decision: %w", err)
//	}
type RecordPaymentDecisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	decision order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewRecordPaymentDecisionCommand creates a payment decision command.
// The decision must be PaymentPaid or PaymentRejected.
func NewRecordPaymentDecisionCommand(
	orderID kernel.OrderID,
	decision order.PaymentStatus,
) (RecordPaymentDecisionCommand, error) {
	command := RecordPaymentDecisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDecision(decision),
	); err != nil {
		return RecordPaymentDecisionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentDecisionCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentDecisionCommandIsNotConstructed)
}

// OrderID returns the business identifier of the order under review.
func (c RecordPaymentDecisionCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Decision returns the verdict: PaymentPaid or PaymentRejected.
func (c RecordPaymentDecisionCommand) Decision() order.PaymentStatus {
	return c.decision
}

func (c *RecordPaymentDecisionCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentDecisionCommand) setDecision(decision order.PaymentStatus) error {
	if decision != order.PaymentPaid && decision != order.PaymentRejected {
		return fmt.Errorf("%w: got %s", ErrDecisionIsInvalid, decision)
	}

	c.decision = decision
	return nil
}
