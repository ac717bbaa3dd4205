package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// RecordPaymentDecisionCommandHandler applies a staff payment verdict to an
// order under payment review. Verification releases the order into
// fulfillment; rejection cancels it. Both paths append their tracking
// events through the aggregate.
type RecordPaymentDecisionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentDecisionCommandHandler creates a handler for payment decisions.
func NewRecordPaymentDecisionCommandHandler(uowFactory OrderUoWFactory) RecordPaymentDecisionCommandHandler {
	return RecordPaymentDecisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment decision command.
// Fails with errs.ErrConflict when the order is not under payment review.
func (h RecordPaymentDecisionCommandHandler) Handle(ctx context.Context, command RecordPaymentDecisionCommand) error {
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

	now := time.Now()
	if command.Decision() == order.PaymentPaid {
		err = aggregate.VerifyPayment(now)
	} else {
		err = aggregate.RejectPayment(now)
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
