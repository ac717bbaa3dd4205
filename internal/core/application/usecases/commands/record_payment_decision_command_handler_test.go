package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPaymentDecisionCommand(t *testing.T) {
	t.Run("accepts both verdicts", func(t *testing.T) {
		for _, decision := range []order.PaymentStatus{order.PaymentPaid, order.PaymentRejected} {
			cmd, err := commands.NewRecordPaymentDecisionCommand(mustOrderID(t, 42), decision)

			require.NoError(t, err)
			require.NoError(t, cmd.Validate())
			require.Equal(t, decision, cmd.Decision())
		}
	})

	t.Run("rejects a pending decision", func(t *testing.T) {
		_, err := commands.NewRecordPaymentDecisionCommand(mustOrderID(t, 42), order.PaymentPending)

		require.ErrorIs(t, err, commands.ErrDecisionIsInvalid)
	})
}

func TestRecordPaymentDecisionCommandHandler_Handle_Verified(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordPaymentDecisionCommand(mustOrderID(t, 42), order.PaymentPaid)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.BankTransfer, "slip-2041.jpg")
	require.Equal(t, order.PaymentReview, aggregate.Status())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentDecisionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Pending, aggregate.Status())
	require.Equal(t, order.PaymentPaid, aggregate.PaymentStatus())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordPaymentDecisionCommandHandler_Handle_Rejected(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordPaymentDecisionCommand(mustOrderID(t, 42), order.PaymentRejected)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.BankTransfer, "slip-2041.jpg")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentDecisionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Canceled, aggregate.Status())
	require.Equal(t, order.PaymentRejected, aggregate.PaymentStatus())
}

func TestRecordPaymentDecisionCommandHandler_Handle_NotUnderReview(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordPaymentDecisionCommand(mustOrderID(t, 42), order.PaymentPaid)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.Card, "") // already Pending, nothing to verify

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentDecisionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	orderRepo.AssertNotCalled(t, "Update", ctx, aggregate)
	uow.AssertNotCalled(t, "Commit")
}

func TestRecordPaymentDecisionCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordPaymentDecisionCommand(mustOrderID(t, 42), order.PaymentPaid)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).
			Return(nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentDecisionCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRecordPaymentDecisionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RecordPaymentDecisionCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewRecordPaymentDecisionCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRecordPaymentDecisionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
