package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// makeInTransitOrder builds an order that has been dispatched with a driver
// and is currently on the road.
func makeInTransitOrder(t *testing.T) *order.Order {
	t.Helper()

	aggregate := makeOrder(t, order.Card, "")
	require.NoError(t, aggregate.AdvanceTo(order.Processing, time.Now()))

	info, err := order.NewDriverInfo("Kasun Silva", "0719876543", "WP-AB-4455")
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignDriver(info, time.Now()))
	require.NoError(t, aggregate.AdvanceTo(order.InTransit, time.Now()))

	return aggregate
}

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Processing, kernel.RoleRDCStaff)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, order.Processing, cmd.Target())
		require.Equal(t, kernel.RoleRDCStaff, cmd.Role())
	})

	t.Run("rejects an unknown target status", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Unknown, kernel.RoleRDCStaff)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Processing, kernel.Role("ghost"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAdvanceOrderStatusCommandHandler_Handle_StaffAdvance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Processing, kernel.RoleRDCStaff)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.Card, "")

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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Processing, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_CustomerCancelsPendingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Canceled, kernel.RoleCustomer)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.Card, "")

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

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Canceled, aggregate.Status())
}

func TestAdvanceOrderStatusCommandHandler_Handle_CustomerCancelsTooLate(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Canceled, kernel.RoleCustomer)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.Card, "")
	require.NoError(t, aggregate.AdvanceTo(order.Processing, time.Now()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, order.Processing, aggregate.Status())
	uow.AssertNotCalled(t, "Commit")
}

func TestAdvanceOrderStatusCommandHandler_Handle_CustomerCannotAdvance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Processing, kernel.RoleCustomer)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.Card, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrAccessDenied)

	var denied *services.AccessDeniedError
	require.ErrorAs(t, err, &denied)
	require.Equal(t, kernel.RoleCustomer, denied.Role)
	require.Equal(t, order.Pending, aggregate.Status())
}

func TestAdvanceOrderStatusCommandHandler_Handle_DeliveredReleasesDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Delivered, kernel.RoleLogistics)
	require.NoError(t, err)

	aggregate := makeInTransitOrder(t)

	assigned := makeDriver(t)
	require.NoError(t, assigned.AssignOrder(aggregate.OrderID()))
	require.Equal(t, driver.OnDelivery, assigned.Status())

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetByCurrentOrder", ctx, aggregate.OrderID()).Return(assigned, nil).Once(),
		driverRepo.On("Update", ctx, assigned).Return(nil).Once(),
		orderRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Delivered, aggregate.Status())
	require.NotNil(t, aggregate.DeliveredAt())
	require.True(t, assigned.IsAvailable())
	require.Nil(t, assigned.CurrentOrderID())
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_DispatchWithoutDriver(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdvanceOrderStatusCommand(mustOrderID(t, 42), order.Dispatched, kernel.RoleRDCStaff)
	require.NoError(t, err)

	aggregate := makeOrder(t, order.Card, "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByOrderID", ctx, cmd.OrderID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrDriverNotAssigned)
	uow.AssertNotCalled(t, "Commit")
}

func TestAdvanceOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AdvanceOrderStatusCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
