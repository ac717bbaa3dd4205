package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func checkoutCommand(t *testing.T, method order.PaymentMethod, receipt string) commands.CreateOrderCommand {
	t.Helper()

	customer, err := order.NewCustomer("Nimal Perera", "nimal@example.com", "0771234567", "12 Galle Rd, Colombo")
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		customer,
		[]commands.OrderItem{{ProductID: "P1", Quantity: 2}},
		method,
		receipt,
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("rejects an empty item list", func(t *testing.T) {
		customer, err := order.NewCustomer("Nimal Perera", "nimal@example.com", "", "12 Galle Rd")
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommand(customer, nil, order.Card, "")

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	})

	t.Run("rejects items with bad quantities", func(t *testing.T) {
		customer, err := order.NewCustomer("Nimal Perera", "nimal@example.com", "", "12 Galle Rd")
		require.NoError(t, err)

		_, err = commands.NewCreateOrderCommand(customer,
			[]commands.OrderItem{{ProductID: "P1", Quantity: 0}}, order.Card, "")

		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("rejects an unconstructed customer", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(order.Customer{},
			[]commands.OrderItem{{ProductID: "P1", Quantity: 1}}, order.Card, "")

		require.Error(t, err)
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := checkoutCommand(t, order.Card, "")

	product := ports.ProductInfo{ID: "P1", Name: "Basmati Rice 5kg", Price: 2500, LabelledPrice: 3000, Image: "rice.jpg"}

	orderRepo := new(MockOrderRepository)
	sequence := new(MockOrderSequence)
	uow := new(MockUoW)
	catalog := new(MockCatalogGateway)
	notifier := new(MockNotificationSink)

	mock.InOrder(
		catalog.On("Resolve", ctx, "P1").Return(product, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSequence").Return(sequence).Once(),
		sequence.On("Next", ctx).Return(int64(42), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyOrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, catalog, notifier, testLogger())
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "CBC00042", orderID.String())

	addCall := orderRepo.Calls[0]
	created := addCall.Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, order.PaymentPaid, created.PaymentStatus())
	assert.InDelta(t, 5000, created.Total(), 0.001)
	assert.InDelta(t, 6000, created.LabelledTotal(), 0.001)

	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cmd := checkoutCommand(t, order.Card, "")

	catalog := new(MockCatalogGateway)
	catalog.On("Resolve", ctx, "P1").
		Return(ports.ProductInfo{}, errs.NewObjectNotFoundError("productId", "P1")).Once()

	factory := new(MockCheckoutUoWFactory)
	notifier := new(MockNotificationSink)

	handler := commands.NewCreateOrderCommandHandler(factory, catalog, notifier, testLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_MissingReceipt(t *testing.T) {
	ctx := t.Context()
	cmd := checkoutCommand(t, order.BankTransfer, "")

	product := ports.ProductInfo{ID: "P1", Name: "Basmati Rice 5kg", Price: 2500, LabelledPrice: 3000}

	sequence := new(MockOrderSequence)
	uow := new(MockUoW)
	catalog := new(MockCatalogGateway)
	notifier := new(MockNotificationSink)

	mock.InOrder(
		catalog.On("Resolve", ctx, "P1").Return(product, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSequence").Return(sequence).Once(),
		sequence.On("Next", ctx).Return(int64(42), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, catalog, notifier, testLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrMissingReceipt)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_NotifyFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd := checkoutCommand(t, order.Card, "")

	product := ports.ProductInfo{ID: "P1", Name: "Basmati Rice 5kg", Price: 2500, LabelledPrice: 3000}

	orderRepo := new(MockOrderRepository)
	sequence := new(MockOrderSequence)
	uow := new(MockUoW)
	catalog := new(MockCatalogGateway)
	notifier := new(MockNotificationSink)

	mock.InOrder(
		catalog.On("Resolve", ctx, "P1").Return(product, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSequence").Return(sequence).Once(),
		sequence.On("Next", ctx).Return(int64(42), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("NotifyOrderCreated", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("smtp unreachable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, catalog, notifier, testLogger())
	orderID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "CBC00042", orderID.String())
}

func TestCreateOrderCommandHandler_Handle_SequenceError(t *testing.T) {
	ctx := t.Context()
	cmd := checkoutCommand(t, order.Card, "")

	product := ports.ProductInfo{ID: "P1", Name: "Basmati Rice 5kg", Price: 2500, LabelledPrice: 3000}

	sequence := new(MockOrderSequence)
	uow := new(MockUoW)
	catalog := new(MockCatalogGateway)
	notifier := new(MockNotificationSink)

	mock.InOrder(
		catalog.On("Resolve", ctx, "P1").Return(product, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderSequence").Return(sequence).Once(),
		sequence.On("Next", ctx).Return(int64(0), errors.New("sequence error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, catalog, notifier, testLogger())
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "sequence error")
}
