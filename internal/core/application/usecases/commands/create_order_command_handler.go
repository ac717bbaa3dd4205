package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler handles customer checkouts.
//
// Line prices and names are resolved from the catalog so the caller cannot
// influence them. The order number comes from the shared sequence inside
// the same transaction as the insert, so concurrent checkouts always get
// distinct numbers. The confirmation email is sent only after the commit
// succeeds; a send failure is logged, never surfaced to the customer.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	catalog    ports.CatalogGateway
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	catalog ports.CatalogGateway,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		notifier:   notifier,
		logger:     logger.With("component", "create_order"),
	}
}

// Handle processes the checkout command and returns the business order ID
// assigned to the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (kernel.OrderID, error) {
	if err := command.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	lines, err := h.resolveLines(ctx, command.Items())
	if err != nil {
		return kernel.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sequence, err := uow.OrderSequence().Next(ctx)
	if err != nil {
		return kernel.OrderID{}, err
	}

	orderID, err := kernel.OrderIDFromSequence(sequence)
	if err != nil {
		return kernel.OrderID{}, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		orderID,
		command.Customer(),
		lines,
		command.Method(),
		command.Receipt(),
		time.Now(),
	)
	if err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	if err = h.notifier.NotifyOrderCreated(ctx, aggregate); err != nil {
		h.logger.Warn("order confirmation not sent",
			"orderId", orderID.String(), "error", err)
	}

	return orderID, nil
}

// resolveLines builds order lines from catalog snapshots of the requested
// products.
func (h CreateOrderCommandHandler) resolveLines(ctx context.Context, items []OrderItem) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		product, err := h.catalog.Resolve(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(product.ID, product.Name, product.Price, product.LabelledPrice, item.Quantity, product.Image)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
