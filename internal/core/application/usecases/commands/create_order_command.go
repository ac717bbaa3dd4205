package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("at least one item is required")
)

// OrderItem is one requested product in a checkout: which product and how
// many units. Prices and names are resolved from the catalog by the
// handler, never trusted from the caller.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a customer checkout: who is buying, what,
// and how they pay.
//
// Example:
//
//	customer, _ := order.NewCustomer("Nimal Perera", "nimal@example.com", "077...", "12 Galle Rd")
//	cmd, err := NewCreateOrderCommand(customer,
//	    []OrderItem{{ProductID: "P1", Quantity: 2}},
//	    order.BankTransfer, "receipts/ref-991.jpg")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog, notifier, logger)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer order.Customer
	items    []OrderItem
	method   order.PaymentMethod
	receipt  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. Validates the customer
// snapshot, requires at least one item with a positive quantity, and a
// valid payment method. The receipt requirement for bank transfers is
// enforced by the order aggregate.
func NewCreateOrderCommand(
	customer order.Customer,
	items []OrderItem,
	method order.PaymentMethod,
	receipt string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		receipt: receipt,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomer(customer),
		command.setItems(items),
		command.setMethod(method),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the contact and shipping snapshot.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Items returns the requested products.
func (c CreateOrderCommand) Items() []OrderItem {
	items := make([]OrderItem, len(c.items))
	copy(items, c.items)
	return items
}

// Method returns the payment method.
func (c CreateOrderCommand) Method() order.PaymentMethod {
	return c.method
}

// Receipt returns the payment receipt reference, possibly empty.
func (c CreateOrderCommand) Receipt() string {
	return c.receipt
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if item.ProductID == "" {
			return ErrProductIDIsRequired
		}
		if item.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.items = append([]OrderItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
