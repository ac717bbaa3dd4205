package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTransferStockCommandIsNotConstructed = errors.New(
		"TransferStockCommand must be created via NewTransferStockCommand constructor",
	)
	ErrQuantityIsInvalid     = errs.NewValueIsInvalidError("quantity must be greater than 0")
	ErrSameTransferLocations = errs.NewValueIsInvalidError("transfer source and destination must differ")
)

// TransferStockCommand represents a request to move stock of one product
// between two distribution centers. The deduction and the credit happen in
// a single transaction: either both apply or neither does.
//
// Example:
//
//	cmd, err := NewTransferStockCommand(kernel.RDCNorth, kernel.RDCSouth, "P1", 40)
//	if err != nil {
//	    return fmt.Errorf("invalid transfer: %w", err)
//	}
//
//	handler := NewTransferStockCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to transfer stock: %w", err)
//	}
type TransferStockCommand struct { //nolint:recvcheck //using for validation
	from      kernel.RDC
	to        kernel.RDC
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewTransferStockCommand creates a command to transfer stock between
// distribution centers. Validates both locations, requires them to differ,
// and requires a non-empty product ID and a positive quantity.
func NewTransferStockCommand(from, to kernel.RDC, productID string, quantity int) (TransferStockCommand, error) {
	command := TransferStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLocations(from, to),
		command.setProductID(productID),
		command.setQuantity(quantity),
	); err != nil {
		return TransferStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferStockCommand) Validate() error {
	return c.guard.Validate(ErrTransferStockCommandIsNotConstructed)
}

// From returns the source distribution center.
func (c TransferStockCommand) From() kernel.RDC {
	return c.from
}

// To returns the destination distribution center.
func (c TransferStockCommand) To() kernel.RDC {
	return c.to
}

// ProductID returns the product being transferred.
func (c TransferStockCommand) ProductID() string {
	return c.productID
}

// Quantity returns the units to move.
func (c TransferStockCommand) Quantity() int {
	return c.quantity
}

func (c *TransferStockCommand) setLocations(from, to kernel.RDC) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	if from.IsEqual(to) {
		return ErrSameTransferLocations
	}

	c.from = from
	c.to = to
	return nil
}

func (c *TransferStockCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *TransferStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
