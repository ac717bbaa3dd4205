package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("productId")
)

// AdjustStockCommand represents a request to change a product's quantity at
// one distribution center by a signed delta: positive for receipts,
// negative for corrections and write-offs.
//
// Example:
//
//	cmd, err := NewAdjustStockCommand(kernel.RDCNorth, "P1", -10)
//	if err != nil {
//	    return fmt.Errorf("invalid adjustment: %w", err)
//	}
//
//	handler := NewAdjustStockCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to adjust stock: %w", err)
//	}
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	location  kernel.RDC
	productID string
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust the stock ledger.
// Validates that the location is a known RDC, the product ID is not empty
// and the delta is non-zero. Returns an error if any validation fails.
func NewAdjustStockCommand(location kernel.RDC, productID string, delta int) (AdjustStockCommand, error) {
	command := AdjustStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setLocation(location),
		command.setProductID(productID),
		command.setDelta(delta),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// Location returns the distribution center being adjusted.
func (c AdjustStockCommand) Location() kernel.RDC {
	return c.location
}

// ProductID returns the product being adjusted.
func (c AdjustStockCommand) ProductID() string {
	return c.productID
}

// Delta returns the signed quantity change.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

func (c *AdjustStockCommand) setLocation(location kernel.RDC) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *AdjustStockCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return stock.ErrZeroAdjustment
	}

	c.delta = delta
	return nil
}
