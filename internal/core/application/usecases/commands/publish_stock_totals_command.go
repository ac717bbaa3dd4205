package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrPublishStockTotalsCommandIsNotConstructed = errors.New(
		"PublishStockTotalsCommand must be created via NewPublishStockTotalsCommand constructor",
	)
)

// PublishStockTotalsCommand rolls the per-location ledger up into one total
// per product and publishes the totals to the catalog, keeping the
// storefront stock figures in step with the ledger. Issued on a schedule.
type PublishStockTotalsCommand struct {
	guard guard.ConstructorGuard
}

// NewPublishStockTotalsCommand creates a rollup command.
// This is a parameterless command.
func NewPublishStockTotalsCommand() PublishStockTotalsCommand {
	return PublishStockTotalsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishStockTotalsCommandIsNotConstructed if validation fails.
func (c PublishStockTotalsCommand) Validate() error {
	return c.guard.Validate(ErrPublishStockTotalsCommandIsNotConstructed)
}
