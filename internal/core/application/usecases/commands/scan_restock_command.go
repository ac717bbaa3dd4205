package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrScanRestockCommandIsNotConstructed = errors.New(
		"ScanRestockCommand must be created via NewScanRestockCommand constructor",
	)
)

// ScanRestockCommand sweeps the inventory ledger for records at or below
// the restock threshold and raises an alert for them. Issued on a schedule,
// not by users.
type ScanRestockCommand struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewScanRestockCommand creates a restock scan for the given threshold.
// The threshold must not be negative.
func NewScanRestockCommand(threshold int) (ScanRestockCommand, error) {
	if threshold < 0 {
		return ScanRestockCommand{}, errs.NewValueIsInvalidError("threshold")
	}

	return ScanRestockCommand{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScanRestockCommandIsNotConstructed if validation fails.
func (c ScanRestockCommand) Validate() error {
	return c.guard.Validate(ErrScanRestockCommandIsNotConstructed)
}

// Threshold returns the quantity at or below which a record needs restocking.
func (c ScanRestockCommand) Threshold() int {
	return c.threshold
}
