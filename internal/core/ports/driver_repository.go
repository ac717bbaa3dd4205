package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all drivers that can take an order.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// GetByCurrentOrder retrieves the driver currently delivering the given
	// order. Returns errs.ObjectNotFoundError when no driver holds it.
	GetByCurrentOrder(ctx context.Context, orderID kernel.OrderID) (*driver.Driver, error)
}
