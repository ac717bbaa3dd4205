// Package ports defines the contracts between the core and infrastructure:
// repositories for the aggregates, the unit of work, the order number
// sequence, and gateways to the product catalog and the notification
// channel. Adapters implement these interfaces; the core never imports an
// adapter.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for the inventory ledger.
//
// Mutations must be atomic with respect to concurrent callers: the
// implementation applies the non-negative quantity rule as a conditional
// update inside the database, so no interleaving of concurrent adjustments
// can ever observe or produce a negative quantity.
type StockRepository interface {
	// Get retrieves the ledger record for a (location, productId) pair.
	// Returns errs.ObjectNotFoundError when no record exists yet.
	Get(ctx context.Context, location kernel.RDC, productID string) (*stock.Record, error)

	// GetByLocation retrieves all ledger records held at one distribution
	// center, ordered by product ID.
	GetByLocation(ctx context.Context, location kernel.RDC) ([]*stock.Record, error)

	// Adjust applies a signed delta to a record's quantity as one atomic
	// conditional update. A missing record is created on a positive delta.
	// A delta that would drive the quantity negative fails with
	// stock.InsufficientStockError and changes nothing.
	//
	// Returns the record as it stands after the adjustment.
	Adjust(ctx context.Context, location kernel.RDC, productID string, delta int) (*stock.Record, error)

	// TotalQuantity sums a product's quantity across all locations.
	TotalQuantity(ctx context.Context, productID string) (int, error)

	// TotalsByProduct sums quantities across locations for every product
	// present in the ledger.
	TotalsByProduct(ctx context.Context) (map[string]int, error)

	// GetBelowThreshold retrieves records whose quantity is at or below the
	// threshold. Used by the restock alert scan.
	GetBelowThreshold(ctx context.Context, threshold int) ([]*stock.Record, error)
}
