package ports

import (
	"context"
)

// ProductInfo is the catalog snapshot of a product used when placing an
// order line. Price is what the customer pays; LabelledPrice is the sticker
// price before discounts.
type ProductInfo struct {
	ID            string
	Name          string
	Price         float64
	LabelledPrice float64
	Image         string
}

// CatalogGateway is the core's view of the product catalog. Orders snapshot
// product details at checkout, and the ledger publishes each product's
// total stock back to the catalog after mutations.
type CatalogGateway interface {
	// Resolve returns the catalog snapshot for a product.
	// Returns errs.ObjectNotFoundError for unknown products.
	Resolve(ctx context.Context, productID string) (ProductInfo, error)

	// PublishTotalStock updates the product's catalog-wide stock figure
	// with the quantity summed across all distribution centers.
	PublishTotalStock(ctx context.Context, productID string, total int) error
}
