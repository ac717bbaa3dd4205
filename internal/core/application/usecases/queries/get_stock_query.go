// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery retrieves the inventory ledger for one distribution center.
// Returns every stocked product at the location with its current quantity.
//
// Example:
//
//	query, err := queries.NewGetStockQuery(kernel.RDCNorth)
//	if err != nil {
//	    return err
//	}
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve stock: %w", err)
//	}
//
//	for _, record := range records {
//	    fmt.Printf("%s: %d units\n", record.ProductID, record.Quantity)
//	}
type GetStockQuery struct {
	location kernel.RDC

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for the ledger of one distribution center.
// Returns an error if the location is not a known center.
func NewGetStockQuery(location kernel.RDC) (GetStockQuery, error) {
	if err := location.Validate(); err != nil {
		return GetStockQuery{}, err
	}

	return GetStockQuery{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockQueryIsNotConstructed if validation fails.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// Location returns the distribution center being queried.
func (q GetStockQuery) Location() kernel.RDC {
	return q.location
}

// GetStockQueryResponse represents one ledger entry in the read model.
type GetStockQueryResponse struct {
	Location    kernel.RDC
	ProductID   string
	Quantity    int
	LastUpdated time.Time
}
