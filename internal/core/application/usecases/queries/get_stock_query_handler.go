package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetStockQueryHandler retrieves the per-location inventory ledger from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
//
// Example:
//
//	handler := NewGetStockQueryHandler(db)
//	query, _ := NewGetStockQuery(kernel.RDCNorth)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get stock: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d stocked products\n", len(records))
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for ledger retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query to retrieve all ledger records at the location.
// Returns records sorted by product identifier for consistent output.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetStockQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			last_updated
		FROM stock_records
		WHERE location = ?
		ORDER BY product_id
	`, query.Location().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		record := GetStockQueryResponse{Location: query.Location()}

		err = rows.Scan(
			&record.ProductID,
			&record.Quantity,
			&record.LastUpdated,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
