package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order listing from the database.
// Applies the visibility rule directly in SQL: staff queries scan the whole
// table, customer queries are scoped to one email.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the visible orders.
// Returns orders newest first, matching the storefront listing.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.order_id,
			o.customer_name,
			o.customer_email,
			o.payment_method,
			o.payment_status,
			o.status,
			o.total,
			(SELECT COUNT(*) FROM order_lines l WHERE l.order_id = o.id) AS item_count,
			o.placed_at
		FROM orders o
	`
	args := make([]any, 0, 1)
	if !query.Role().IsStaff() {
		sql += ` WHERE o.customer_email = ?`
		args = append(args, query.CustomerEmail())
	}
	sql += ` ORDER BY o.placed_at DESC`

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersQueryResponse
		var rawStatus string

		err = rows.Scan(
			&orderResp.OrderID,
			&orderResp.CustomerName,
			&orderResp.CustomerEmail,
			&orderResp.PaymentMethod,
			&orderResp.PaymentStatus,
			&rawStatus,
			&orderResp.Total,
			&orderResp.ItemCount,
			&orderResp.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(rawStatus)
		if statusErr != nil {
			return nil, statusErr
		}
		orderResp.Status = status.Display()

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
