package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// topDriversLimit caps the driver leaderboard on the dashboard.
const topDriversLimit = 10

// GetKPIStatsQueryHandler computes the admin dashboard aggregates in SQL.
// Each panel is one aggregate query over the orders table.
type GetKPIStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetKPIStatsQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetKPIStatsQueryHandler(db *gorm.DB) GetKPIStatsQueryHandler {
	return GetKPIStatsQueryHandler{db: db}
}

// Handle executes the aggregate queries and assembles the dashboard model.
func (h GetKPIStatsQueryHandler) Handle(
	ctx context.Context,
	query GetKPIStatsQuery,
) (*GetKPIStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	response := GetKPIStatsQueryResponse{}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
	`).Row()
	if err := row.Scan(&response.TotalOrders, &response.TotalRevenue); err != nil {
		return nil, err
	}

	rdcPerformance, err := h.scanBuckets(ctx, `
		SELECT origin_rdc, COUNT(*) AS workload
		FROM orders
		WHERE status != ?
		GROUP BY origin_rdc
		ORDER BY workload DESC
	`, order.Pending.String())
	if err != nil {
		return nil, err
	}
	response.RDCPerformance = rdcPerformance

	driverPerformance, err := h.scanBuckets(ctx, `
		SELECT COALESCE(driver_name, 'Unknown'), COUNT(*) AS deliveries
		FROM orders
		WHERE status = ?
		GROUP BY driver_name
		ORDER BY deliveries DESC
		LIMIT ?
	`, order.Delivered.String(), topDriversLimit)
	if err != nil {
		return nil, err
	}
	response.DriverPerformance = driverPerformance

	orderStatus, err := h.scanBuckets(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`)
	if err != nil {
		return nil, err
	}
	response.OrderStatus = orderStatus

	return &response, nil
}

func (h GetKPIStatsQueryHandler) scanBuckets(
	ctx context.Context,
	sql string,
	args ...any,
) ([]KPIBucket, error) {
	buckets := make([]KPIBucket, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket KPIBucket
		if err = rows.Scan(&bucket.Name, &bucket.Value); err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
