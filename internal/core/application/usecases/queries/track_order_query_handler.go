package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderQueryHandler builds the customer tracking projection from the
// database. One row from the orders table is enough: the five-stage timeline
// is derived from the current status, not replayed from tracking events.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the query to build the tracking view of one order.
// Returns ObjectNotFoundError if the order number is unknown.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (*TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rawStatus         string
		placedAt          time.Time
		originRDC         string
		address           string
		driverName        sql.NullString
		driverPhone       sql.NullString
		driverVehicleNo   sql.NullString
		estimatedDelivery sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			placed_at,
			origin_rdc,
			customer_address,
			driver_name,
			driver_phone,
			driver_vehicle_no,
			estimated_delivery
		FROM orders
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(
		&rawStatus,
		&placedAt,
		&originRDC,
		&address,
		&driverName,
		&driverPhone,
		&driverVehicleNo,
		&estimatedDelivery,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	response := TrackOrderQueryResponse{
		OrderID:     query.OrderID().String(),
		Status:      status.Display(),
		ETA:         formatETA(estimatedDelivery),
		Origin:      originRDC,
		Destination: address,
		Driver: TrackOrderDriver{
			Name:      orDefault(driverName, order.DriverNamePending),
			Phone:     orDefault(driverPhone, order.DriverFieldPlaceholder),
			VehicleNo: orDefault(driverVehicleNo, order.DriverFieldPlaceholder),
		},
		Timeline: buildTimeline(status, placedAt),
	}

	return &response, nil
}

// buildTimeline derives the five fixed tracking stages from the current
// status. The first stage is always completed and dated at placement;
// canceled and returned orders show no further progress.
func buildTimeline(status order.Status, placedAt time.Time) []TrackOrderTimelineStage {
	reached := func(statuses ...order.Status) bool {
		for _, s := range statuses {
			if status == s {
				return true
			}
		}
		return false
	}

	return []TrackOrderTimelineStage{
		{
			Status:    "Order Placed",
			Date:      &placedAt,
			Completed: true,
		},
		{
			Status:    "Processing",
			Completed: reached(order.Processing, order.Dispatched, order.InTransit, order.Delivered),
		},
		{
			Status:    "Dispatched",
			Completed: reached(order.Dispatched, order.InTransit, order.Delivered),
		},
		{
			Status:    "In Transit",
			Completed: reached(order.InTransit, order.Delivered),
			Current:   status == order.InTransit,
		},
		{
			Status:    "Delivered",
			Completed: status == order.Delivered,
		},
	}
}

// formatETA renders the promised delivery date when one was set; orders
// without one run on the standard delivery window.
func formatETA(estimatedDelivery sql.NullTime) string {
	if !estimatedDelivery.Valid {
		return ETADefault
	}
	return estimatedDelivery.Time.Format("Mon Jan 02 2006")
}

func orDefault(value sql.NullString, fallback string) string {
	if value.Valid && value.String != "" {
		return value.String
	}
	return fallback
}
