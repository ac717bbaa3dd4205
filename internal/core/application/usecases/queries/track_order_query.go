package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// ETADefault is shown when an order has no explicit delivery estimate.
const ETADefault = "Standard Delivery (48 Hrs)"

// TrackOrderQuery retrieves the customer-facing tracking view of one order.
// The lookup key is the public order number; ParseOrderID canonicalizes
// casing so customers may type the number however they like.
//
// Example:
//
//	orderID, err := kernel.ParseOrderID("cbc00042")
//	if err != nil {
//	    return err
//	}
//	query, err := queries.NewTrackOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", tracking.OrderID, tracking.Status)
type TrackOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for one order number.
func NewTrackOrderQuery(orderID kernel.OrderID) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the public order number being tracked.
func (q TrackOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// TrackOrderDriver is the driver summary shown on the tracking view.
// Orders without an assigned driver carry the placeholder values.
type TrackOrderDriver struct {
	Name      string
	Phone     string
	VehicleNo string
}

// TrackOrderTimelineStage is one of the five fixed stages of the tracking
// timeline. Date is set only for stages with a recorded moment; Current is
// true only while the order is in transit.
type TrackOrderTimelineStage struct {
	Status    string
	Date      *time.Time
	Completed bool
	Current   bool
}

// TrackOrderQueryResponse is the tracking read model returned to customers.
// Status carries the display form of the order status, e.g. "In transit".
type TrackOrderQueryResponse struct {
	OrderID     string
	Status      string
	ETA         string
	Origin      string
	Destination string
	Driver      TrackOrderDriver
	Timeline    []TrackOrderTimelineStage
}
