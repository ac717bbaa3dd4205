package order

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// Tracking history entry texts for milestones that are not plain status
// changes. Status changes are recorded under the status display name.
const (
	EventOrderPlaced     = "Order Placed"
	EventAwaitingPayment = "Waiting for Payment Verification"
	EventPaymentVerified = "Payment Verified"
	EventPaymentRejected = "Payment Rejected"
)

// TrackingEvent is one entry in an order's tracking history: what happened
// and when. The history is append-only; events are never edited or removed.
// Every recorded event is a completed milestone, so the flag is always set;
// it is carried so the history rows read as a finished timeline.
type TrackingEvent struct {
	status    string
	date      time.Time
	completed bool

	isConstructed bool
}

// NewTrackingEvent creates a tracking history entry.
func NewTrackingEvent(status string, date time.Time) (TrackingEvent, error) {
	if status == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("status")
	}

	return TrackingEvent{
		status:        status,
		date:          date,
		completed:     true,
		isConstructed: true,
	}, nil
}

// Validate ensures the event came from NewTrackingEvent.
func (e TrackingEvent) Validate() error {
	if !e.isConstructed {
		return errs.NewValueIsInvalidError("tracking event must be created via NewTrackingEvent")
	}
	return nil
}

// Status returns the recorded event text.
func (e TrackingEvent) Status() string {
	return e.status
}

// Date returns when the event was recorded.
func (e TrackingEvent) Date() time.Time {
	return e.date
}

// Completed reports whether the milestone is done. True for every recorded
// event.
func (e TrackingEvent) Completed() bool {
	return e.completed
}
