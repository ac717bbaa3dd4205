package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// RestockAlert is one low-stock finding from a ledger sweep: which record
// fell to or below the threshold, how much is left, and a human-readable
// message for the operations team.
type RestockAlert struct {
	Location     kernel.RDC
	ProductID    string
	CurrentStock int
	Message      string
}

// NotificationSink delivers side-channel notifications. Implementations
// must be safe to call after the originating transaction has committed;
// failures are logged, never propagated back into the command.
type NotificationSink interface {
	// NotifyOrderCreated sends the order confirmation (invoice email) to
	// the customer.
	NotifyOrderCreated(ctx context.Context, aggregate *order.Order) error

	// NotifyRestockAlert reports low-stock findings from a ledger sweep.
	// One sweep produces one batched notification.
	NotifyRestockAlert(ctx context.Context, alerts []RestockAlert) error
}
