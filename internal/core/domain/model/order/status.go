package order

import (
	"fmt"
	"strings"
	"unicode"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	PaymentReview ──> Pending ──> Processing ──> Dispatched ──> InTransit ──> Delivered ──> Returned
//	      │              │            │
//	      └──────────────┴────────────┴──> Canceled
//
// Forward movement along the main chain may skip stages but never goes
// backwards. Canceled and Returned are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PaymentReview is the initial status of orders paid by bank transfer.
	// The order waits here until staff verify or reject the payment receipt.
	PaymentReview

	// Pending is the initial status of orders whose payment needs no review.
	// Orders in this status are waiting to be picked up by warehouse staff.
	Pending

	// Processing indicates warehouse staff are preparing the order.
	Processing

	// Dispatched indicates a driver has been assigned and the order has
	// left the distribution center.
	Dispatched

	// InTransit indicates the order is on its way to the customer.
	InTransit

	// Delivered indicates the order reached the customer.
	// The only transition out of Delivered is Returned.
	Delivered

	// Canceled is a terminal status reached by a customer cancellation,
	// a staff cancellation, or a rejected payment.
	Canceled

	// Returned is a terminal status for delivered orders sent back.
	Returned
)

// getStatusStrings returns a map of Status values to their persisted string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		PaymentReview: "payment_review",
		Pending:       "pending",
		Processing:    "processing",
		Dispatched:    "dispatched",
		InTransit:     "in transit",
		Delivered:     "delivered",
		Canceled:      "canceled",
		Returned:      "returned",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PaymentReview: "payment_review",
		Pending:       "pending",
		Processing:    "processing",
		Dispatched:    "dispatched",
		InTransit:     "in transit",
		Delivered:     "delivered",
		Canceled:      "canceled",
		Returned:      "returned",
	}
}

// getChainIndexes returns the position of each status on the main
// fulfillment chain. Canceled and Returned are off the chain.
func getChainIndexes() map[Status]int {
	//nolint:exhaustive // terminal side statuses are intentionally excluded
	return map[Status]int{
		PaymentReview: 0,
		Pending:       1,
		Processing:    2,
		Dispatched:    3,
		InTransit:     4,
		Delivered:     5,
	}
}

// ParseStatus converts a persisted or user supplied string into a Status.
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Returns:
//   - the matching Status if the string names a valid status
//   - (Unknown, error) otherwise
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "payment_review"
// or "in transit". It returns "unknown" for invalid values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Display returns the customer-facing form of the status: the persisted
// name with its first letter upper-cased, e.g. "In transit".
func (s Status) Display() string {
	str := s.String()
	runes := []rune(str)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Canceled || s == Returned
}

// Advance transitions the status forward along the fulfillment chain.
//
// Valid transitions move strictly forward between Pending and Delivered;
// skipping stages is allowed (e.g. Pending -> Dispatched).
//
// Invalid transitions:
//   - anything from PaymentReview (a payment decision is required first)
//   - backwards or same-stage moves
//   - anything from or to a terminal status
//
// Returns:
//   - (target, nil) on a valid transition
//   - (Unknown, error) if the transition is not allowed
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	from, onChain := getChainIndexes()[s]
	if !onChain || s == PaymentReview {
		return Unknown, NewIllegalTransitionError(s, target)
	}

	to, onChain := getChainIndexes()[target]
	if !onChain || to <= from {
		return Unknown, NewIllegalTransitionError(s, target)
	}

	return target, nil
}

// VerifyPayment transitions the status out of payment review.
//
// Valid transitions:
//   - PaymentReview -> Pending
//
// Returns:
//   - (Pending, nil) on a valid transition
//   - (Unknown, error) if the order is not under payment review
func (s Status) VerifyPayment() (Status, error) {
	if s != PaymentReview {
		return Unknown, NewIllegalTransitionError(s, Pending)
	}
	return Pending, nil
}

// RejectPayment cancels an order whose payment was rejected.
//
// Valid transitions:
//   - PaymentReview -> Canceled
//
// Returns:
//   - (Canceled, nil) on a valid transition
//   - (Unknown, error) if the order is not under payment review
func (s Status) RejectPayment() (Status, error) {
	if s != PaymentReview {
		return Unknown, NewIllegalTransitionError(s, Canceled)
	}
	return Canceled, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - PaymentReview -> Canceled
//   - Pending -> Canceled
//   - Processing -> Canceled
//
// Once an order is dispatched it can no longer be canceled.
//
// Returns:
//   - (Canceled, nil) on a valid transition
//   - (Unknown, error) if cancellation is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != PaymentReview && s != Pending && s != Processing {
		return Unknown, NewIllegalTransitionError(s, Canceled)
	}
	return Canceled, nil
}

// Return transitions the status to Returned.
//
// Valid transitions:
//   - Delivered -> Returned
//
// Returns:
//   - (Returned, nil) on a valid transition
//   - (Unknown, error) if the order has not been delivered
func (s Status) Return() (Status, error) {
	if s != Delivered {
		return Unknown, NewIllegalTransitionError(s, Returned)
	}
	return Returned, nil
}

// IllegalTransitionError reports a status transition the state machine
// does not allow.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal status transition from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return errs.ErrConflict
}
