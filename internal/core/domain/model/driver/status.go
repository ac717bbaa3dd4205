package driver

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the duty state of a delivery driver.
//
// State transitions:
//
//	Available ──> OnDelivery ──> Available
//	    │                            ^
//	    └──────> OffDuty ────────────┘
//
// A driver carries at most one order at a time: OnDelivery is entered by
// an order assignment and left when the delivery completes. Drivers can
// only go off duty while idle.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the driver is on duty and can take an order.
	Available

	// OnDelivery means the driver is out delivering an order.
	OnDelivery

	// OffDuty means the driver is not working and cannot take orders.
	OffDuty
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Available:  "Available",
		OnDelivery: "OnDelivery",
		OffDuty:    "OffDuty",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:  "Available",
		OnDelivery: "OnDelivery",
		OffDuty:    "OffDuty",
	}
}

// ParseStatus converts a persisted or user supplied string into a Status.
// Matching is case-insensitive.
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for status, str := range getValidStatusStrings() {
		if strings.ToLower(str) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid driver status", raw),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid driver status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to OnDelivery.
//
// Valid transitions:
//   - Available -> OnDelivery
//
// Returns:
//   - (OnDelivery, nil) on a valid transition
//   - (Unknown, error) if the driver cannot take an order
func (s Status) Assign() (Status, error) {
	if s != Available {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("driver cannot take an order while %s", s))
	}
	return OnDelivery, nil
}

// Release transitions the status back to Available after a delivery.
//
// Valid transitions:
//   - OnDelivery -> Available
//
// Returns:
//   - (Available, nil) on a valid transition
//   - (Unknown, error) if the driver is not out on a delivery
func (s Status) Release() (Status, error) {
	if s != OnDelivery {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("driver has no delivery to complete while %s", s))
	}
	return Available, nil
}

// GoOffDuty transitions the status to OffDuty.
//
// Valid transitions:
//   - Available -> OffDuty
//
// A driver out on a delivery must complete it first.
func (s Status) GoOffDuty() (Status, error) {
	if s != Available {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("driver cannot go off duty while %s", s))
	}
	return OffDuty, nil
}

// ReturnToDuty transitions the status back to Available.
//
// Valid transitions:
//   - OffDuty -> Available
func (s Status) ReturnToDuty() (Status, error) {
	if s != OffDuty {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("driver is not off duty while %s", s))
	}
	return Available, nil
}
