package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order. The method decides
// the order's initial status: bank transfers start under payment review,
// everything else starts pending.
type PaymentMethod int

const (
	// UnknownMethod represents an invalid or undefined payment method.
	UnknownMethod PaymentMethod = iota

	// Card payments are captured at checkout and need no manual review.
	Card

	// BankTransfer payments require an uploaded receipt and manual
	// verification by staff before fulfillment starts.
	BankTransfer

	// CashOnDelivery payments are collected by the driver at the door.
	CashOnDelivery
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownMethod:  "unknown",
		Card:           "card",
		BankTransfer:   "bank",
		CashOnDelivery: "cod",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // UnknownMethod is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Card:           "card",
		BankTransfer:   "bank",
		CashOnDelivery: "cod",
	}
}

// ParsePaymentMethod converts a persisted or user supplied string into a
// PaymentMethod. Matching is case-insensitive.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for method, str := range getValidPaymentMethodStrings() {
		if str == normalized {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", raw),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persisted name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// RequiresReceipt reports whether the method needs an uploaded payment
// receipt and manual verification.
func (m PaymentMethod) RequiresReceipt() bool {
	return m == BankTransfer
}

// PaymentStatus is the verification state of the payment on an order.
type PaymentStatus int

const (
	// UnknownPayment represents an invalid or undefined payment status.
	UnknownPayment PaymentStatus = iota

	// PaymentPending means the payment has not been settled yet: a bank
	// transfer awaiting verification, or cash to collect on delivery.
	PaymentPending

	// PaymentPaid means the payment is settled.
	PaymentPaid

	// PaymentRejected means staff rejected the payment receipt.
	// The order is canceled when this happens.
	PaymentRejected
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPayment:  "Unknown",
		PaymentPending:  "Pending",
		PaymentPaid:     "Paid",
		PaymentRejected: "Rejected",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // UnknownPayment is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "Pending",
		PaymentPaid:     "Paid",
		PaymentRejected: "Rejected",
	}
}

// ParsePaymentStatus converts a persisted string into a PaymentStatus.
// Matching is case-insensitive.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for status, str := range getValidPaymentStatusStrings() {
		if strings.ToLower(str) == normalized {
			return status, nil
		}
	}
	return UnknownPayment, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", raw),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the persisted name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
