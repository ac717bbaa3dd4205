package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// OrderIDPrefix is the fixed prefix of every order identifier.
const OrderIDPrefix = "CBC"

// orderIDDigits is the zero-padded width of the numeric suffix.
const orderIDDigits = 5

// maxOrderSequence is the largest sequence the five-digit suffix can carry.
const maxOrderSequence = 99999

// OrderID is the human-readable order identifier: the "CBC" prefix followed
// by a five-digit, zero-padded sequence number ("CBC00001", "CBC00002", ...).
// Identifiers are allocated from a monotonically increasing sequence, are
// globally unique and never reused.
//
// The zero value is invalid; construct through OrderIDFromSequence or
// ParseOrderID.
type OrderID struct {
	value string
}

// OrderIDFromSequence builds the identifier for a sequence number.
// The sequence must fit the five-digit suffix: the first order ever is
// sequence 1, rendered as "CBC00001", and the last is 99999. Anything
// larger would produce an identifier ParseOrderID rejects.
func OrderIDFromSequence(seq int64) (OrderID, error) {
	if seq <= 0 || seq > maxOrderSequence {
		return OrderID{}, errs.NewValueIsOutOfRangeError("order sequence", seq, 1, int64(maxOrderSequence))
	}

	return OrderID{value: fmt.Sprintf("%s%0*d", OrderIDPrefix, orderIDDigits, seq)}, nil
}

// ParseOrderID validates a raw identifier. Matching is case-insensitive
// (order tracking accepts "cbc00001"); the canonical upper-cased form is
// stored.
func ParseOrderID(raw string) (OrderID, error) {
	if raw == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}

	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasPrefix(normalized, OrderIDPrefix) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not start with %q", raw, OrderIDPrefix))
	}

	suffix := normalized[len(OrderIDPrefix):]
	if len(suffix) != orderIDDigits {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q must carry a %d-digit suffix", raw, orderIDDigits))
	}

	if _, err := strconv.ParseInt(suffix, 10, 64); err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return OrderID{value: normalized}, nil
}

// String returns the canonical identifier ("CBC00001").
func (id OrderID) String() string {
	return id.value
}

// Sequence returns the numeric suffix of the identifier.
func (id OrderID) Sequence() int64 {
	if id.value == "" {
		return 0
	}
	seq, _ := strconv.ParseInt(id.value[len(OrderIDPrefix):], 10, 64)
	return seq
}

// IsEqual compares two order identifiers.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks the identifier was constructed and not left as zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("orderId must be created via OrderIDFromSequence or ParseOrderID")
	}
	return nil
}
