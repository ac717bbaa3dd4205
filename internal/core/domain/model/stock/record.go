package stock

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record was not created
	// through NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

	// ErrZeroAdjustment rejects a stock adjustment with a zero delta.
	ErrZeroAdjustment = errs.NewValueIsInvalidError("adjustment delta must not be zero")
)

// InsufficientStockError reports that an adjustment or transfer would drive
// a record's quantity below zero. It carries the affected location and the
// requested versus available quantities so callers can report the shortfall.
type InsufficientStockError struct {
	Location  kernel.RDC
	ProductID string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for a location.
func NewInsufficientStockError(location kernel.RDC, productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{
		Location:  location,
		ProductID: productID,
		Requested: requested,
		Available: available,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock in %s for product %s: requested %d, available %d",
		e.Location, e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrConflict
}

// Record is the stock ledger entry for one product at one distribution
// center. At most one record exists per (location, productId) pair and its
// quantity is never negative. Records are created on first receipt and never
// deleted; a zero quantity is the persisted "known empty" state.
type Record struct {
	location    kernel.RDC
	productID   string
	quantity    int
	lastUpdated time.Time

	isConstructed bool
}

// NewRecord creates an empty ledger record for a (location, productId) pair.
// New records start at zero quantity; receipts arrive through Apply.
func NewRecord(location kernel.RDC, productID string, now time.Time) (*Record, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productId")
	}

	return &Record{
		location:      location,
		productID:     productID,
		quantity:      0,
		lastUpdated:   now,
		isConstructed: true,
	}, nil
}

// RestoreRecord reconstructs a record from persistence.
func RestoreRecord(location kernel.RDC, productID string, quantity int, lastUpdated time.Time) (*Record, error) {
	record, err := NewRecord(location, productID, lastUpdated)
	if err != nil {
		return nil, err
	}

	if quantity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	record.quantity = quantity
	return record, nil
}

// Validate ensures the record came from a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// Location returns the distribution center holding the stock.
func (r *Record) Location() kernel.RDC {
	return r.location
}

// ProductID returns the catalog identifier of the stocked product.
func (r *Record) ProductID() string {
	return r.productID
}

// Quantity returns the units currently on hand.
func (r *Record) Quantity() int {
	return r.quantity
}

// LastUpdated returns the time of the last mutation.
func (r *Record) LastUpdated() time.Time {
	return r.lastUpdated
}

// Apply adjusts the quantity by a signed, non-zero delta. A delta that would
// drive the quantity negative is rejected with InsufficientStockError and
// leaves the record untouched.
func (r *Record) Apply(delta int, now time.Time) error {
	if delta == 0 {
		return ErrZeroAdjustment
	}

	if r.quantity+delta < 0 {
		return NewInsufficientStockError(r.location, r.productID, -delta, r.quantity)
	}

	r.quantity += delta
	r.lastUpdated = now
	return nil
}

// CanDeduct reports whether the record holds at least the requested quantity.
func (r *Record) CanDeduct(quantity int) bool {
	return quantity > 0 && r.quantity >= quantity
}

// Deduct removes a positive quantity, failing with InsufficientStockError
// when not enough units are on hand.
func (r *Record) Deduct(quantity int, now time.Time) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return r.Apply(-quantity, now)
}

// Credit adds a positive quantity.
func (r *Record) Credit(quantity int, now time.Time) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return r.Apply(quantity, now)
}

// IsEqual compares records by their (location, productId) identity.
func (r *Record) IsEqual(other *Record) bool {
	return other != nil && r.location == other.location && r.productID == other.productID
}
